package image

import (
	"image"
	"io"

	"github.com/gen2brain/avif"
)

const avifSpeed = 6

func init() {
	RegisterFormat(&Format{
		Name:   "avif",
		MIME:   "image/avif",
		Exts:   []string{".avif"},
		Decode: avif.Decode,
		Encode: encodeAVIF,
	})
}

func encodeAVIF(w io.Writer, m image.Image, wopt WriteOption) error {
	q := jpegQuality(wopt.Quality)
	return avif.Encode(w, m, avif.Options{
		Quality:           q,
		QualityAlpha:      q,
		Speed:             avifSpeed,
		ChromaSubsampling: image.YCbCrSubsampleRatio420,
	})
}
