package image

import (
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/disintegration/imaging"
)

const (
	MIN_JPEG_QUALITY = jpeg.DefaultQuality // 75
)

func init() {
	RegisterFormat(&Format{
		Name:   "jpeg",
		MIME:   "image/jpeg",
		Exts:   []string{".jpg", ".jpeg", ".jpe", ".jfif"},
		Decode: jpeg.Decode,
		Encode: imagingEncoder(imaging.JPEG),
	})
	RegisterFormat(&Format{
		Name:   "png",
		MIME:   "image/png",
		Exts:   []string{".png"},
		Decode: png.Decode,
		Encode: imagingEncoder(imaging.PNG),
	})
	RegisterFormat(&Format{
		Name:   "gif",
		MIME:   "image/gif",
		Exts:   []string{".gif"},
		Decode: gif.Decode,
		Encode: imagingEncoder(imaging.GIF),
	})
}

func imagingEncoder(f imaging.Format) EncodeFunc {
	return func(w io.Writer, m image.Image, wopt WriteOption) error {
		return imaging.Encode(w, m, f, imaging.JPEGQuality(jpegQuality(wopt.Quality)))
	}
}

func jpegQuality(q Quality) int {
	if q == 0 {
		return MIN_JPEG_QUALITY
	}
	if q > 100 {
		return 100
	}
	return int(q)
}
