package image

import (
	"github.com/disintegration/imaging"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

func init() {
	RegisterFormat(&Format{
		Name:   "bmp",
		MIME:   "image/bmp",
		Exts:   []string{".bmp"},
		Decode: bmp.Decode,
		Encode: imagingEncoder(imaging.BMP),
	})
	RegisterFormat(&Format{
		Name:   "tiff",
		MIME:   "image/tiff",
		Exts:   []string{".tif", ".tiff"},
		Decode: tiff.Decode,
		Encode: imagingEncoder(imaging.TIFF),
	})
	// x/image ships no webp encoder
	RegisterFormat(&Format{
		Name:   "webp",
		MIME:   "image/webp",
		Exts:   []string{".webp"},
		Decode: webp.Decode,
	})
}
