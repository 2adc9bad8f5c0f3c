package image

import (
	"io"

	"github.com/gabriel-vasile/mimetype"
)

// GuessFormat sniffs the head of r and rewinds it. An unknown container
// yields ErrorFormat; read and seek failures are returned as is.
func GuessFormat(r io.ReadSeeker) (*Format, error) {
	mt, err := mimetype.DetectReader(r)
	if err != nil {
		return nil, err
	}
	if _, err = r.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	for m := mt; m != nil; m = m.Parent() {
		for _, f := range Formats() {
			if m.Is(f.MIME) {
				return f, nil
			}
		}
	}
	return nil, ErrorFormat
}
