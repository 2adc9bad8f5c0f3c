package image

import (
	"image"
	"io"
	"strings"
	"sync"
)

// DecodeFunc decodes a whole image of one known format
type DecodeFunc func(r io.Reader) (image.Image, error)

// EncodeFunc writes m in one known format
type EncodeFunc func(w io.Writer, m image.Image, wopt WriteOption) error

// Format is one entry of the codec registry
type Format struct {
	Name   string
	MIME   string
	Exts   []string
	Decode DecodeFunc
	Encode EncodeFunc // nil when the format is read-only
}

// CanEncode ...
func (f *Format) CanEncode() bool {
	return f != nil && f.Encode != nil
}

var (
	formatsMu sync.RWMutex
	formats   []*Format
)

// RegisterFormat adds f to the registry, replacing any entry with the same name.
func RegisterFormat(f *Format) {
	formatsMu.Lock()
	defer formatsMu.Unlock()
	for i, o := range formats {
		if o.Name == f.Name {
			formats[i] = f
			return
		}
	}
	formats = append(formats, f)
}

// Formats returns registered formats in registration order
func Formats() []*Format {
	formatsMu.RLock()
	defer formatsMu.RUnlock()
	out := make([]*Format, len(formats))
	copy(out, formats)
	return out
}

// FormatByExt looks up a format by file extension, with or without the
// leading dot, ignoring case.
func FormatByExt(ext string) (*Format, bool) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if ext == "" {
		return nil, false
	}
	formatsMu.RLock()
	defer formatsMu.RUnlock()
	for _, f := range formats {
		for _, e := range f.Exts {
			if e == "."+ext {
				return f, true
			}
		}
	}
	return nil, false
}

// FormatByMIME ...
func FormatByMIME(mime string) (*Format, bool) {
	formatsMu.RLock()
	defer formatsMu.RUnlock()
	for _, f := range formats {
		if f.MIME == mime {
			return f, true
		}
	}
	return nil, false
}

// SaveTo encodes m as the format named by ext and returns bytes written
func SaveTo(w io.Writer, m image.Image, ext string, wopt WriteOption) (int, error) {
	f, ok := FormatByExt(ext)
	if !ok || !f.CanEncode() {
		return 0, ErrNoEncoder
	}
	cw := &CountWriter{}
	if err := f.Encode(io.MultiWriter(w, cw), m, wopt); err != nil {
		return cw.Len(), err
	}
	return cw.Len(), nil
}
