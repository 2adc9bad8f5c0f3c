package image

import (
	"fmt"
	"strconv"
	"strings"
)

// Resolution is an exact target size in pixels
type Resolution struct {
	Width  uint32 `json:"width"`
	Height uint32 `json:"height"`
}

func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// IsZero reports whether either side is zero
func (r Resolution) IsZero() bool {
	return r.Width == 0 || r.Height == 0
}

// ParseResolution parses "<width>x<height>", e.g. "800x600"
func ParseResolution(s string) (r Resolution, err error) {
	i := strings.Index(s, "x")
	if i < 0 {
		err = newError(KindParse, "", nil, "invalid resolution %q: missing 'x' separator", s)
		return
	}
	var w, h uint64
	w, err = strconv.ParseUint(s[:i], 10, 32)
	if err != nil {
		err = newError(KindParse, "", err, "failed to parse resolution's width %q", s[:i])
		return
	}
	h, err = strconv.ParseUint(s[i+1:], 10, 32)
	if err != nil {
		err = newError(KindParse, "", err, "failed to parse resolution's height %q", s[i+1:])
		return
	}
	r = Resolution{Width: uint32(w), Height: uint32(h)}
	if r.IsZero() {
		err = newError(KindParse, "", nil, "invalid resolution %q: dimensions must be greater than zero", s)
		return Resolution{}, err
	}
	return
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (r *Resolution) UnmarshalText(data []byte) error {
	v, err := ParseResolution(string(data))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface.
func (r Resolution) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}
