package image

import (
	"image"
)

type Dimension uint32
type Size uint32
type Quality uint8

// Attr describes one side of a resize: the decoded source or the written output
type Attr struct {
	Width  Dimension `json:"width"`
	Height Dimension `json:"height"`
	Size   Size      `json:"size,omitempty"`
	Ext    string    `json:"ext,omitempty"`
	Mime   string    `json:"mime,omitempty"`
	Name   string    `json:"name,omitempty"`
}

func (a Attr) ToMap() map[string]interface{} {
	m := map[string]interface{}{
		"width":  a.Width,
		"height": a.Height,
		"ext":    a.Ext,
		"mime":   a.Mime,
	}
	if a.Size > 0 {
		m["size"] = a.Size
	}
	return m
}

// export NewAttr
func NewAttr(w, h uint) *Attr {
	return &Attr{
		Width:  Dimension(w),
		Height: Dimension(h),
	}
}

func attrOf(m image.Image) *Attr {
	b := m.Bounds()
	return NewAttr(uint(b.Dx()), uint(b.Dy()))
}

// WriteOption ...
type WriteOption struct {
	Quality Quality
}
