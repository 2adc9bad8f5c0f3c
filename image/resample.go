package image

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
)

// Resampler scales an image to an exact size, ignoring the source aspect ratio
type Resampler interface {
	Name() string
	Supports(f Filter) bool
	Resize(m image.Image, width, height uint, f Filter) (image.Image, error)
}

const (
	EngineImaging = "imaging"
	EngineNfnt    = "nfnt"
)

// NewResampler returns the engine registered under name
func NewResampler(name string) (Resampler, error) {
	switch name {
	case "", EngineImaging:
		return imagingResampler{}, nil
	case EngineNfnt:
		return nfntResampler{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
}

type imagingResampler struct{}

var imagingFilters = map[Filter]imaging.ResampleFilter{
	Nearest:    imaging.NearestNeighbor,
	Triangle:   imaging.Linear,
	CatmullRom: imaging.CatmullRom,
	Gaussian:   imaging.Gaussian,
	Lanczos3:   imaging.Lanczos,
}

func (imagingResampler) Name() string { return EngineImaging }

func (imagingResampler) Supports(f Filter) bool {
	_, ok := imagingFilters[f]
	return ok
}

func (z imagingResampler) Resize(m image.Image, width, height uint, f Filter) (image.Image, error) {
	rf, ok := imagingFilters[f]
	if !ok {
		return nil, fmt.Errorf("%w: %s with %s", ErrUnsupportedFilt, f, z.Name())
	}
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("invalid target size %dx%d", width, height)
	}
	return imaging.Resize(m, int(width), int(height), rf), nil
}

// nfntResampler has no gaussian kernel
type nfntResampler struct{}

var nfntFilters = map[Filter]resize.InterpolationFunction{
	Nearest:    resize.NearestNeighbor,
	Triangle:   resize.Bilinear,
	CatmullRom: resize.Bicubic,
	Lanczos3:   resize.Lanczos3,
}

func (nfntResampler) Name() string { return EngineNfnt }

func (nfntResampler) Supports(f Filter) bool {
	_, ok := nfntFilters[f]
	return ok
}

func (z nfntResampler) Resize(m image.Image, width, height uint, f Filter) (image.Image, error) {
	interp, ok := nfntFilters[f]
	if !ok {
		return nil, fmt.Errorf("%w: %s with %s", ErrUnsupportedFilt, f, z.Name())
	}
	// zero would make resize.Resize keep the aspect ratio
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("invalid target size %dx%d", width, height)
	}
	return resize.Resize(width, height, m, interp), nil
}
