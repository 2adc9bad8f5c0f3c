package image

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilter(t *testing.T) {
	want := map[string]Filter{
		"nearest":    Nearest,
		"triangle":   Triangle,
		"catmullrom": CatmullRom,
		"gaussian":   Gaussian,
		"lanczos3":   Lanczos3,
	}
	seen := map[Filter]bool{}
	for s, f := range want {
		got, err := ParseFilter(s)
		require.NoError(t, err, s)
		assert.Equal(t, f, got)
		assert.Equal(t, s, got.String())
		seen[got] = true
	}
	assert.Len(t, seen, 5)
	assert.Len(t, Filters(), 5)

	for _, s := range []string{"", "Nearest", "lanczos", "bicubic", " nearest", "LANCZOS3"} {
		_, err := ParseFilter(s)
		assert.True(t, errors.Is(err, ErrParse), "%q: %v", s, err)
	}
}

func TestFilterText(t *testing.T) {
	var f Filter
	require.NoError(t, f.UnmarshalText([]byte("gaussian")))
	assert.Equal(t, Gaussian, f)

	b, err := CatmullRom.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "catmullrom", string(b))

	assert.Error(t, f.UnmarshalText([]byte("box")))
	assert.Equal(t, "unknown", Filter(99).String())
}
