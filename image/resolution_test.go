package image

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResolution(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Resolution
		wantErr bool
	}{
		{name: "common", input: "800x600", want: Resolution{Width: 800, Height: 600}},
		{name: "square", input: "10x10", want: Resolution{Width: 10, Height: 10}},
		{name: "max uint32", input: "4294967295x1", want: Resolution{Width: 4294967295, Height: 1}},
		{name: "no separator", input: "800", wantErr: true},
		{name: "height not numeric", input: "800xabc", wantErr: true},
		{name: "width missing", input: "x600", wantErr: true},
		{name: "height missing", input: "800x", wantErr: true},
		{name: "upper X", input: "800X600", wantErr: true},
		{name: "negative", input: "-1x10", wantErr: true},
		{name: "overflow", input: "4294967296x1", wantErr: true},
		{name: "zero width", input: "0x10", wantErr: true},
		{name: "zero height", input: "10x0", wantErr: true},
		{name: "extra part", input: "1x2x3", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ParseResolution(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrParse), "want parse error, got %v", err)
				assert.Equal(t, KindParse, KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, r)
			assert.Equal(t, tt.input, r.String())
		})
	}
}

func TestResolutionText(t *testing.T) {
	var r Resolution
	require.NoError(t, r.UnmarshalText([]byte("320x240")))
	assert.Equal(t, Resolution{Width: 320, Height: 240}, r)

	b, err := r.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "320x240", string(b))

	assert.Error(t, r.UnmarshalText([]byte("320")))
	assert.Equal(t, Resolution{Width: 320, Height: 240}, r)
}
