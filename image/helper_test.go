package image

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type encodeFn func(w io.Writer, m image.Image) error

func encPNG(w io.Writer, m image.Image) error { return png.Encode(w, m) }

func encJPEG(w io.Writer, m image.Image) error {
	return jpeg.Encode(w, m, &jpeg.Options{Quality: 90})
}

func encGIF(w io.Writer, m image.Image) error { return gif.Encode(w, m, nil) }

// gradient returns a w x h image whose pixels depend on their position
func gradient(w, h int) image.Image {
	m := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.Set(x, y, color.RGBA{R: uint8(x * 255 / w), G: uint8(y * 255 / h), B: 128, A: 255})
		}
	}
	return m
}

func encodeBytes(t *testing.T, w, h int, enc encodeFn) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, enc(&buf, gradient(w, h)))
	return buf.Bytes()
}

func writeImage(t *testing.T, dir, name string, w, h int, enc encodeFn) string {
	t.Helper()
	return writeRaw(t, dir, name, encodeBytes(t, w, h, enc))
}

func writeRaw(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	fn := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(fn, data, 0644))
	return fn
}

func decodeFile(t *testing.T, fn string) (image.Image, string) {
	t.Helper()
	f, err := os.Open(fn)
	require.NoError(t, err)
	defer f.Close()
	m, format, err := image.Decode(f)
	require.NoError(t, err)
	return m, format
}

func countFiles(t *testing.T, dir string) int {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	return len(entries)
}
