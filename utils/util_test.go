package utils

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveInputs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.png", "a.jpg", "c.gif"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub", "deep.png"), 0755))

	list, err := ResolveInputs(dir)
	require.NoError(t, err)
	sort.Strings(list)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.jpg"),
		filepath.Join(dir, "b.png"),
		filepath.Join(dir, "c.gif"),
		filepath.Join(dir, "sub"),
	}, list)

	one, err := ResolveInputs(filepath.Join(dir, "a.jpg"))
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.jpg")}, one)

	_, err = ResolveInputs(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestFileChecks(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "f")
	require.NoError(t, os.WriteFile(fn, nil, 0644))

	assert.True(t, IsDir(dir))
	assert.False(t, IsDir(fn))
	assert.True(t, IsRegular(fn))
	assert.False(t, IsRegular(dir))
	assert.True(t, Exists(fn))
	assert.False(t, Exists(filepath.Join(dir, "none")))
}
