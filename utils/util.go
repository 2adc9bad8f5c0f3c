package utils

import (
	"os"
	"path/filepath"
)

// Exists returns true if a file exists
func Exists(fpath string) bool {
	_, err := os.Stat(fpath)
	return !os.IsNotExist(err)
}

// IsDir ...
func IsDir(fpath string) bool {
	fi, err := os.Stat(fpath)
	return err == nil && fi.Mode().IsDir()
}

// IsRegular ...
func IsRegular(fpath string) bool {
	fi, err := os.Stat(fpath)
	return err == nil && fi.Mode().IsRegular()
}

// ListDir returns every entry directly under dir joined with dir, in the
// order the filesystem enumerates them. Nothing is sorted or filtered.
func ListDir(dir string) ([]string, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	names, err := f.Readdirnames(-1)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = filepath.Join(dir, name)
	}
	return out, nil
}

// ResolveInputs expands fpath to a one-element list for a file, or to
// ListDir for a directory.
func ResolveInputs(fpath string) ([]string, error) {
	fi, err := os.Stat(fpath)
	if err != nil {
		return nil, err
	}
	if fi.IsDir() {
		return ListDir(fpath)
	}
	return []string{fpath}, nil
}
