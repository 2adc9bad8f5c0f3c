package image

import (
	"path/filepath"
	"strings"
)

// ResizedSuffix is inserted between the stem and the extension of every output
const ResizedSuffix = "-resized"

// OutputPath maps src to <dir>/<stem>-resized.<ext>, keeping the extension verbatim.
func OutputPath(src, dir string) (string, error) {
	base := filepath.Base(src)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if stem == "" || base == string(filepath.Separator) {
		return "", newError(KindPathShape, src, nil, "failed to get name of the file: %s", src)
	}
	if len(ext) < 2 {
		return "", newError(KindPathShape, src, nil, "failed to get extension of the file: %s", src)
	}
	return filepath.Join(dir, stem+ResizedSuffix+ext), nil
}
