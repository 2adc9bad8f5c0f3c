package image

import (
	"errors"
	"fmt"
)

// Kind classifies where a run failed
type Kind uint8

const (
	KindParse Kind = iota + 1
	KindPathShape
	KindIO
	KindFormatDetection
	KindDecode
	KindSave
)

func (k Kind) String() string {
	switch k {
	case KindParse:
		return "parse"
	case KindPathShape:
		return "path shape"
	case KindIO:
		return "io"
	case KindFormatDetection:
		return "format detection"
	case KindDecode:
		return "decode"
	case KindSave:
		return "save"
	}
	return "unknown"
}

// sentinels for errors.Is
var (
	ErrParse           = &Error{Kind: KindParse}
	ErrPathShape       = &Error{Kind: KindPathShape}
	ErrIO              = &Error{Kind: KindIO}
	ErrFormatDetection = &Error{Kind: KindFormatDetection}
	ErrDecode          = &Error{Kind: KindDecode}
	ErrSave            = &Error{Kind: KindSave}
)

var (
	ErrorFormat        = errors.New("invalid or unsupported image format")
	ErrNoEncoder       = errors.New("no encoder for extension")
	ErrUnknownEngine   = errors.New("unknown resample engine")
	ErrUnsupportedFilt = errors.New("filter not supported by engine")
)

// Error is a tagged failure of one pipeline step
type Error struct {
	Kind Kind
	Path string
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = e.Kind.String() + " error"
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches on Kind, so errors.Is(err, ErrDecode) holds for any decode failure.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func newError(kind Kind, path string, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Path: path, Msg: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the Kind of err, or 0 if err is not an *Error
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
