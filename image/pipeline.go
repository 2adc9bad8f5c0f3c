package image

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/multierr"

	"github.com/go-imsto/imresize/hash"
	zlog "github.com/go-imsto/imresize/log"
)

// Result of one resized file
type Result struct {
	Source string `json:"source"`
	Output string `json:"output"`
	Format string `json:"format"`
	Orig   *Attr  `json:"orig"`
	Attr   *Attr  `json:"attr"`
	Hash   string `json:"hash"`
}

// Report lists the successful results of a run in input order
type Report struct {
	Results []*Result
}

// Len ...
func (r *Report) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Results)
}

// Pipeline resizes files one by one into an output directory
type Pipeline struct {
	filter    Filter
	res       Resolution
	outDir    string
	engine    string
	rs        Resampler
	wopt      WriteOption
	keepGoing bool
	logger    zlog.Logger
}

// NewPipeline validates opts and returns a ready pipeline
func NewPipeline(opts ...Option) (*Pipeline, error) {
	p := &Pipeline{
		filter: Nearest,
		engine: EngineImaging,
		wopt:   WriteOption{Quality: MIN_JPEG_QUALITY},
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.res.IsZero() {
		return nil, newError(KindParse, "", nil, "invalid resolution %s: dimensions must be greater than zero", p.res)
	}
	if p.outDir == "" {
		return nil, newError(KindParse, "", nil, "output directory is required")
	}
	if p.rs == nil {
		rs, err := NewResampler(p.engine)
		if err != nil {
			return nil, newError(KindParse, "", err, "invalid engine")
		}
		p.rs = rs
	}
	if !p.rs.Supports(p.filter) {
		return nil, newError(KindParse, "", ErrUnsupportedFilt, "filter %s with engine %s", p.filter, p.rs.Name())
	}
	if p.logger == nil {
		p.logger = zlog.Get()
	}
	return p, nil
}

// Process runs every input in order. Unless keep-going is set the first
// failure aborts the run and the remaining inputs are never opened.
func (p *Pipeline) Process(inputs []string) (*Report, error) {
	rep := &Report{}
	var errs error
	for _, src := range inputs {
		r, err := p.ProcessFile(src)
		if err != nil {
			if !p.keepGoing {
				return rep, err
			}
			p.logger.Warnw("resize fail", "src", src, "err", err)
			errs = multierr.Append(errs, err)
			continue
		}
		rep.Results = append(rep.Results, r)
	}
	return rep, errs
}

// ProcessFile resizes a single file
func (p *Pipeline) ProcessFile(src string) (*Result, error) {
	dst, err := OutputPath(src, p.outDir)
	if err != nil {
		return nil, err
	}

	m, format, err := p.load(src)
	if err != nil {
		return nil, err
	}
	orig := attrOf(m)
	orig.Ext = filepath.Ext(src)
	orig.Mime = format.MIME
	orig.Name = filepath.Base(src)
	p.logger.Debugw("decoded", "src", src, "format", format.Name, "width", orig.Width, "height", orig.Height)

	out, err := p.rs.Resize(m, uint(p.res.Width), uint(p.res.Height), p.filter)
	if err != nil {
		return nil, newError(KindDecode, src, err, "failed to resize the image: %s", src)
	}

	attr, sum, err := p.save(dst, out)
	if err != nil {
		return nil, err
	}
	p.logger.Debugw("saved", "dst", dst, "attr", attr.ToMap(), "hash", sum,
		"filter", p.filter.String(), "engine", p.rs.Name())

	return &Result{
		Source: src,
		Output: dst,
		Format: format.Name,
		Orig:   orig,
		Attr:   attr,
		Hash:   sum,
	}, nil
}

func (p *Pipeline) load(src string) (image.Image, *Format, error) {
	fp, err := os.Open(src)
	if err != nil {
		return nil, nil, newError(KindIO, src, err, "failed to open an image: %s", src)
	}
	defer fp.Close()

	format, err := GuessFormat(fp)
	if err != nil {
		if errors.Is(err, ErrorFormat) {
			return nil, nil, newError(KindFormatDetection, src, err, "failed to detect format of the image: %s", src)
		}
		return nil, nil, newError(KindIO, src, err, "failed to read an image: %s", src)
	}

	m, err := format.Decode(bufio.NewReader(fp))
	if err != nil {
		return nil, nil, newError(KindDecode, src, err, "failed to decode the image: %s", src)
	}
	return m, format, nil
}

func (p *Pipeline) save(dst string, m image.Image) (attr *Attr, sum string, err error) {
	ext := filepath.Ext(dst)
	format, ok := FormatByExt(ext)
	if !ok || !format.CanEncode() {
		err = newError(KindSave, dst, fmt.Errorf("%w %q", ErrNoEncoder, ext), "failed to save an image at the path %q", dst)
		return
	}

	var out *os.File
	out, err = os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, os.FileMode(0644))
	if err != nil {
		err = newError(KindSave, dst, err, "failed to save an image at the path %q", dst)
		return
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = newError(KindSave, dst, cerr, "failed to save an image at the path %q", dst)
		}
	}()

	h := hash.New()
	bw := bufio.NewWriter(out)
	var n int
	n, err = SaveTo(io.MultiWriter(bw, h), m, ext, p.wopt)
	if err == nil {
		err = bw.Flush()
	}
	if err != nil {
		err = newError(KindSave, dst, err, "failed to save an image at the path %q", dst)
		return
	}

	attr = attrOf(m)
	attr.Size = Size(n)
	attr.Ext = ext
	attr.Mime = format.MIME
	attr.Name = filepath.Base(dst)
	sum = h.String()
	return
}
