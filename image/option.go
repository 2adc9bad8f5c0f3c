package image

import (
	zlog "github.com/go-imsto/imresize/log"
)

// Option configures a Pipeline
type Option func(*Pipeline)

func WithFilter(f Filter) Option {
	return func(p *Pipeline) {
		p.filter = f
	}
}

func WithResolution(r Resolution) Option {
	return func(p *Pipeline) {
		p.res = r
	}
}

// WithOutput sets the destination directory, which must already exist
func WithOutput(dir string) Option {
	return func(p *Pipeline) {
		p.outDir = dir
	}
}

// WithEngine selects a resampler by name: imaging or nfnt
func WithEngine(name string) Option {
	return func(p *Pipeline) {
		p.engine = name
	}
}

func WithResampler(rs Resampler) Option {
	return func(p *Pipeline) {
		p.rs = rs
	}
}

// WithQuality sets JPEG and AVIF quality, 1-100; zero keeps the default
func WithQuality(q int) Option {
	return func(p *Pipeline) {
		if q > 0 && q <= 100 {
			p.wopt.Quality = Quality(q)
		}
	}
}

// WithKeepGoing collects per-file failures instead of aborting on the first
func WithKeepGoing(on bool) Option {
	return func(p *Pipeline) {
		p.keepGoing = on
	}
}

func WithLogger(l zlog.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.logger = l
		}
	}
}
