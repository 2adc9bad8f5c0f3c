package cmd

import (
	"errors"
	"flag"
	"fmt"

	"github.com/go-imsto/imresize/config"
	"github.com/go-imsto/imresize/image"
	zlog "github.com/go-imsto/imresize/log"
	"github.com/go-imsto/imresize/utils"
)

var cmdResize = &Command{
	UsageLine: "resize -p <file|dir> -r <W>x<H> -o <dir> [-f filter]",
	Short:     "resize a file or every entry of a directory",
	Long: `
Resize one image, or every entry of a directory (one level, listing order),
to exactly W x H pixels. Outputs are named <stem>-resized.<ext> in the output
directory, which must exist, and are encoded by their extension.

Filters: nearest, triangle, catmullrom, gaussian, lanczos3.
Engines: imaging, nfnt (no gaussian).

The first failure stops the run unless -k is given.
`,
}

func init() {
	cmdResize.Run = runResize
}

type resizeArgs struct {
	path       string
	resolution string
	filter     string
	output     string
	engine     string
	quality    int
	keepGoing  bool
}

func (a *resizeArgs) bind(fs *flag.FlagSet) {
	cur := config.Current
	fs.StringVar(&a.path, "path", "", "image file or directory (required)")
	fs.StringVar(&a.path, "p", "", "Same as -path")
	fs.StringVar(&a.resolution, "resolution", "", "target size as <W>x<H> (required)")
	fs.StringVar(&a.resolution, "r", "", "Same as -resolution")
	fs.StringVar(&a.filter, "filter", cur.Filter.String(), "nearest | triangle | catmullrom | gaussian | lanczos3")
	fs.StringVar(&a.filter, "f", cur.Filter.String(), "Same as -filter")
	fs.StringVar(&a.output, "output", "", "existing output directory (required)")
	fs.StringVar(&a.output, "o", "", "Same as -output")
	fs.StringVar(&a.engine, "engine", cur.Engine, "resample engine: imaging | nfnt")
	fs.StringVar(&a.engine, "e", cur.Engine, "Same as -engine")
	fs.IntVar(&a.quality, "quality", cur.Quality, "JPEG and AVIF quality (1-100)")
	fs.IntVar(&a.quality, "q", cur.Quality, "Same as -quality")
	fs.BoolVar(&a.keepGoing, "keep-going", false, "process every input and report all failures")
	fs.BoolVar(&a.keepGoing, "k", false, "Same as -keep-going")
}

// options validates the arguments and turns them into pipeline options.
// Nothing is read or written here apart from stat calls.
func (a *resizeArgs) options() ([]image.Option, error) {
	switch {
	case a.path == "":
		return nil, errors.New("missing required flag -path")
	case a.resolution == "":
		return nil, errors.New("missing required flag -resolution")
	case a.output == "":
		return nil, errors.New("missing required flag -output")
	}

	res, err := image.ParseResolution(a.resolution)
	if err != nil {
		return nil, err
	}
	filter, err := image.ParseFilter(a.filter)
	if err != nil {
		return nil, err
	}
	if a.quality < 1 || a.quality > 100 {
		return nil, fmt.Errorf("quality must be in range 1-100, got %d", a.quality)
	}
	if !utils.Exists(a.path) {
		return nil, fmt.Errorf("path %q does not exist", a.path)
	}
	if !utils.IsDir(a.output) {
		return nil, fmt.Errorf("output %q is not a directory", a.output)
	}

	return []image.Option{
		image.WithResolution(res),
		image.WithFilter(filter),
		image.WithOutput(a.output),
		image.WithEngine(a.engine),
		image.WithQuality(a.quality),
		image.WithKeepGoing(a.keepGoing),
		image.WithLogger(zlog.Get()),
	}, nil
}

func runResize(cmd *Command, args []string) error {
	fs := cmd.FlagSet()
	a := new(resizeArgs)
	a.bind(fs)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return errUsage
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	opts, err := a.options()
	if err != nil {
		return err
	}
	p, err := image.NewPipeline(opts...)
	if err != nil {
		return err
	}

	inputs, err := utils.ResolveInputs(a.path)
	if err != nil {
		return fmt.Errorf("failed to read path %q: %w", a.path, err)
	}
	zlog.Debugw("resize start", "inputs", len(inputs), "resolution", a.resolution,
		"filter", a.filter, "engine", a.engine, "output", a.output)

	rep, err := p.Process(inputs)
	zlog.Debugw("resize done", "written", rep.Len(), "inputs", len(inputs))
	return err
}
