package cmd

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	cimg "github.com/go-imsto/imresize/image"
	zlog "github.com/go-imsto/imresize/log"
	"github.com/go-imsto/imresize/utils"
)

var cmdCompare = &Command{
	UsageLine: "compare -r <W>x<H> -o <dir> filename",
	Short:     "resize one image with every engine and filter",
	Long: `
Resize one image once per engine and filter pair, writing
<stem>-<engine>-<filter>.<ext> into the output directory so the kernels
can be compared side by side. Pairs an engine does not support are skipped.
`,
}

func init() {
	cmdCompare.Run = runCompare
}

func runCompare(cmd *Command, args []string) error {
	fs := cmd.FlagSet()
	var resolution, output string
	fs.StringVar(&resolution, "r", "", "target size as <W>x<H>")
	fs.StringVar(&output, "o", "", "existing output directory")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return errUsage
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errUsage
	}
	src := fs.Arg(0)

	res, err := cimg.ParseResolution(resolution)
	if err != nil {
		return err
	}
	if !utils.IsDir(output) {
		return fmt.Errorf("output %q is not a directory", output)
	}
	name, err := cimg.OutputPath(src, output)
	if err != nil {
		return err
	}
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(strings.TrimSuffix(filepath.Base(name), ext), cimg.ResizedSuffix)

	for _, engine := range []string{cimg.EngineImaging, cimg.EngineNfnt} {
		rs, _ := cimg.NewResampler(engine)
		for _, f := range cimg.Filters() {
			if !rs.Supports(f) {
				continue
			}
			dst := filepath.Join(output, fmt.Sprintf("%s-%s-%s%s", stem, engine, f, ext))
			p, err := cimg.NewPipeline(
				cimg.WithResolution(res),
				cimg.WithFilter(f),
				cimg.WithResampler(rs),
				cimg.WithOutput(output),
			)
			if err != nil {
				return err
			}
			r, err := p.ProcessFile(src)
			if err != nil {
				return err
			}
			if err = os.Rename(r.Output, dst); err != nil {
				return err
			}
			zlog.Debugw("compare", "dst", dst, "hash", r.Hash)
			fmt.Fprintln(cmd.stdout, dst)
		}
	}
	return nil
}
