package cmd

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"os"
	"strings"
	"text/template"

	"github.com/go-imsto/imresize/config"
	cimg "github.com/go-imsto/imresize/image"
)

var cmdFormats = &Command{
	UsageLine: "formats",
	Short:     "list the image formats that can be read and written",
	Long: `
List every registered format with its extensions. Output files are encoded
by the format matching their extension, so only formats marked writable can
be used as a resize input extension.
`,
}

var cmdProbe = &Command{
	UsageLine: "probe filename ...",
	Short:     "print detected format and dimensions of files",
	Long: `
Detect the format of each file from its content and print its dimensions.
`,
}

var cmdVersion = &Command{
	UsageLine: "version",
	Short:     "print version",
	Long: `
Print version.
`,
}

func init() {
	cmdFormats.Run = runFormats
	cmdProbe.Run = runProbe
	cmdVersion.Run = func(cmd *Command, args []string) error {
		fmt.Fprintln(cmd.stdout, "imresize", config.Version)
		return nil
	}
}

const formatsTemplate = `{{range .}}{{.Name | printf "%-6s"}} {{if .CanEncode}}rw{{else}}r-{{end}}  {{.MIME | printf "%-11s"}} {{join .Exts " "}}
{{end}}`

func runFormats(cmd *Command, args []string) error {
	t := templateWith(formatsTemplate)
	return t.Execute(cmd.stdout, cimg.Formats())
}

func runProbe(cmd *Command, args []string) error {
	fs := cmd.FlagSet()
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return errUsage
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errUsage
	}
	for _, fn := range fs.Args() {
		format, cfg, err := probeFile(fn)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.stdout, "%s\t%s\t%dx%d\n", fn, format.Name, cfg.Width, cfg.Height)
	}
	return nil
}

func probeFile(fn string) (*cimg.Format, image.Config, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, image.Config{}, err
	}
	defer f.Close()

	format, err := cimg.GuessFormat(f)
	if err != nil {
		return nil, image.Config{}, fmt.Errorf("%s: %w", fn, err)
	}
	m, err := format.Decode(f)
	if err != nil {
		return nil, image.Config{}, fmt.Errorf("%s: %w", fn, err)
	}
	b := m.Bounds()
	return format, image.Config{Width: b.Dx(), Height: b.Dy(), ColorModel: m.ColorModel()}, nil
}

func templateWith(text string) *template.Template {
	return template.Must(template.New("formats").Funcs(template.FuncMap{
		"join": strings.Join,
	}).Parse(text))
}
