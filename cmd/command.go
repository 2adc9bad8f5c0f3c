// Package cmd The command line tool for running imresize.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/go-imsto/imresize/config"
	zlog "github.com/go-imsto/imresize/log"
)

// Command Cribbed from the genius organization of the "go" command.
type Command struct {
	Run                    func(cmd *Command, args []string) error
	UsageLine, Short, Long string

	stdout, stderr io.Writer
}

func (cmd *Command) Name() string {
	name := cmd.UsageLine
	i := strings.Index(name, " ")
	if i >= 0 {
		name = name[:i]
	}
	return name
}

// FlagSet returns a fresh flag set for one invocation
func (cmd *Command) FlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(cmd.stderr)
	fs.Usage = func() {
		fmt.Fprintf(cmd.stderr, "Usage: imresize %s\n", cmd.UsageLine)
		fmt.Fprintf(cmd.stderr, "Default Usage:\n")
		fs.PrintDefaults()
		fmt.Fprintf(cmd.stderr, "Description:\n")
		fmt.Fprintf(cmd.stderr, "  %s\n", strings.TrimSpace(cmd.Long))
	}
	return fs
}

// errUsage asks Main to exit with status 2 after the usage was printed
var errUsage = errors.New("usage")

var commands = []*Command{
	cmdResize,
	cmdFormats,
	cmdCompare,
	cmdProbe,
	cmdVersion,
}

// Main parses os.Args and exits
func Main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run returns the process exit status. Flags without a leading command name
// go to resize.
func run(args []string, stdout, stderr io.Writer) int {
	if err := config.Load(); err != nil {
		fmt.Fprintf(stdout, "error: %s\n", err)
		return 1
	}

	logger, err := zlog.New(config.InDevelop(), config.Current.LogLevel)
	if err != nil {
		fmt.Fprintf(stdout, "error: %s\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()
	zlog.Set(logger)

	if len(args) < 1 {
		usage(stderr)
		return 2
	}

	if args[0] == "help" {
		if len(args) > 1 {
			for _, cmd := range commands {
				if cmd.Name() == args[1] {
					tmpl(stdout, helpTemplate, cmd)
					return 0
				}
			}
		}
		usage(stdout)
		return 0
	}

	cmd := cmdResize
	if !strings.HasPrefix(args[0], "-") {
		cmd = nil
		for _, c := range commands {
			if c.Name() == args[0] {
				cmd = c
				break
			}
		}
		if cmd == nil {
			errorf(stderr, "unknown command %q\nRun 'imresize help' for usage.\n", args[0])
			return 2
		}
		args = args[1:]
	}

	cmd.stdout, cmd.stderr = stdout, stderr
	if err := cmd.Run(cmd, args); err != nil {
		switch {
		case errors.Is(err, flag.ErrHelp):
			return 0
		case errors.Is(err, errUsage):
			return 2
		}
		zlog.Debugw("command fail", "cmd", cmd.Name(), "err", err)
		fmt.Fprintf(stdout, "error: %s\n", err)
		return 1
	}
	return 0
}

func errorf(w io.Writer, format string, args ...interface{}) {
	// Ensure the user's command prompt starts on the next line.
	if !strings.HasSuffix(format, "\n") {
		format += "\n"
	}
	fmt.Fprintf(w, format, args...)
}

const usageTemplate = `usage: imresize [command] [arguments]

The commands are:
{{range .}}
    {{.Name | printf "%-11s"}} {{.Short}}{{end}}

Without a command, arguments are passed to resize.
Use "imresize help [command]" for more information.
`

var helpTemplate = `usage: imresize {{.UsageLine}}
{{.Long}}
`

func usage(w io.Writer) {
	fmt.Fprintln(w, "version ", config.Version)
	tmpl(w, usageTemplate, commands)
}

func tmpl(w io.Writer, text string, data interface{}) {
	t := template.New("top")
	template.Must(t.Parse(text))
	if err := t.Execute(w, data); err != nil {
		panic(err)
	}
}
