// Command softdemo runs a few soft assertion scenarios and prints what a flush reports for each.
//
//	softdemo [--format text|json|yaml] [--color auto|always|never] [--strict]
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"golang.org/x/term"
)

func main() {
	flags := pflag.NewFlagSet("softdemo", pflag.ContinueOnError)
	flags.SetInterspersed(false)
	var (
		format = flags.StringP("format", "f", formatText, "Output format: text, json, or yaml")
		color  = flags.String("color", "auto", "Colorize text output: auto, always, or never")
		strict = flags.Bool("strict", false, "Raise the first assertion failure instead of capturing it")
	)
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	opts := options{
		format: *format,
		strict: *strict,
	}
	switch *color {
	case "always":
		opts.color = true
	case "never":
	case "auto":
		opts.color = term.IsTerminal(int(os.Stdout.Fd()))
	default:
		_, _ = fmt.Fprintf(os.Stderr, "invalid color mode '%s'\n", *color)
		os.Exit(2)
	}

	failed, err := run(os.Stdout, opts, scenarios())
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if failed {
		os.Exit(1)
	}
}
