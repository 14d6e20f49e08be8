package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mitchellh/colorstring"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// useColor reports whether status and error output may carry ANSI codes.
func useColor(cmd *cli.Command) bool {
	if cmd.Bool("no-color") || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stderr.Fd()))
}

func colorize(enabled bool) *colorstring.Colorize {
	return &colorstring.Colorize{
		Colors:  colorstring.DefaultColors,
		Disable: !enabled,
		Reset:   true,
	}
}

// report prints err as "error: <msg>" followed by its wrap chain, one
// error per line, outermost first.
func report(w io.Writer, err error, color bool) {
	fmt.Fprintf(w, "%s %v\n", colorize(color).Color("[red]error:"), err)
	for depth, e := 0, err; e != nil; depth, e = depth+1, errors.Unwrap(e) {
		fmt.Fprintf(w, "  %d: %T: %v\n", depth, e, e)
	}
}
