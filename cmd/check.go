package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-runewidth"
	"github.com/rubiojr/jnibind/bridge"
	"github.com/rubiojr/jnibind/decl"
	"github.com/urfave/cli/v3"
	mscanner "modernc.org/scanner"
)

func checkAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 1 {
		return fmt.Errorf("usage: jnibind check <header> [header...]")
	}

	out := cmd.Root().Writer
	c := colorize(useColor(cmd))
	p := decl.NewParser(bridge.NewRegistry())

	problems := 0
	for _, path := range cmd.Args().Slice() {
		src, err := os.ReadFile(path)
		if err != nil {
			return &decl.MissingFileError{Path: path, Err: err}
		}
		clean := true
		for _, sentinel := range cmd.StringSlice("sentinel") {
			err := p.Check(src, path, sentinel)
			if err == nil {
				continue
			}
			var list mscanner.ErrList
			if !errors.As(err, &list) {
				return err
			}
			for _, e := range list {
				fmt.Fprintf(out, "%s: %v\n", e.Pos, e.Err)
			}
			problems += len(list)
			clean = false
		}
		if clean {
			fmt.Fprintln(out, c.Color("[green]ok[reset] "+path))
		}
	}

	if problems > 0 {
		return fmt.Errorf("%d problem(s) found", problems)
	}
	return nil
}

func typesAction(ctx context.Context, cmd *cli.Command) error {
	out := cmd.Root().Writer
	reg := bridge.NewRegistry()

	header := []string{"NATIVE", "CODE", "JNI", "JAVA", "SYMBOL", "ARRAY HELPER"}
	rows := [][]string{header}
	for _, t := range reg.Types() {
		d := t.Descriptor()
		helper := d.ArrayHelper
		if !t.Arrayable() {
			helper = "-"
		}
		rows = append(rows, []string{d.Native, d.Code, d.JNIType, d.JavaType, d.Symbol, helper})
	}

	widths := make([]int, len(header))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}
	for _, row := range rows {
		line := ""
		for i, cell := range row {
			if i == len(row)-1 {
				line += cell
				break
			}
			line += runewidth.FillRight(cell, widths[i]+2)
		}
		fmt.Fprintln(out, line)
	}
	return nil
}
