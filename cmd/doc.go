package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rubiojr/jnibind/bridge"
	"github.com/rubiojr/jnibind/decl"
	"github.com/rubiojr/jnibind/doc"
	"github.com/urfave/cli/v3"
)

func docAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 1 || cmd.NArg() > 2 {
		return fmt.Errorf("usage: jnibind doc [--sentinel S] [--handle] <header> [method]")
	}
	header := cmd.Args().First()

	p := decl.NewParser(bridge.NewRegistry())
	actions, err := p.ExtractFile(header, cmd.String("sentinel"), cmd.Bool("handle"))
	if err != nil {
		return err
	}
	sd, err := doc.ExtractFile(actions)
	if err != nil {
		return err
	}

	out := cmd.Root().Writer
	if cmd.NArg() == 2 {
		name := cmd.Args().Get(1)
		found := doc.Lookup(sd, name)
		if len(found) == 0 {
			return fmt.Errorf("no binding named %q in %s", name, header)
		}
		for _, md := range found {
			fmt.Fprint(out, doc.FormatMethod(md, sd.NeedsHandle))
		}
		return nil
	}

	class := cmd.String("class")
	if class == "" {
		class = strings.TrimSuffix(filepath.Base(header), filepath.Ext(header))
	}
	fmt.Fprint(out, doc.FormatSet(sd, class))
	return nil
}
