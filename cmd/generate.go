package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/rubiojr/jnibind/bridge"
	"github.com/rubiojr/jnibind/generate"
	"github.com/rubiojr/jnibind/tmpl"
	"github.com/urfave/cli/v3"
)

// generateFlags returns the path flags of a generator run. The root
// command keeps them local so the generate subcommand can declare its own.
func generateFlags(local bool) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "surface-header",
			Usage:   "Path to UserMobileSurface.h",
			Value:   defaultSurfaceHeader,
			Sources: cli.EnvVars("JNIBIND_SURFACE_HEADER"),
			Local:   local,
		},
		&cli.StringFlag{
			Name:    "app-header",
			Usage:   "Path to MobileApp.h",
			Value:   defaultAppHeader,
			Sources: cli.EnvVars("JNIBIND_APP_HEADER"),
			Local:   local,
		},
		&cli.StringFlag{
			Name:    "jni",
			Usage:   "Output folder for the JNI sources and jpaths.h",
			Value:   defaultJNIDir,
			Sources: cli.EnvVars("JNIBIND_JNI_DIR"),
			Local:   local,
		},
		&cli.StringFlag{
			Name:    "java-src",
			Usage:   "Java source root; the package folder below it must exist",
			Value:   defaultJavaSrc,
			Sources: cli.EnvVars("JNIBIND_JAVA_SRC"),
			Local:   local,
		},
	}
}

func generateAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() > 0 {
		return fmt.Errorf("unexpected argument %q", cmd.Args().First())
	}
	out := cmd.Root().Writer
	cfg := &generate.Config{
		Sets:        generate.DefaultSets(cmd.String("surface-header"), cmd.String("app-header")),
		JNIDir:      cmd.String("jni"),
		JavaSrc:     cmd.String("java-src"),
		Package:     cmd.String("package"),
		PathClasses: generate.DefaultPathClasses,
		Templates:   loader(cmd),
		Report: func(path string) {
			fmt.Fprintf(out, "Generated: %s\n", path)
		},
	}

	if _, err := generate.Run(cfg, bridge.NewRegistry()); err != nil {
		return err
	}
	fmt.Fprintln(out, colorize(useColor(cmd)).Color("[green]I have completed."))
	return nil
}

func emitAction(ctx context.Context, cmd *cli.Command) error {
	set := generate.Set{
		Header:      cmd.String("header"),
		Sentinel:    cmd.String("sentinel"),
		ClassName:   cmd.String("class"),
		NativeClass: cmd.String("native-class"),
		Include:     cmd.String("include"),
		NeedsHandle: cmd.Bool("handle"),
		HandleField: cmd.String("handle-field"),
	}
	if set.NativeClass == "" {
		set.NativeClass = set.ClassName
	}

	g := generate.NewGenerator(bridge.NewRegistry(), loader(cmd))
	native, managed, err := g.Render(set, cmd.String("package"))
	if err != nil {
		return err
	}

	out := cmd.Root().Writer
	if err := writeSection(out, native.Path, native.Content); err != nil {
		return err
	}
	return writeSection(out, managed.Path, managed.Content)
}

func writeSection(w io.Writer, name string, content []byte) error {
	if _, err := fmt.Fprintf(w, "// ---- %s ----\n", name); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if _, err := w.Write(content); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

func loader(cmd *cli.Command) *tmpl.Loader {
	return &tmpl.Loader{Dir: cmd.String("templates")}
}
