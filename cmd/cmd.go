package cmd

import (
	"context"
	"os"

	"github.com/rubiojr/jnibind/emit"
	"github.com/rubiojr/jnibind/generate"
	"github.com/urfave/cli/v3"
)

// Default locations, relative to the root of the Android project.
const (
	defaultSurfaceHeader = "app/src/main/cpp/UserMobileSurface.h"
	defaultAppHeader     = "app/src/main/cpp/MobileApp.h"
	defaultJNIDir        = "app/src/main/cpp/JNI"
	defaultJavaSrc       = "app/src/main/java"
)

// Execute runs the jnibind CLI with the given version string.
func Execute(version string) {
	cmd := New(version)
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		report(os.Stderr, err, useColor(cmd))
		os.Exit(1)
	}
}

// New builds the command tree. Running it without a subcommand is the
// same as running generate.
func New(version string) *cli.Command {
	return &cli.Command{
		Name:    "jnibind",
		Usage:   "Generate JNI and Java bindings for annotated C++ declarations",
		Version: version,
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "package",
				Aliases: []string{"p"},
				Usage:   "Java package of the generated classes",
				Value:   generate.DefaultPackage,
				Sources: cli.EnvVars("JNIBIND_PACKAGE"),
			},
			&cli.StringFlag{
				Name:    "templates",
				Aliases: []string{"t"},
				Usage:   "Directory with templates overriding the built-in ones",
				Sources: cli.EnvVars("JNIBIND_TEMPLATES"),
			},
			&cli.BoolFlag{
				Name:    "no-color",
				Aliases: []string{"C"},
				Usage:   "Disable ANSI color output",
			},
		}, generateFlags(true)...),
		Action: generateAction,
		Commands: []*cli.Command{
			{
				Name:   "generate",
				Usage:  "Generate the JNI sources, Java classes and jpaths.h",
				Flags:  generateFlags(false),
				Action: generateAction,
			},
			{
				Name:  "emit",
				Usage: "Print the generated JNI and Java source of one declaration set",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "header", Usage: "C++ header with the marked declarations", Required: true},
					&cli.StringFlag{Name: "sentinel", Usage: "Token marking the declarations", Value: generate.AppSentinel},
					&cli.StringFlag{Name: "class", Usage: "Java class name", Required: true},
					&cli.StringFlag{Name: "native-class", Usage: "C++ class name; defaults to --class"},
					&cli.StringFlag{Name: "include", Usage: "Header included by the JNI source; defaults to the base name of --header"},
					&cli.BoolFlag{Name: "handle", Usage: "Pass an opaque instance pointer to every call"},
					&cli.StringFlag{Name: "handle-field", Usage: "Java field holding the instance pointer", Value: emit.DefaultHandleField},
				},
				Action: emitAction,
			},
			{
				Name:      "check",
				Usage:     "Report every declaration problem in the given headers",
				ArgsUsage: "<header> [header...]",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:  "sentinel",
						Usage: "Tokens marking the declarations",
						Value: []string{generate.SurfaceSentinel, generate.AppSentinel},
					},
				},
				Action: checkAction,
			},
			{
				Name:      "doc",
				Usage:     "Show the bindings of a header with their comments",
				ArgsUsage: "<header> [method]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "sentinel", Usage: "Token marking the declarations", Value: generate.SurfaceSentinel},
					&cli.StringFlag{Name: "class", Usage: "Java class name shown in the heading; defaults to the header name"},
					&cli.BoolFlag{Name: "handle", Usage: "Show signatures with the opaque instance pointer"},
				},
				Action: docAction,
			},
			{
				Name:   "types",
				Usage:  "List the supported native types and their JNI and Java mappings",
				Action: typesAction,
			},
		},
	}
}
