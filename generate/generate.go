// Package generate runs the binding pipelines: it extracts each declaration
// set, renders the JNI and Java files for it, and writes the shared class
// path header.
package generate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rubiojr/jnibind/bridge"
	"github.com/rubiojr/jnibind/decl"
	"github.com/rubiojr/jnibind/emit"
	"github.com/rubiojr/jnibind/tmpl"
)

// Sentinels marking the two stock declaration sets.
const (
	SurfaceSentinel = "SURFACE_ACTION"
	AppSentinel     = "APP_ACTION"
)

// DefaultPackage is the Java package used when none is configured.
const DefaultPackage = "com.techsoft3d.hps.virtual_training"

// DefaultPathClasses are the classes jpaths.h provides paths for. The
// surface view base class is hand-written but registered natively too.
var DefaultPathClasses = []string{
	"AndroidMobileSurfaceView",
	"AndroidUserMobileSurfaceView",
	"MobileApp",
}

// Set describes one declaration set and the names it is emitted under.
type Set struct {
	// Header is the C++ header holding the marked declarations.
	Header string
	// Sentinel marks the lines to extract.
	Sentinel string
	// ClassName is the Java class generated for the set.
	ClassName string
	// NativeClass is the C++ class the trampolines call into.
	NativeClass string
	// Include is the header the JNI source includes. Empty means the base
	// name of Header.
	Include string
	// NeedsHandle routes every call through an opaque instance pointer.
	NeedsHandle bool
	// HandleField is the Java field holding that pointer. Empty means
	// emit.DefaultHandleField.
	HandleField string
}

func (s Set) include() string {
	if s.Include != "" {
		return s.Include
	}
	return filepath.Base(s.Header)
}

// DefaultSets returns the surface set (instance methods of
// UserMobileSurface) followed by the app set (static MobileApp calls).
func DefaultSets(surfaceHeader, appHeader string) []Set {
	return []Set{
		{
			Header:      surfaceHeader,
			Sentinel:    SurfaceSentinel,
			ClassName:   "AndroidUserMobileSurfaceView",
			NativeClass: "UserMobileSurface",
			Include:     "UserMobileSurface.h",
			NeedsHandle: true,
		},
		{
			Header:      appHeader,
			Sentinel:    AppSentinel,
			ClassName:   "MobileApp",
			NativeClass: "MobileApp",
			Include:     "MobileApp.h",
			NeedsHandle: false,
		},
	}
}

// Config is one generator run.
type Config struct {
	Sets []Set
	// JNIDir receives the JNI sources and jpaths.h.
	JNIDir string
	// JavaSrc is the Java source root; files go to the package directory
	// below it, which must already exist.
	JavaSrc string
	Package string
	// PathClasses lists the classes written to jpaths.h.
	PathClasses []string
	// Templates loads the templates; nil uses the embedded defaults.
	Templates *tmpl.Loader
	// Report, when set, is called with the path of each written file.
	Report func(path string)
}

// JavaDir returns the directory the Java files are written to.
func (c *Config) JavaDir() string {
	return filepath.Join(c.JavaSrc, filepath.FromSlash(emit.SlashPath(c.Package)))
}

// Generator renders declaration sets. It holds no per-run state and can
// render any number of sets.
type Generator struct {
	parser  *decl.Parser
	native  *emit.Native
	managed *emit.Managed
}

// NewGenerator returns a Generator resolving types through reg and
// loading templates through l.
func NewGenerator(reg *bridge.Registry, l *tmpl.Loader) *Generator {
	if l == nil {
		l = &tmpl.Loader{}
	}
	return &Generator{
		parser:  decl.NewParser(reg),
		native:  emit.NewNative(l),
		managed: emit.NewManaged(l),
	}
}

// Render extracts set and renders its JNI and Java files.
func (g *Generator) Render(set Set, pkg string) (native, managed *emit.OutputFile, err error) {
	actions, err := g.parser.ExtractFile(set.Header, set.Sentinel, set.NeedsHandle)
	if err != nil {
		return nil, nil, err
	}
	unit := &emit.Unit{
		Actions:     actions,
		ClassName:   set.ClassName,
		NativeClass: set.NativeClass,
		Include:     set.include(),
		Package:     pkg,
		PathDefine:  emit.PathDefine(set.ClassName),
		HandleField: set.HandleField,
	}

	native, err = g.native.Emit(unit)
	if err != nil {
		return nil, nil, fmt.Errorf("rendering %s JNI source: %w", set.ClassName, err)
	}
	managed, err = g.managed.Emit(unit)
	if err != nil {
		return nil, nil, fmt.Errorf("rendering %s Java source: %w", set.ClassName, err)
	}
	return native, managed, nil
}

// Run validates cfg, then renders and writes every set in order followed
// by jpaths.h. Files are written as soon as they are rendered; when a
// later step fails, files already written stay in place. The returned
// slice lists the written paths.
func Run(cfg *Config, reg *bridge.Registry) ([]string, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := NewGenerator(reg, cfg.Templates)
	javaDir := cfg.JavaDir()

	var written []string
	write := func(dir string, f *emit.OutputFile) error {
		path := filepath.Join(dir, f.Path)
		if err := os.WriteFile(path, f.Content, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		written = append(written, path)
		if cfg.Report != nil {
			cfg.Report(path)
		}
		return nil
	}

	for _, set := range cfg.Sets {
		native, managed, err := g.Render(set, cfg.Package)
		if err != nil {
			return written, err
		}
		if err := write(cfg.JNIDir, native); err != nil {
			return written, err
		}
		if err := write(javaDir, managed); err != nil {
			return written, err
		}
	}

	if err := write(cfg.JNIDir, emit.Paths(cfg.Package, cfg.PathClasses)); err != nil {
		return written, err
	}
	return written, nil
}
