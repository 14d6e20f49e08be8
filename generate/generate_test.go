package generate

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rubiojr/jnibind/bridge"
	"github.com/rubiojr/jnibind/decl"
	"github.com/rubiojr/jnibind/tmpl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTree lays out an app tree the way the Android project does and
// returns a Config pointing at it.
func newTree(t *testing.T) *Config {
	t.Helper()
	root := t.TempDir()
	jni := filepath.Join(root, "app", "src", "main", "cpp", "JNI")
	javaSrc := filepath.Join(root, "app", "src", "main", "java")
	require.NoError(t, os.MkdirAll(jni, 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(javaSrc, "com", "techsoft3d", "hps", "virtual_training"), 0755))

	return &Config{
		Sets: DefaultSets(
			filepath.Join("testdata", "headers", "UserMobileSurface.h"),
			filepath.Join("testdata", "headers", "MobileApp.h"),
		),
		JNIDir:      jni,
		JavaSrc:     javaSrc,
		Package:     DefaultPackage,
		PathClasses: DefaultPathClasses,
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

func TestRun_Golden(t *testing.T) {
	cfg := newTree(t)
	var reported []string
	cfg.Report = func(path string) { reported = append(reported, path) }

	written, err := Run(cfg, bridge.NewRegistry())
	require.NoError(t, err)

	javaDir := cfg.JavaDir()
	want := []string{
		filepath.Join(cfg.JNIDir, "AndroidUserMobileSurfaceViewJNI.cpp"),
		filepath.Join(javaDir, "AndroidUserMobileSurfaceView.java"),
		filepath.Join(cfg.JNIDir, "MobileAppJNI.cpp"),
		filepath.Join(javaDir, "MobileApp.java"),
		filepath.Join(cfg.JNIDir, "jpaths.h"),
	}
	assert.Equal(t, want, written)
	assert.Equal(t, want, reported)

	for _, path := range written {
		golden := filepath.Join("testdata", "golden", filepath.Base(path))
		assert.Equal(t, readFile(t, golden), readFile(t, path), filepath.Base(path))
	}
}

func TestRun_Idempotent(t *testing.T) {
	cfg := newTree(t)

	first, err := Run(cfg, bridge.NewRegistry())
	require.NoError(t, err)
	before := make(map[string]string, len(first))
	for _, path := range first {
		before[path] = readFile(t, path)
	}

	second, err := Run(cfg, bridge.NewRegistry())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	for _, path := range second {
		assert.Equal(t, before[path], readFile(t, path), path)
	}
}

func TestRun_Package(t *testing.T) {
	cfg := newTree(t)
	cfg.Package = "org.example.demo"
	require.NoError(t, os.MkdirAll(filepath.Join(cfg.JavaSrc, "org", "example", "demo"), 0755))

	_, err := Run(cfg, bridge.NewRegistry())
	require.NoError(t, err)

	java := readFile(t, filepath.Join(cfg.JavaSrc, "org", "example", "demo", "MobileApp.java"))
	assert.Contains(t, java, "package org.example.demo;\n")
	paths := readFile(t, filepath.Join(cfg.JNIDir, "jpaths.h"))
	assert.Contains(t, paths, `#define JPATH_MOBILE_APP "org/example/demo/MobileApp"`)
}

func TestRun_ParseErrorKeepsEarlierFiles(t *testing.T) {
	cfg := newTree(t)
	bad := filepath.Join(t.TempDir(), "MobileApp.h")
	require.NoError(t, os.WriteFile(bad, []byte("APP_ACTION void broken(int a\n"), 0644))
	cfg.Sets[1].Header = bad

	written, err := Run(cfg, bridge.NewRegistry())
	require.Error(t, err)

	var perr *decl.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 1, perr.Pos.Line)
	assert.Equal(t, bad, perr.Pos.Filename)

	// The surface set was written before the app set failed.
	assert.Len(t, written, 2)
	assert.FileExists(t, filepath.Join(cfg.JNIDir, "AndroidUserMobileSurfaceViewJNI.cpp"))
	assert.NoFileExists(t, filepath.Join(cfg.JNIDir, "MobileAppJNI.cpp"))
	assert.NoFileExists(t, filepath.Join(cfg.JNIDir, "jpaths.h"))
}

func TestRun_UnknownType(t *testing.T) {
	cfg := newTree(t)
	bad := filepath.Join(t.TempDir(), "MobileApp.h")
	require.NoError(t, os.WriteFile(bad, []byte("APP_ACTION void f(short s);\n"), 0644))
	cfg.Sets[1].Header = bad

	_, err := Run(cfg, bridge.NewRegistry())
	var uerr *bridge.UnknownTypeError
	require.True(t, errors.As(err, &uerr))
	assert.Equal(t, "short", uerr.Name)
}

func TestRun_TemplateOverride(t *testing.T) {
	cfg := newTree(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tpl-MobileApp.java.txt"),
		[]byte("package $package;\nclass $className {\n$native_methods\n}\n"), 0644))
	cfg.Templates = &tmpl.Loader{Dir: dir}

	_, err := Run(cfg, bridge.NewRegistry())
	require.NoError(t, err)

	java := readFile(t, filepath.Join(cfg.JavaDir(), "MobileApp.java"))
	assert.Equal(t, "package com.techsoft3d.hps.virtual_training;\nclass MobileApp {\n"+
		"\tprivate static native void shutdownV();\n"+
		"\tprivate static native void setLibraryDirectoryS(String libraryDir);\n"+
		"\tprivate static native void setFontDirectoryS(String fontDir);\n"+
		"\tprivate static native void setMaterialsDirectoryS(String materialsDir);\n}\n", java)

	// Templates not overridden fall back to the embedded set.
	assert.Equal(t,
		readFile(t, filepath.Join("testdata", "golden", "MobileAppJNI.cpp")),
		readFile(t, filepath.Join(cfg.JNIDir, "MobileAppJNI.cpp")))
}

func TestGenerator_Render(t *testing.T) {
	g := NewGenerator(bridge.NewRegistry(), nil)
	set := Set{
		Header:      filepath.Join("testdata", "headers", "MobileApp.h"),
		Sentinel:    AppSentinel,
		ClassName:   "MobileApp",
		NativeClass: "MobileApp",
	}

	native, managed, err := g.Render(set, DefaultPackage)
	require.NoError(t, err)
	assert.Equal(t, "MobileAppJNI.cpp", native.Path)
	assert.Equal(t, "MobileApp.java", managed.Path)
	assert.Equal(t, readFile(t, filepath.Join("testdata", "golden", "MobileAppJNI.cpp")), string(native.Content))
}

func TestGenerator_RenderHandleField(t *testing.T) {
	g := NewGenerator(bridge.NewRegistry(), nil)
	set := DefaultSets(filepath.Join("testdata", "headers", "UserMobileSurface.h"), "")[0]
	set.HandleField = "mNative"

	_, managed, err := g.Render(set, DefaultPackage)
	require.NoError(t, err)
	java := string(managed.Content)
	assert.Contains(t, java, "setOperatorOrbitV(mNative);")
	assert.NotContains(t, java, "mSurfacePointer")
}
