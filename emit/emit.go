// Package emit renders a declaration set into the JNI trampoline source
// and the Java class that binds to it.
//
// Both sides are produced from the same decl.Actions, so the overload
// names and signatures in the native registration table always agree
// with the Java native method declarations.
package emit

import (
	"strings"

	"github.com/rubiojr/jnibind/decl"
)

// Template names looked up through a tmpl.Loader.
const (
	TplNativeClass      = "tpl-actionsJNI.cpp.txt"
	TplTrampoline       = "tpl-jnifunction.cpp.txt"
	TplStaticTrampoline = "tpl-jnifunction-static.cpp.txt"
	TplJavaMethod       = "tpl-javaMethod.java.txt"
)

// DefaultHandleField is the Java field holding the native instance pointer.
const DefaultHandleField = "mSurfacePointer"

// Unit is a declaration set together with the names it is emitted under.
type Unit struct {
	Actions *decl.Actions
	// ClassName is the Java class; it also names both output files.
	ClassName string
	// NativeClass is the C++ class whose methods the trampolines call.
	NativeClass string
	// Include is the header the JNI source includes for NativeClass.
	Include string
	// Package is the dotted Java package.
	Package string
	// PathDefine is the jpaths.h macro holding the class path.
	PathDefine string
	// HandleField is the Java field passed as the instance handle.
	// Empty means DefaultHandleField.
	HandleField string
}

func (u *Unit) handleField() string {
	if u.HandleField == "" {
		return DefaultHandleField
	}
	return u.HandleField
}

func (u *Unit) trampolineTemplate() string {
	if u.Actions.NeedsHandle {
		return TplTrampoline
	}
	return TplStaticTrampoline
}

// ClassTemplate returns the name of the Java class template of u.
func (u *Unit) ClassTemplate() string {
	return "tpl-" + u.ClassName + ".java.txt"
}

// OutputFile is one generated file. Path is relative to the output
// directory of its side.
type OutputFile struct {
	Path    string
	Content []byte
}

// javaParams renders "int a, float[] b".
func javaParams(m *decl.Method) string {
	parts := make([]string, len(m.Params))
	for i, p := range m.Params {
		parts[i] = p.JavaType + " " + p.Name
	}
	return strings.Join(parts, ", ")
}

// argNames renders "a, b".
func argNames(m *decl.Method) string {
	parts := make([]string, len(m.Params))
	for i, p := range m.Params {
		parts[i] = p.Name
	}
	return strings.Join(parts, ", ")
}
