// Package decl builds the binding model from annotated C++ declarations.
//
// A declaration line looks like
//
//	SURFACE_ACTION bool loadFile(const char *fileName);
//
// and becomes a Method with an ordered list of Params. Every derived JNI
// attribute (wire code, JNI type, Java type, overload symbol) is computed
// once when the model is built, so emitters only read it.
package decl

import (
	"strings"

	"github.com/rubiojr/jnibind/bridge"
	"modernc.org/token"
)

// Param is one parameter of a bridged method.
type Param struct {
	Name    string
	Type    bridge.NativeType
	IsConst bool
	IsArray bool

	// Code is the JNI signature code ("[I" for int[]).
	Code string
	// JNIType is the jni.h type of the trampoline argument ("jintArray").
	JNIType string
	// JavaType is the Java type of the argument ("int[]").
	JavaType string
	// Symbol is the overload symbol ("IA" for int[]).
	Symbol string
	// ArrayHelper is the JNIHelpers class pinning the array, empty for scalars.
	ArrayHelper string
}

// NewParam builds a Param and derives its JNI attributes.
func NewParam(name string, t bridge.NativeType, isConst, isArray bool) Param {
	p := Param{
		Name:     name,
		Type:     t,
		IsConst:  isConst,
		IsArray:  isArray,
		Code:     t.Code(),
		JNIType:  t.JNIType(),
		JavaType: t.JavaType(),
		Symbol:   t.Symbol(),
	}
	if isArray {
		p.Code = "[" + p.Code
		p.JNIType += "Array"
		p.JavaType += "[]"
		p.Symbol += "A"
		p.ArrayHelper = t.ArrayHelper()
	}
	return p
}

// Method is one bridged method.
type Method struct {
	Name   string
	Return bridge.NativeType
	Params []Param
	// OverloadName is the flat, overload-safe name used for the JNI
	// trampoline, its registration entry and the Java native method.
	OverloadName string
	// Pos is the position of the declaration in its source.
	Pos token.Position
}

// NewMethod builds a Method and derives its overload name.
func NewMethod(name string, ret bridge.NativeType, params []Param) *Method {
	return &Method{
		Name:         name,
		Return:       ret,
		Params:       params,
		OverloadName: OverloadName(name, params),
	}
}

// OverloadName appends each parameter's overload symbol to name, in
// parameter order. A method without parameters gets a trailing "V".
func OverloadName(name string, params []Param) string {
	if len(params) == 0 {
		return name + bridge.Void.Symbol()
	}
	var sb strings.Builder
	sb.WriteString(name)
	for _, p := range params {
		sb.WriteString(p.Symbol)
	}
	return sb.String()
}

// Signature returns the JNI method signature, e.g. "(JF)V". The opaque
// instance handle is passed as a leading jlong when needsHandle is set.
func (m *Method) Signature(needsHandle bool) string {
	var sb strings.Builder
	sb.WriteByte('(')
	if needsHandle {
		sb.WriteString(bridge.LongLong.Code())
	}
	for _, p := range m.Params {
		sb.WriteString(p.Code)
	}
	sb.WriteByte(')')
	sb.WriteString(m.Return.Code())
	return sb.String()
}

// IsVoid reports whether the method returns nothing.
func (m *Method) IsVoid() bool { return m.Return == bridge.Void }

// TypeKey returns the parameter type sequence as C++ would spell it.
func (m *Method) TypeKey() string {
	parts := make([]string, len(m.Params))
	for i, p := range m.Params {
		parts[i] = p.Type.String()
		if p.IsArray {
			parts[i] += "[]"
		}
	}
	return strings.Join(parts, ", ")
}

// Decl renders the method back as a C++ prototype, for messages.
func (m *Method) Decl() string {
	return m.Return.String() + " " + m.Name + "(" + m.TypeKey() + ")"
}

// Actions is the ordered declaration set extracted from one source under
// one sentinel token.
type Actions struct {
	// Source names where the declarations came from.
	Source string
	// Sentinel is the marker token that selected the declarations.
	Sentinel string
	// NeedsHandle is set when every call goes through an instance handle.
	NeedsHandle bool
	Methods     []*Method
}

// NewActions builds a declaration set, rejecting overload name collisions.
func NewActions(source, sentinel string, needsHandle bool, methods []*Method) (*Actions, error) {
	if err := CheckCollisions(methods); err != nil {
		return nil, err
	}
	return &Actions{
		Source:      source,
		Sentinel:    sentinel,
		NeedsHandle: needsHandle,
		Methods:     methods,
	}, nil
}

// CheckCollisions returns a *CollisionError for the first method whose
// overload name was already taken by an earlier one.
func CheckCollisions(methods []*Method) error {
	seen := make(map[string]*Method, len(methods))
	for _, m := range methods {
		if first, ok := seen[m.OverloadName]; ok {
			return &CollisionError{OverloadName: m.OverloadName, First: first, Second: m}
		}
		seen[m.OverloadName] = m
	}
	return nil
}
