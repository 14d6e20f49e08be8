// Package bridge holds the native type registry for JNI binding generation.
//
// Every native type a declaration may use is a NativeType constant. The
// JNI wire code, JNI handle type, Java type and overload symbol of each
// type are fixed by exhaustive switches, so adding a type means adding a
// constant and a case to each switch; there is no runtime registration.
package bridge

import (
	"fmt"
	"strings"
)

// NativeType represents a C++ type that can cross the JNI bridge.
type NativeType int

const (
	Void      NativeType = iota
	Bool                 // bool
	Int                  // int
	LongLong             // long long
	Float                // float
	Double               // double
	InString             // const char *
	OutString            // char *, a caller-owned StringBuffer
	Char                 // char
)

// noArray is the array helper of types that have no array form.
const noArray = "NA"

// String returns the canonical C++ spelling of the type.
func (t NativeType) String() string {
	switch t {
	case Void:
		return "void"
	case Bool:
		return "bool"
	case Int:
		return "int"
	case LongLong:
		return "long long"
	case Float:
		return "float"
	case Double:
		return "double"
	case InString:
		return "const char *"
	case OutString:
		return "char *"
	case Char:
		return "char"
	default:
		return fmt.Sprintf("NativeType(%d)", int(t))
	}
}

// Code returns the JNI signature code of the type.
func (t NativeType) Code() string {
	switch t {
	case Void:
		return "V"
	case Bool:
		return "Z"
	case Int:
		return "I"
	case LongLong:
		return "J"
	case Float:
		return "F"
	case Double:
		return "D"
	case InString:
		return "Ljava/lang/String;"
	case OutString:
		return "Ljava/lang/StringBuffer;"
	case Char:
		return "B"
	default:
		return ""
	}
}

// JNIType returns the jni.h type used for the value in a trampoline.
func (t NativeType) JNIType() string {
	switch t {
	case Void:
		return "void"
	case Bool:
		return "jboolean"
	case Int:
		return "jint"
	case LongLong:
		return "jlong"
	case Float:
		return "jfloat"
	case Double:
		return "jdouble"
	case InString:
		return "jstring"
	case OutString:
		return "jobject"
	case Char:
		return "jbyte"
	default:
		return ""
	}
}

// JavaType returns the Java type the value surfaces as.
func (t NativeType) JavaType() string {
	switch t {
	case Void:
		return "void"
	case Bool:
		return "boolean"
	case Int:
		return "int"
	case LongLong:
		return "long"
	case Float:
		return "float"
	case Double:
		return "double"
	case InString:
		return "String"
	case OutString:
		return "StringBuffer"
	case Char:
		return "byte"
	default:
		return ""
	}
}

// Symbol returns the short code the type contributes to an overload name.
func (t NativeType) Symbol() string {
	switch t {
	case Void:
		return "V"
	case Bool:
		return "Z"
	case Int:
		return "I"
	case LongLong:
		return "J"
	case Float:
		return "F"
	case Double:
		return "D"
	case InString:
		return "S"
	case OutString:
		return "SB"
	case Char:
		return "B"
	default:
		return ""
	}
}

// ArrayHelper returns the JNIHelpers class that pins an array of the type,
// or "NA" when the type cannot appear in array form.
func (t NativeType) ArrayHelper() string {
	switch t {
	case Bool:
		return "BoolArray"
	case Int:
		return "IntArray"
	case LongLong:
		return "LongArray"
	case Float:
		return "FloatArray"
	case Double:
		return "DoubleArray"
	case Char:
		return "ByteArray"
	default:
		return noArray
	}
}

// Arrayable reports whether the type may be declared as name[].
func (t NativeType) Arrayable() bool { return t.ArrayHelper() != noArray }

// Returnable reports whether a method may return the type. Strings only
// travel inward (const char *) or through a caller buffer (char *).
func (t NativeType) Returnable() bool {
	switch t {
	case Void, Bool, Int, LongLong, Float, Double, Char:
		return true
	default:
		return false
	}
}

// Descriptor is the flattened registry entry of a NativeType.
type Descriptor struct {
	Type        NativeType
	Native      string
	Code        string
	JNIType     string
	JavaType    string
	Symbol      string
	ArrayHelper string
}

// Descriptor returns the registry entry for t.
func (t NativeType) Descriptor() Descriptor {
	return Descriptor{
		Type:        t,
		Native:      t.String(),
		Code:        t.Code(),
		JNIType:     t.JNIType(),
		JavaType:    t.JavaType(),
		Symbol:      t.Symbol(),
		ArrayHelper: t.ArrayHelper(),
	}
}

// allTypes lists every NativeType in declaration order.
var allTypes = []NativeType{Void, Bool, Int, LongLong, Float, Double, InString, OutString, Char}

// UnknownTypeError reports a native type name that is not in the registry.
type UnknownTypeError struct {
	Name string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown native type %q", e.Name)
}

// Registry resolves native type names. It is built once by NewRegistry and
// is read-only afterwards, so one instance can be shared by every parser
// and emitter of a run.
type Registry struct {
	byName map[string]NativeType
}

// NewRegistry builds the registry of all supported native types.
func NewRegistry() *Registry {
	r := &Registry{byName: make(map[string]NativeType, len(allTypes))}
	for _, t := range allTypes {
		r.byName[t.String()] = t
	}
	return r
}

// Resolve returns the NativeType spelled name. Runs of whitespace in name
// are treated as a single space, so "long   long" resolves to LongLong.
func (r *Registry) Resolve(name string) (NativeType, error) {
	t, ok := r.byName[Normalize(name)]
	if !ok {
		return 0, &UnknownTypeError{Name: name}
	}
	return t, nil
}

// Lookup returns the registry entry for name.
func (r *Registry) Lookup(name string) (Descriptor, error) {
	t, err := r.Resolve(name)
	if err != nil {
		return Descriptor{}, err
	}
	return t.Descriptor(), nil
}

// Types returns all supported native types in declaration order.
func (r *Registry) Types() []NativeType {
	out := make([]NativeType, len(allTypes))
	copy(out, allTypes)
	return out
}

// Normalize collapses whitespace in a type spelling and separates '*'
// with a single leading space ("char*" → "char *").
func Normalize(name string) string {
	name = strings.ReplaceAll(name, "*", " * ")
	return strings.Join(strings.Fields(name), " ")
}
