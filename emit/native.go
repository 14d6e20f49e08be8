package emit

import (
	"fmt"
	"strings"

	"github.com/rubiojr/jnibind/bridge"
	"github.com/rubiojr/jnibind/decl"
	"github.com/rubiojr/jnibind/tmpl"
)

var registrationTpl = tmpl.Must(tmpl.Parse("registration",
	`		{"$overloadName", "$sig", (void*)$overloadName},`))

// Native emits the JNI side: one trampoline per method and the
// RegisterNatives table.
type Native struct {
	templates *tmpl.Loader
}

// NewNative returns a Native emitter loading templates through l.
func NewNative(l *tmpl.Loader) *Native {
	return &Native{templates: l}
}

// Emit renders <ClassName>JNI.cpp for u.
func (n *Native) Emit(u *Unit) (*OutputFile, error) {
	fnTpl, err := n.templates.Load(u.trampolineTemplate())
	if err != nil {
		return nil, err
	}

	var funcs, entries []string
	for _, m := range u.Actions.Methods {
		fn, err := trampoline(fnTpl, m, u)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", m.Name, err)
		}
		funcs = append(funcs, fn)

		entry, err := registration(m, u.Actions.NeedsHandle)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", m.Name, err)
		}
		entries = append(entries, entry)
	}

	classTpl, err := n.templates.Load(TplNativeClass)
	if err != nil {
		return nil, err
	}
	out, err := classTpl.Execute(map[string]string{
		"className":    u.ClassName,
		"functions":    strings.Join(funcs, "\n"),
		"methods":      strings.Join(entries, "\n"),
		"jpath_define": u.PathDefine,
		"include_file": u.Include,
		"native_class": u.NativeClass,
	})
	if err != nil {
		return nil, err
	}
	return &OutputFile{Path: u.ClassName + "JNI.cpp", Content: []byte(out)}, nil
}

func trampoline(t *tmpl.Template, m *decl.Method, u *Unit) (string, error) {
	var params, header, args []string
	for _, p := range m.Params {
		params = append(params, p.JNIType+" "+p.Name)
		local, arg := marshal(p)
		if local != "" {
			header = append(header, local)
		}
		args = append(args, arg)
	}

	jret := m.Return.JNIType()
	rtemp, ret := "", ""
	if !m.IsVoid() {
		rtemp = jret + " ret ="
		ret = "return ret;"
	}

	sparams := ""
	if len(params) > 0 {
		sparams = ", " + strings.Join(params, ", ")
	}

	return t.Execute(map[string]string{
		"jret":         jret,
		"name":         m.Name,
		"overloadName": m.OverloadName,
		"params":       sparams,
		"header":       strings.Join(header, "\n\t"),
		"args":         strings.Join(args, ", "),
		"rtemp":        rtemp,
		"return":       ret,
		"className":    u.ClassName,
		"native_class": u.NativeClass,
	})
}

// marshal returns the scoped JNIHelpers local that converts p, if any,
// and the expression passed to the native call.
func marshal(p decl.Param) (local, arg string) {
	switch {
	case p.IsArray:
		return fmt.Sprintf("JNIHelpers::%s %s_arr(env, %s);", p.ArrayHelper, p.Name, p.Name), p.Name + "_arr.arr()"
	case p.Type == bridge.InString:
		return fmt.Sprintf("JNIHelpers::String c%s(env, %s);", p.Name, p.Name), "c" + p.Name + ".str()"
	case p.Type == bridge.OutString:
		return fmt.Sprintf("JNIHelpers::StringBuffer sb%s(env, %s);", p.Name, p.Name), "sb" + p.Name + ".str()"
	default:
		return "", p.Name
	}
}

// registration renders the JNINativeMethod entry of m. Its name and
// signature must match what the JVM derives from the Java native
// declaration, or RegisterNatives fails at load time.
func registration(m *decl.Method, needsHandle bool) (string, error) {
	return registrationTpl.Execute(map[string]string{
		"overloadName": m.OverloadName,
		"sig":          m.Signature(needsHandle),
	})
}
