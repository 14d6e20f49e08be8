package emit

import (
	"fmt"
	"strings"

	"github.com/rubiojr/jnibind/decl"
	"github.com/rubiojr/jnibind/tmpl"
)

var (
	nativeDeclTpl = tmpl.Must(tmpl.Parse("native-decl",
		"\tprivate static native $ret $overloadName($params);"))
	nativeHandleDeclTpl = tmpl.Must(tmpl.Parse("native-decl-handle",
		"\tprivate static native $ret $overloadName(long ptr$params);"))
)

// Managed emits the Java side: the private native declarations and the
// public wrappers that forward to them.
type Managed struct {
	templates *tmpl.Loader
}

// NewManaged returns a Managed emitter loading templates through l.
func NewManaged(l *tmpl.Loader) *Managed {
	return &Managed{templates: l}
}

// Emit renders <ClassName>.java for u.
func (g *Managed) Emit(u *Unit) (*OutputFile, error) {
	methodTpl, err := g.templates.Load(TplJavaMethod)
	if err != nil {
		return nil, err
	}

	var decls, methods []string
	for _, m := range u.Actions.Methods {
		d, err := nativeDecl(m, u.Actions.NeedsHandle)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", m.Name, err)
		}
		decls = append(decls, d)

		w, err := wrapper(methodTpl, m, u)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", m.Name, err)
		}
		methods = append(methods, w)
	}

	classTpl, err := g.templates.Load(u.ClassTemplate())
	if err != nil {
		return nil, err
	}
	out, err := classTpl.Execute(map[string]string{
		"className":      u.ClassName,
		"package":        u.Package,
		"native_methods": strings.Join(decls, "\n"),
		"methods":        strings.Join(methods, "\n"),
	})
	if err != nil {
		return nil, err
	}
	return &OutputFile{Path: u.ClassName + ".java", Content: []byte(out)}, nil
}

// nativeDecl renders the body-less Java native declaration of m.
func nativeDecl(m *decl.Method, needsHandle bool) (string, error) {
	params := javaParams(m)
	t := nativeDeclTpl
	if needsHandle {
		t = nativeHandleDeclTpl
		if params != "" {
			params = ", " + params
		}
	}
	return t.Execute(map[string]string{
		"ret":          m.Return.JavaType(),
		"overloadName": m.OverloadName,
		"params":       params,
	})
}

func wrapper(t *tmpl.Template, m *decl.Method, u *Unit) (string, error) {
	static, args := "static", argNames(m)
	if u.Actions.NeedsHandle {
		static = ""
		if args == "" {
			args = u.handleField()
		} else {
			args = u.handleField() + ", " + args
		}
	}

	ret := ""
	if !m.IsVoid() {
		ret = "return "
	}

	return t.Execute(map[string]string{
		"static":       static,
		"jret":         m.Return.JavaType(),
		"name":         m.Name,
		"params":       javaParams(m),
		"overloadName": m.OverloadName,
		"return":       ret,
		"args":         args,
	})
}
