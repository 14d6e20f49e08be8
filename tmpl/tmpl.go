// Package tmpl renders the text templates the emitters are built from.
//
// Templates are plain text with $name and ${name} placeholders; "$$"
// stands for a literal '$'. Every byte outside a placeholder is copied
// unchanged, so whitespace and line endings of a template survive
// rendering exactly.
package tmpl

import (
	"fmt"
	"strings"
)

// Error reports a template that cannot be parsed, loaded or rendered.
type Error struct {
	// Template is the template name, empty for anonymous templates.
	Template string
	// Placeholder is the offending placeholder name, if any.
	Placeholder string
	// Offset is the byte offset of the problem in the template text, or
	// -1 when the problem is not tied to a position.
	Offset int
	Msg    string
}

func (e *Error) Error() string {
	name := e.Template
	if name == "" {
		name = "template"
	}
	if e.Placeholder != "" {
		return fmt.Sprintf("%s: %s $%s", name, e.Msg, e.Placeholder)
	}
	if e.Offset < 0 {
		return fmt.Sprintf("%s: %s", name, e.Msg)
	}
	return fmt.Sprintf("%s:%d: %s", name, e.Offset, e.Msg)
}

// part is either literal text or, when key is set, a placeholder.
type part struct {
	text   string
	key    string
	offset int
}

// Template is a parsed template.
type Template struct {
	name  string
	parts []part
}

// Parse parses text into a Template. name is used in errors.
func Parse(name, text string) (*Template, error) {
	t := &Template{name: name}
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			t.parts = append(t.parts, part{text: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(text); {
		ch := text[i]
		if ch != '$' {
			lit.WriteByte(ch)
			i++
			continue
		}
		if i+1 < len(text) && text[i+1] == '$' {
			lit.WriteByte('$')
			i += 2
			continue
		}
		key, n := placeholderAt(text, i)
		if n == 0 {
			return nil, &Error{Template: name, Offset: i, Msg: "invalid placeholder"}
		}
		flush()
		t.parts = append(t.parts, part{key: key, offset: i})
		i += n
	}
	flush()
	return t, nil
}

// placeholderAt returns the name and length of the placeholder starting
// at text[i] == '$', or a zero length when there is none.
func placeholderAt(text string, i int) (string, int) {
	j := i + 1
	braced := j < len(text) && text[j] == '{'
	if braced {
		j++
	}
	start := j
	if j >= len(text) || !isNameStart(text[j]) {
		return "", 0
	}
	for j < len(text) && isNamePart(text[j]) {
		j++
	}
	key := text[start:j]
	if braced {
		if j >= len(text) || text[j] != '}' {
			return "", 0
		}
		j++
	}
	return key, j - i
}

func isNameStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isNamePart(ch byte) bool {
	return isNameStart(ch) || (ch >= '0' && ch <= '9')
}

// placeholders returns the distinct placeholder names in order of first use.
func (t *Template) placeholders() []string {
	seen := map[string]bool{}
	var keys []string
	for _, p := range t.parts {
		if p.key != "" && !seen[p.key] {
			seen[p.key] = true
			keys = append(keys, p.key)
		}
	}
	return keys
}

// Execute substitutes mapping into the template. A placeholder without an
// entry in mapping is an error; entries no placeholder uses are ignored.
func (t *Template) Execute(mapping map[string]string) (string, error) {
	var sb strings.Builder
	for _, p := range t.parts {
		if p.key == "" {
			sb.WriteString(p.text)
			continue
		}
		v, ok := mapping[p.key]
		if !ok {
			return "", &Error{Template: t.name, Placeholder: p.key, Offset: p.offset, Msg: "no value for placeholder"}
		}
		sb.WriteString(v)
	}
	return sb.String(), nil
}

// Render parses text and executes it with mapping in one step.
func Render(text string, mapping map[string]string) (string, error) {
	t, err := Parse("", text)
	if err != nil {
		return "", err
	}
	return t.Execute(mapping)
}

// Must returns t, panicking if err is non-nil. It is intended for
// templates built into the binary and parsed at package initialization.
func Must(t *Template, err error) *Template {
	if err != nil {
		panic(err)
	}
	return t
}
