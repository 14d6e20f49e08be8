// Package doc collects the comments attached to marked declarations in
// C++ headers and formats them as a binding reference.
//
// It works on the raw header, since the declaration parser skips
// comments. The rule is simple: consecutive // lines immediately before a
// marked declaration (no blank line gap) are attached to that method,
// together with a trailing // comment on the declaration line itself.
package doc

import (
	"os"
	"strings"

	"github.com/rubiojr/jnibind/decl"
)

// SetDoc holds the documentation of one declaration set.
type SetDoc struct {
	Path     string
	Sentinel string
	// NeedsHandle is copied from the declaration set.
	NeedsHandle bool
	Doc         string // file-level doc (first // block before any code)
	Methods     []MethodDoc
}

// MethodDoc pairs a parsed method with its comment.
type MethodDoc struct {
	Method *decl.Method
	Doc    string
}

// ExtractFile reads the header actions were parsed from and collects the
// documentation of every method in it.
func ExtractFile(actions *decl.Actions) (*SetDoc, error) {
	data, err := os.ReadFile(actions.Source)
	if err != nil {
		return nil, &decl.MissingFileError{Path: actions.Source, Err: err}
	}
	return Extract(string(data), actions), nil
}

// Extract scans src, the header actions were parsed from. Methods are
// matched to their comments by line number.
func Extract(src string, actions *decl.Actions) *SetDoc {
	sd := &SetDoc{
		Path:        actions.Source,
		Sentinel:    actions.Sentinel,
		NeedsHandle: actions.NeedsHandle,
	}
	docs := make(map[int]string)

	var commentBlock []string
	seenCode := false

	for i, line := range strings.Split(src, "\n") {
		lineNum := i + 1
		trimmed := strings.TrimSpace(strings.TrimSuffix(line, "\r"))

		if strings.HasPrefix(trimmed, "//") {
			commentBlock = append(commentBlock, strings.TrimPrefix(trimmed[2:], " "))
			continue
		}

		if trimmed == "" {
			if len(commentBlock) > 0 && !seenCode {
				sd.Doc = strings.Join(commentBlock, "\n")
				seenCode = true
			}
			commentBlock = nil
			continue
		}

		// Preprocessor lines break attachment but are not code.
		if strings.HasPrefix(trimmed, "#") {
			commentBlock = nil
			continue
		}

		if !seenCode && len(commentBlock) > 0 {
			sd.Doc = strings.Join(commentBlock, "\n")
		}
		seenCode = true

		if strings.HasPrefix(trimmed, actions.Sentinel) {
			lines := commentBlock
			if c := trailingComment(trimmed); c != "" {
				lines = append(lines, c)
			}
			docs[lineNum] = strings.Join(lines, "\n")
		}
		commentBlock = nil
	}

	for _, m := range actions.Methods {
		sd.Methods = append(sd.Methods, MethodDoc{Method: m, Doc: docs[m.Pos.Line]})
	}
	return sd
}

// trailingComment returns the // comment following the ';' of a
// declaration line.
func trailingComment(line string) string {
	semi := strings.Index(line, ";")
	if semi < 0 {
		return ""
	}
	rest := line[semi+1:]
	i := strings.Index(rest, "//")
	if i < 0 {
		return ""
	}
	return strings.TrimSpace(rest[i+2:])
}

// Lookup returns the methods whose C++ name or overload name is name, in
// declaration order.
func Lookup(sd *SetDoc, name string) []MethodDoc {
	var found []MethodDoc
	for _, md := range sd.Methods {
		if md.Method.Name == name || md.Method.OverloadName == name {
			found = append(found, md)
		}
	}
	return found
}
