package tmpl

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// defaults holds the stock templates, used whenever the override
// directory does not provide a template of the same name.
//
//go:embed templates/*.txt
var defaults embed.FS

// Loader loads named templates. Files in Dir take precedence over the
// embedded defaults.
type Loader struct {
	Dir string
}

// Load reads and parses the template called name.
func (l *Loader) Load(name string) (*Template, error) {
	text, err := l.read(name)
	if err != nil {
		return nil, err
	}
	return Parse(name, text)
}

func (l *Loader) read(name string) (string, error) {
	if l != nil && l.Dir != "" {
		data, err := os.ReadFile(filepath.Join(l.Dir, name))
		if err == nil {
			return string(data), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", &Error{Template: name, Offset: -1, Msg: err.Error()}
		}
	}
	data, err := defaults.ReadFile("templates/" + name)
	if err != nil {
		return "", &Error{Template: name, Offset: -1, Msg: "template not found"}
	}
	return string(data), nil
}

// defaultNames returns the names of the embedded templates, sorted.
func defaultNames() []string {
	entries, err := defaults.ReadDir("templates")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}
