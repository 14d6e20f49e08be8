package generate

import (
	"errors"
	"fmt"
	"os"

	"github.com/rubiojr/jnibind/decl"
)

// InvalidDirectoryError reports an output directory that does not exist
// or is not a directory.
type InvalidDirectoryError struct {
	// Role says which directory it is ("jni", "java src").
	Role string
	Path string
}

func (e *InvalidDirectoryError) Error() string {
	return fmt.Sprintf("invalid %s folder: %s", e.Role, e.Path)
}

// Validate checks every input header and output directory of c before
// anything is written. Input headers fail with *decl.MissingFileError,
// directories with *InvalidDirectoryError.
func (c *Config) Validate() error {
	if len(c.Sets) == 0 {
		return errors.New("no declaration sets configured")
	}
	for _, set := range c.Sets {
		if err := checkFile(set.Header); err != nil {
			return err
		}
	}
	if c.Package == "" {
		return errors.New("package name is empty")
	}

	dirs := []struct{ role, path string }{
		{"jni", c.JNIDir},
		{"java src", c.JavaSrc},
		{"java package", c.JavaDir()},
	}
	for _, d := range dirs {
		if !isDir(d.path) {
			return &InvalidDirectoryError{Role: d.role, Path: d.path}
		}
	}
	return nil
}

func checkFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return &decl.MissingFileError{Path: path, Err: err}
	}
	if info.IsDir() {
		return &decl.MissingFileError{Path: path, Err: errors.New("is a directory")}
	}
	return nil
}

func isDir(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
