package tmpl

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		mapping map[string]string
		want    string
	}{
		{"plain", "no placeholders\n", nil, "no placeholders\n"},
		{"simple", "hello $name!", map[string]string{"name": "world"}, "hello world!"},
		{"braced", "register${className}Natives", map[string]string{"className": "MobileApp"}, "registerMobileAppNatives"},
		{"adjacent", "${rtemp}${native_class}::inst()", map[string]string{"rtemp": "jint ret =", "native_class": "MobileApp"}, "jint ret =MobileApp::inst()"},
		{"greedy name", "$rtemp((X*)ptr)", map[string]string{"rtemp": ""}, "((X*)ptr)"},
		{"escape", "cost: $$5", nil, "cost: $5"},
		{"whitespace kept", "\t$a\r\n\t\n", map[string]string{"a": "x"}, "\tx\r\n\t\n"},
		{"repeated", "$a-$a", map[string]string{"a": "1"}, "1-1"},
		{"unused keys", "$a", map[string]string{"a": "1", "b": "2"}, "1"},
		{"empty value", "[$a]", map[string]string{"a": ""}, "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.text, tt.mapping)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRender_MissingKey(t *testing.T) {
	_, err := Render("a $b c", map[string]string{"a": "x"})
	var te *Error
	require.True(t, errors.As(err, &te), "got %v", err)
	assert.Equal(t, "b", te.Placeholder)
	assert.Equal(t, 2, te.Offset)
	assert.Equal(t, "template: no value for placeholder $b", te.Error())
}

func TestParse_Invalid(t *testing.T) {
	for _, text := range []string{"$", "a $1", "${name", "${}", "$ x", "${a-b}"} {
		_, err := Parse("t.txt", text)
		var te *Error
		assert.True(t, errors.As(err, &te), "Parse(%q) should fail, got %v", text, err)
	}
}

func TestPlaceholders(t *testing.T) {
	tp, err := Parse("t", "$b ${a} $b $$c")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, tp.placeholders())
}

func TestExecute_Deterministic(t *testing.T) {
	tp, err := Parse("t", "$x and $y\n")
	require.NoError(t, err)
	m := map[string]string{"x": "1", "y": "2"}
	first, err := tp.Execute(m)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := tp.Execute(m)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestLoader_Defaults(t *testing.T) {
	l := &Loader{}
	for _, name := range defaultNames() {
		tp, err := l.Load(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, tp.placeholders(), name)
	}
	assert.Contains(t, defaultNames(), "tpl-actionsJNI.cpp.txt")
	assert.Contains(t, defaultNames(), "tpl-javaMethod.java.txt")
}

func TestLoader_Override(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tpl-javaMethod.java.txt"), []byte("custom $name\n"), 0644))

	l := &Loader{Dir: dir}
	tp, err := l.Load("tpl-javaMethod.java.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"name"}, tp.placeholders())

	// Names missing from the override directory fall back to the defaults.
	tp, err = l.Load("tpl-actionsJNI.cpp.txt")
	require.NoError(t, err)
	assert.Contains(t, tp.placeholders(), "functions")
}

func TestLoader_Missing(t *testing.T) {
	l := &Loader{Dir: t.TempDir()}
	_, err := l.Load("tpl-Nope.java.txt")
	var te *Error
	require.True(t, errors.As(err, &te), "got %v", err)
	assert.Equal(t, "tpl-Nope.java.txt: template not found", err.Error())
}
