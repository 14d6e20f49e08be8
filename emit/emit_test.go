package emit

import (
	"testing"

	"github.com/rubiojr/jnibind/bridge"
	"github.com/rubiojr/jnibind/decl"
	"github.com/rubiojr/jnibind/tmpl"
	"github.com/stretchr/testify/require"
)

func parseMethods(t *testing.T, sentinel string, lines ...string) []*decl.Method {
	t.Helper()
	p := decl.NewParser(bridge.NewRegistry())
	var methods []*decl.Method
	for _, line := range lines {
		m, err := p.ParseMethod(sentinel, line)
		require.NoError(t, err, line)
		methods = append(methods, m)
	}
	return methods
}

func surfaceUnit(t *testing.T, lines ...string) *Unit {
	t.Helper()
	actions, err := decl.NewActions("UserMobileSurface.h", "SURFACE_ACTION", true,
		parseMethods(t, "SURFACE_ACTION", lines...))
	require.NoError(t, err)
	return &Unit{
		Actions:     actions,
		ClassName:   "AndroidUserMobileSurfaceView",
		NativeClass: "UserMobileSurface",
		Include:     "UserMobileSurface.h",
		Package:     "com.example.app",
		PathDefine:  PathDefine("AndroidUserMobileSurfaceView"),
	}
}

func appUnit(t *testing.T, lines ...string) *Unit {
	t.Helper()
	actions, err := decl.NewActions("MobileApp.h", "APP_ACTION", false,
		parseMethods(t, "APP_ACTION", lines...))
	require.NoError(t, err)
	return &Unit{
		Actions:     actions,
		ClassName:   "MobileApp",
		NativeClass: "MobileApp",
		Include:     "MobileApp.h",
		Package:     "com.example.app",
		PathDefine:  PathDefine("MobileApp"),
	}
}

func testLoader() *tmpl.Loader { return &tmpl.Loader{} }

// renderTrampoline renders the JNI function of the first method of u.
func renderTrampoline(u *Unit) (string, error) {
	t, err := testLoader().Load(u.trampolineTemplate())
	if err != nil {
		return "", err
	}
	return trampoline(t, u.Actions.Methods[0], u)
}

// renderWrapper renders the Java wrapper of the first method of u.
func renderWrapper(u *Unit) (string, error) {
	t, err := testLoader().Load(TplJavaMethod)
	if err != nil {
		return "", err
	}
	return wrapper(t, u.Actions.Methods[0], u)
}
