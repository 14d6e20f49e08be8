package emit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathDefine(t *testing.T) {
	tests := map[string]string{
		"AndroidUserMobileSurfaceView": "JPATH_ANDROID_USER_MOBILE_SURFACE_VIEW",
		"AndroidMobileSurfaceView":     "JPATH_ANDROID_MOBILE_SURFACE_VIEW",
		"MobileApp":                    "JPATH_MOBILE_APP",
		"App":                          "JPATH_APP",
		"HTTPClient":                   "JPATH_HTTP_CLIENT",
		"View2D":                       "JPATH_VIEW2_D",
	}
	for in, want := range tests {
		assert.Equal(t, want, PathDefine(in), in)
	}
}

func TestPaths(t *testing.T) {
	f := Paths("com.example.app", []string{"AndroidMobileSurfaceView", "MobileApp"})
	assert.Equal(t, PathsHeader, f.Path)
	assert.Equal(t,
		"#define JPATH_ANDROID_MOBILE_SURFACE_VIEW \"com/example/app/AndroidMobileSurfaceView\"\n"+
			"#define JPATH_MOBILE_APP \"com/example/app/MobileApp\"",
		string(f.Content))
}

func TestSlashPath(t *testing.T) {
	assert.Equal(t, "com/techsoft3d/hps/virtual_training", SlashPath("com.techsoft3d.hps.virtual_training"))
	assert.Equal(t, "app", SlashPath("app"))
}
