package emit

import (
	"fmt"
	"strings"
)

// PathsHeader is the name of the shared class path header.
const PathsHeader = "jpaths.h"

// PathDefine returns the jpaths.h macro for a Java class name:
// AndroidUserMobileSurfaceView → JPATH_ANDROID_USER_MOBILE_SURFACE_VIEW.
func PathDefine(className string) string {
	return "JPATH_" + upperSnake(className)
}

// SlashPath turns a dotted Java package into its JNI class path prefix.
func SlashPath(pkg string) string {
	return strings.ReplaceAll(pkg, ".", "/")
}

// Paths renders jpaths.h, one #define per class, in the given order.
func Paths(pkg string, classes []string) *OutputFile {
	lines := make([]string, len(classes))
	for i, c := range classes {
		lines[i] = fmt.Sprintf("#define %s \"%s/%s\"", PathDefine(c), SlashPath(pkg), c)
	}
	return &OutputFile{Path: PathsHeader, Content: []byte(strings.Join(lines, "\n"))}
}

func upperSnake(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if i > 0 && isUpper(ch) {
			prev := s[i-1]
			nextLower := i+1 < len(s) && isLower(s[i+1])
			if isLower(prev) || isDigit(prev) || (isUpper(prev) && nextLower) {
				sb.WriteByte('_')
			}
		}
		if isLower(ch) {
			ch -= 'a' - 'A'
		}
		sb.WriteByte(ch)
	}
	return sb.String()
}

func isUpper(ch byte) bool { return ch >= 'A' && ch <= 'Z' }
func isLower(ch byte) bool { return ch >= 'a' && ch <= 'z' }
func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }
