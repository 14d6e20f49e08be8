package doc

import (
	"fmt"
	"strings"
)

// FormatSet formats the binding reference of sd for terminal display.
func FormatSet(sd *SetDoc, className string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("class %s (%s in %s)", className, sd.Sentinel, sd.Path))
	sb.WriteString("\n")
	if sd.Doc != "" {
		writeIndented(&sb, sd.Doc)
	}
	sb.WriteString("\n")

	for _, md := range sd.Methods {
		sb.WriteString(FormatMethod(md, sd.NeedsHandle))
		sb.WriteString("\n")
	}

	return strings.TrimRight(sb.String(), "\n") + "\n"
}

// FormatMethod formats one method: the Java wrapper signature, then the
// native declaration and JNI registration it maps to, then its doc.
func FormatMethod(md MethodDoc, needsHandle bool) string {
	var sb strings.Builder
	m := md.Method

	mod := "public static"
	if needsHandle {
		mod = "public"
	}
	params := make([]string, len(m.Params))
	for i, p := range m.Params {
		params[i] = p.JavaType + " " + p.Name
	}
	sb.WriteString(fmt.Sprintf("%s %s %s(%s)\n", mod, m.Return.JavaType(), m.Name, strings.Join(params, ", ")))
	sb.WriteString(fmt.Sprintf("    native: %s\n", m.Decl()))
	sb.WriteString(fmt.Sprintf("    jni:    %s %s\n", m.OverloadName, m.Signature(needsHandle)))
	if md.Doc != "" {
		writeIndented(&sb, md.Doc)
	}
	return sb.String()
}

func writeIndented(sb *strings.Builder, text string) {
	sb.WriteString("    ")
	sb.WriteString(strings.ReplaceAll(text, "\n", "\n    "))
	sb.WriteString("\n")
}
