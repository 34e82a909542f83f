// Package naming maps occurrence labels to stable component and mesh names.
package naming

import (
	"regexp"
	"strings"
	"unicode"
)

// BaseLink is the reserved name of the robot's root link. Any label
// mentioning it collapses to it.
const BaseLink = "base_link"

var (
	versionSuffix = regexp.MustCompile(` v\d+`)
	whitespaceRun = regexp.MustCompile(`[\s\v\p{Z}\x{85}\x{1c}-\x{1f}]+`)
	illegalChars  = regexp.MustCompile(`[/:*?"<>| +]`)
	underscoreRun = regexp.MustCompile(`_+`)
)

// Sanitize turns a path-like label such as "Robot v3:1/Arm v2:1" into a
// name that is safe as a file or component name.
//
// The rules apply in order: a label containing "base_link" becomes
// "base_link"; otherwise the label is trimmed, " v<digits>" version markers
// are removed, whitespace runs collapse to one space, reserved characters
// (including space and '+') become '_', and runs of '_' collapse.
//
// A result that only spells "base_link" after cleanup, such as
// "base link_2", also collapses to it so that Sanitize stays idempotent.
func Sanitize(label string) string {
	if strings.Contains(label, BaseLink) {
		return BaseLink
	}

	s := strings.TrimFunc(label, isSpace)
	s = versionSuffix.ReplaceAllString(s, "")
	s = whitespaceRun.ReplaceAllString(s, " ")
	s = illegalChars.ReplaceAllString(s, "_")
	s = underscoreRun.ReplaceAllString(s, "_")
	if strings.Contains(s, BaseLink) {
		return BaseLink
	}
	return s
}

// isSpace reports whether r belongs to the class matched by whitespaceRun.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || unicode.Is(unicode.Z, r) || (r >= 0x1c && r <= 0x1f)
}

// MeshFileName returns the STL file name used for the label's exported mesh.
func MeshFileName(label string) string {
	return Sanitize(label) + ".stl"
}

// ComponentName returns the name given to the temporary component that
// collects the bodies of an occurrence.
func ComponentName(label string) string {
	return "TMP_" + Sanitize(label)
}
