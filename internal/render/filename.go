package render

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// maxBaseNameBytes leaves room for an extension within the common 255-byte
// file name limit.
const maxBaseNameBytes = 200

var filenameSeparators = regexp.MustCompile(`[\s/\\]+`)

// FileName derives the export file name from a document title: every run of
// whitespace (and any path separator) becomes a single underscore, and the
// ".pdf" extension is appended.
func FileName(title string) string {
	return BaseName(title) + ".pdf"
}

// BaseName is FileName without the extension, cut to maxBaseNameBytes on a
// rune boundary.
func BaseName(title string) string {
	name := filenameSeparators.ReplaceAllString(title, "_")
	if len(name) > maxBaseNameBytes {
		cut := maxBaseNameBytes
		for cut > 0 && !utf8.RuneStart(name[cut]) {
			cut--
		}
		name = name[:cut]
	}
	if strings.Trim(name, "_.") == "" {
		name = "untitled"
	}
	return name
}
