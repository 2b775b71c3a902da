package talk

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	congressSuffixRe = regexp.MustCompile(`(?i)\s*\(\d+c3\)\s*$`)
	whitespaceRe     = regexp.MustCompile(`\s+`)
)

// NormalizeTitle produces the canonical comparison form of a talk title:
// Unicode NFC, trailing congress marker like "(38c3)" stripped, whitespace
// collapsed, uppercased and trimmed.
func NormalizeTitle(title string) string {
	s := norm.NFC.String(title)
	s = congressSuffixRe.ReplaceAllString(s, "")
	s = whitespaceRe.ReplaceAllString(s, " ")
	s = strings.ToUpper(s)

	return strings.TrimSpace(s)
}
