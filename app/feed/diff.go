package feed

import (
	"regexp"
	"strings"
)

var (
	pubDateRe       = regexp.MustCompile(`<pubDate>.*?</pubDate>`)
	lastBuildDateRe = regexp.MustCompile(`<lastBuildDate>.*?</lastBuildDate>`)
)

// NormalizeForComparison blanks the channel-level timestamps so two
// renderings of the same content compare equal. Only the first occurrence
// of each element is touched; item-level pubDate values are substantive.
func NormalizeForComparison(xmlContent string) string {
	normalized := replaceFirst(pubDateRe, xmlContent, "<pubDate></pubDate>")
	normalized = replaceFirst(lastBuildDateRe, normalized, "<lastBuildDate></lastBuildDate>")

	return strings.TrimSpace(normalized)
}

func replaceFirst(re *regexp.Regexp, s, replacement string) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s
	}

	return s[:loc[0]] + replacement + s[loc[1]:]
}
