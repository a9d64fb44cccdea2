package deckcode

import "regexp"

// tagPattern matches HTML-like tag runs. This is a best-effort sanitizer,
// kept bug-for-bug compatible with existing deck codes rather than
// upgraded to a real HTML parser.
var tagPattern = regexp.MustCompile(`<[^<]+?>`)

func stripTags(s string) string {
	return tagPattern.ReplaceAllString(s, "")
}
