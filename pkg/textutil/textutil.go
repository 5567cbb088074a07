// Package textutil holds small text helpers shared across services.
package textutil

import (
	"regexp"
	"strings"
)

var (
	boldAsterisk   = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	boldUnderscore = regexp.MustCompile(`__([^_]+)__`)
	italicAsterisk = regexp.MustCompile(`\*([^*]+)\*`)
	italicUnder    = regexp.MustCompile(`_([^_]+)_`)
	bulletMarker   = regexp.MustCompile(`(?m)^\s*\*\s+`)
	headerMarker   = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	blankRuns      = regexp.MustCompile(`\n{3,}`)
)

// StripMarkdown removes markdown emphasis, bullets, and headers so the text
// reads cleanly when narrated or displayed as plain text.
func StripMarkdown(content string) string {
	out := boldAsterisk.ReplaceAllString(content, "$1")
	out = boldUnderscore.ReplaceAllString(out, "$1")
	out = italicAsterisk.ReplaceAllString(out, "$1")
	out = italicUnder.ReplaceAllString(out, "$1")
	out = bulletMarker.ReplaceAllString(out, "• ")
	out = headerMarker.ReplaceAllString(out, "")
	out = blankRuns.ReplaceAllString(out, "\n\n")
	return strings.TrimSpace(out)
}

// Truncate cuts s to at most max runes.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
