// Package textscan turns raw page text into normalized lines and builds
// bounded scan windows around lines that mention the tracked team. Windows of
// neighboring anchors overlap on purpose: the same real-world event may
// surface several times and is collapsed later by id equality, not here.
package textscan

import (
	"regexp"
	"strings"
)

var spaceRun = regexp.MustCompile(`\s+`)

// Normalize collapses every whitespace run in s to one space and trims the
// ends.
func Normalize(s string) string {
	return strings.TrimSpace(spaceRun.ReplaceAllString(s, " "))
}

// Lines splits raw page text into normalized non-empty lines, preserving page
// order.
func Lines(raw string) []string {
	split := strings.Split(raw, "\n")
	lines := make([]string, 0, len(split))
	for _, l := range split {
		if n := Normalize(l); n != "" {
			lines = append(lines, n)
		}
	}
	return lines
}

// WordPattern compiles a case-sensitive whole-word matcher for name, so that
// "Capitals" anchors a line but "Capitalsburg" does not.
func WordPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\b`)
}

// Window is a bounded span of lines around one anchor line, joined into a
// single string for pattern matching.
type Window struct {
	Anchor int
	Text   string
}

// Windows builds one window per anchor line, covering `before` lines above
// and `after` lines below it (clamped to the page).
func Windows(lines []string, team string, before, after int) []Window {
	pat := WordPattern(team)

	var out []Window
	for i, line := range lines {
		if !pat.MatchString(line) {
			continue
		}
		lo := max(0, i-before)
		hi := min(len(lines), i+after)
		out = append(out, Window{Anchor: i, Text: strings.Join(lines[lo:hi], " ")})
	}
	return out
}
