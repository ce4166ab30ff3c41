package util

import (
	"strings"
)

// ExtractSnippet returns up to maxLines lines of context centered on the
// 1-based line number.
func ExtractSnippet(content string, line, maxLines int) string {
	if maxLines <= 0 {
		maxLines = 3
	}
	lines := strings.Split(content, "\n")
	if line < 1 {
		line = 1
	}
	if line > len(lines) {
		line = len(lines)
	}
	s := line - 1 - maxLines/2
	if s < 0 {
		s = 0
	}
	e := s + maxLines - 1
	if e > len(lines)-1 {
		e = len(lines) - 1
	}
	return strings.Join(lines[s:e+1], "\n")
}
