// Package render writes catalog views in their output formats: terminal
// literals, markdown for glamour, and the static HTML export. Example code is
// always treated as literal text in every format.
package render

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
)

// Literal makes code safe to print on a terminal: escape sequences are
// stripped and control characters other than newline and tab are dropped,
// so catalog text cannot restyle or move the cursor.
func Literal(code string) string {
	stripped := ansi.Strip(code)
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, stripped)
}

// Fence wraps code in a markdown code fence longer than any backtick run
// inside it, so the code cannot close the block early.
func Fence(code, info string) string {
	fence := strings.Repeat("`", max(3, longestBacktickRun(code)+1))

	var b strings.Builder
	b.WriteString(fence)
	b.WriteString(info)
	b.WriteByte('\n')
	b.WriteString(code)
	if !strings.HasSuffix(code, "\n") {
		b.WriteByte('\n')
	}
	b.WriteString(fence)
	b.WriteByte('\n')
	return b.String()
}

// CodeSpan wraps text in an inline code span delimited by more backticks
// than any run inside it. Text that starts or ends with a backtick is
// padded with a space so the delimiters stay separate.
func CodeSpan(text string) string {
	fence := strings.Repeat("`", longestBacktickRun(text)+1)
	if strings.HasPrefix(text, "`") || strings.HasSuffix(text, "`") {
		text = " " + text + " "
	}
	return fence + text + fence
}

func longestBacktickRun(s string) int {
	longest, run := 0, 0
	for _, r := range s {
		if r != '`' {
			run = 0
			continue
		}
		run++
		longest = max(longest, run)
	}
	return longest
}

// FenceInfo picks a fence language for an example body: json when it looks
// like a JSON document, http for request lines, text otherwise.
func FenceInfo(code string) string {
	trimmed := strings.TrimSpace(code)
	switch {
	case strings.HasPrefix(trimmed, "{"), strings.HasPrefix(trimmed, "["):
		return "json"
	case startsWithVerb(trimmed):
		return "http"
	default:
		return "text"
	}
}

func startsWithVerb(s string) bool {
	for _, verb := range []string{"GET ", "POST ", "PUT ", "PATCH ", "DELETE ", "HEAD ", "OPTIONS "} {
		if strings.HasPrefix(s, verb) {
			return true
		}
	}
	return false
}
