// Package markdown rewrites extracted resume text into lightweight
// Markdown so section headers and lists survive the trip into a prompt.
package markdown

import (
	"regexp"
	"strings"
)

var (
	bulletLine      = regexp.MustCompile(`^\s*[•●▪]\s+`)
	numberedLine    = regexp.MustCompile(`^\s*(\d+)\.\s+`)
	headerLine      = regexp.MustCompile(`^[A-Z][A-Z \-]+:?$`)
	paragraphBreaks = regexp.MustCompile(`\n{3,}`)
)

// Normalize applies the reformatting rules line by line, then collapses
// oversized paragraph breaks. It never fails, and applying it to its own
// output changes nothing.
func Normalize(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = normalizeLine(line)
	}
	out := strings.TrimSpace(strings.Join(lines, "\n"))
	return paragraphBreaks.ReplaceAllString(out, "\n\n")
}

// normalizeLine runs the line rules in order: bullet glyphs become "- ",
// numbered items move to column 0, all-caps section headers get bolded.
// A line rewritten by an earlier rule starts with "-" or a digit and can
// no longer match the header pattern.
func normalizeLine(line string) string {
	line = bulletLine.ReplaceAllString(line, "- ")
	line = numberedLine.ReplaceAllString(line, "${1}. ")
	if trimmed := strings.TrimSpace(line); headerLine.MatchString(trimmed) {
		return "**" + trimmed + "**"
	}
	return line
}
