package srt

import (
	"regexp"
	"strings"
	"time"
)

// LineBreak is the internal marker separating display lines within an entry's
// raw text. Parsing converts file newlines to this marker; rendering converts
// it back.
const LineBreak = `\N`

// Entry is one timed caption unit.
type Entry struct {
	Index int
	Start time.Duration
	End   time.Duration
	// Text is the raw caption text with LineBreak separating display lines.
	// It may contain style markup.
	Text string
}

// Duration returns the display duration of the entry.
func (e *Entry) Duration() time.Duration {
	return e.End - e.Start
}

// Lines splits the raw text into display lines.
func (e *Entry) Lines() []string {
	return strings.Split(e.Text, LineBreak)
}

// SetLines replaces the raw text from display lines.
func (e *Entry) SetLines(lines []string) {
	e.Text = strings.Join(lines, LineBreak)
}

// Plain returns the entry text with style markup removed and line-break
// markers replaced by newlines. It is always re-derived from Text.
func (e *Entry) Plain() string {
	return StripTags(strings.ReplaceAll(e.Text, LineBreak, "\n"))
}

// SetPlain stores a plain-text value, re-encoding line breaks with the
// internal marker so Text keeps its marker convention. Assigning the result
// of Plain back through SetPlain strips markup while preserving line
// structure exactly.
func (e *Entry) SetPlain(text string) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	e.Text = strings.ReplaceAll(text, "\n", LineBreak)
}

// Clone returns a copy of the entry.
func (e *Entry) Clone() *Entry {
	clone := *e
	return &clone
}

var (
	htmlTagPattern = regexp.MustCompile(`(?i)</?\s*(?:font|b|i|u|s|ruby|rt|c|v|lang)\b[^>]*>`)
	assTagPattern  = regexp.MustCompile(`\{\\[^}]*\}`)
)

// StripTags removes style and formatting markup (font, bold, italic, color,
// ASS override blocks) while leaving the text and its line structure intact.
func StripTags(text string) string {
	if !strings.ContainsAny(text, "<{") {
		return text
	}
	text = htmlTagPattern.ReplaceAllString(text, "")
	return assTagPattern.ReplaceAllString(text, "")
}
