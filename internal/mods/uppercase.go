package mods

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"subfix/internal/srt"
)

// Sentence delimiters for re-casing, kept as their own segments so phrases
// separated by music notes or dashes capitalize independently.
var upperSplitPattern = regexp.MustCompile(`\s*[.!?♪-]\s*`)

// FixUppercase re-cases subtitles written entirely in capitals. It only runs
// when the caller determined the source is predominantly uppercase, and it is
// scheduled after every other modification so it re-cases final text.
type FixUppercase struct{}

// NewFixUppercase constructs the uppercase repair transform.
func NewFixUppercase() *FixUppercase { return &FixUppercase{} }

// Descriptor returns the registration metadata.
func (m *FixUppercase) Descriptor() Descriptor {
	return Descriptor{
		Identifier:        "fix_uppercase",
		Description:       "Fixes all-uppercase subtitles",
		Exclusive:         true,
		Order:             41,
		OnlyUppercase:     true,
		ApplyLast:         true,
		ModifiesWholeFile: true,
	}
}

// Modify capitalizes each entry's plain text segment by segment.
func (m *FixUppercase) Modify(entries []*srt.Entry, _ *Context) []*srt.Entry {
	for _, entry := range entries {
		if entry == nil {
			continue
		}
		entry.SetPlain(capitalizeSegments(entry.Plain()))
	}
	return entries
}

// capitalizeSegments splits on sentence delimiters while retaining the
// delimiters as their own segments, capitalizes every segment independently,
// and rejoins in order. Capitalization never crosses a delimiter.
func capitalizeSegments(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	prev := 0
	for _, m := range upperSplitPattern.FindAllStringIndex(text, -1) {
		b.WriteString(capitalizeSegment(text[prev:m[0]]))
		b.WriteString(capitalizeSegment(text[m[0]:m[1]]))
		prev = m[1]
	}
	b.WriteString(capitalizeSegment(text[prev:]))
	return b.String()
}

// capitalizeSegment uppercases the first rune and lowercases the rest.
func capitalizeSegment(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
