package mods

import (
	"regexp"
	"strings"
)

// Patterns that need surrounding-text checks RE2 cannot express in one
// expression; their rules pair them with small bits of code below.
var (
	openingMusicPattern  = regexp.MustCompile(`^[-\s>~]*[*#¶]+\s+`)
	closingMusicPattern  = regexp.MustCompile(`\s*[*#¶]+\s*$`)
	spacedEllipsisStart  = regexp.MustCompile(`^\s?\. \. \.`)
	plainEllipsisStart   = regexp.MustCompile(`^\s?\.{3}`)
	startingDotsPattern  = regexp.MustCompile(`^\.+\s+`)
	leadingDotRunPattern = regexp.MustCompile(`^[\s.]*`)
	spaceBeforePunct     = regexp.MustCompile(`(^|[\p{L}\p{N}_])( +)([!?.,])`)
)

// NewCommonFixes builds the "common" rule set: whitespace, punctuation,
// quote, and casing fixes applied to every display line. Rule order is a
// contract; several rules depend on the output of earlier ones.
func NewCommonFixes() *TextMod {
	return &TextMod{
		Desc: Descriptor{
			Identifier:  "common",
			Description: "Basic common fixes",
			Exclusive:   true,
			Order:       40,
		},
		Rules: []Rule{
			// Normalize Unicode hyphen variants.
			{
				Name:    "common_hyphens",
				Pattern: regexp.MustCompile(`[‑‐﹘﹣]`),
				Replace: "-",
			},
			// Repeated hyphens at a word boundary become an em dash.
			{
				Name:    "common_multidash",
				Pattern: regexp.MustCompile(`([\p{L}\p{N}_]|\b|\s|^)(-\s?-{1,2})`),
				Replace: "${1}—",
			},
			// A line of nothing but punctuation and markup carries no text.
			{
				Name:    "common_non_word_only",
				Pattern: regexp.MustCompile(`^[^\p{L}\p{N}]*[-_.:<>~"']+[^\p{L}\p{N}]*$`),
				Replace: "",
			},
			// Strip the ">>" new-speaker marker.
			{
				Name:    "common_leading_crocodiles",
				Pattern: regexp.MustCompile(`^\s?>>\s*`),
				Replace: "",
			},
			// Strip a bare leading colon before a word.
			{
				Name:    "common_empty_colon_start",
				Pattern: regexp.MustCompile(`^[^\p{L}\p{N}]*:\s*([\p{L}\p{N}_])`),
				Replace: "${1}",
			},
			// Music markers (*, #, ¶) become a note glyph with spacing that
			// depends on whether the marker opens or closes the line.
			{
				Name: "common_music_symbols",
				Fn: func(_ *Context, line string) string {
					line = openingMusicPattern.ReplaceAllString(line, "♪ ")
					return closingMusicPattern.ReplaceAllString(line, " ♪")
				},
			},
			// Runs of apostrophe-like glyphs are a mistyped double quote.
			{
				Name:    "common_double_apostrophe",
				Pattern: regexp.MustCompile(`['’ʼ❜‘‛]{2,}`),
				Replace: `"`,
			},
			// A double quote between letters is a mistyped apostrophe.
			{
				Name:    "common_double_as_single",
				Pattern: regexp.MustCompile(`([A-Za-zÀ-ž])"([A-Za-zÀ-ž])`),
				Replace: "${1}'${2}",
			},
			// Collapse runs of smart double quotes to one canonical quote,
			// keeping a single trailing space if the run ended in one.
			{
				Name:    "common_normalize_quotes",
				Pattern: regexp.MustCompile(`(\s*["”“‟„])\s*(["”“‟„]["”“‟„\s]*)`),
				ReplaceFunc: func(_ *Context, m []string) string {
					if strings.HasSuffix(m[2], " ") {
						return `" `
					}
					return `"`
				},
			},
			// Canonicalize single-quote glyphs.
			{
				Name:    "common_normalize_squotes",
				Pattern: regexp.MustCompile(`[’ʼ❜‘‛]`),
				Replace: "'",
			},
			// Strip a leading ellipsis.
			{
				Name:    "common_leading_ellipsis",
				Pattern: regexp.MustCompile(`^\.\.\.\s*`),
				Replace: "",
			},
			// Drop "downloaded from" advertisement lines entirely.
			{
				Name:    "common_crap",
				Pattern: regexp.MustCompile(`(?i).+downloaded\s+from.+`),
				Replace: "",
			},
			// An ellipsis mid-sentence gets exactly one trailing space.
			{
				Name:    "common_ellipsis_space",
				Pattern: regexp.MustCompile(`\.\.\.([^\s.,!?'"])`),
				Replace: "... ${1}",
			},
			// No space directly before a spaced ellipsis.
			{
				Name:    "common_spaced_ellipsis",
				Pattern: regexp.MustCompile(`(\S)\. \. \.`),
				Replace: "${1} . . .",
			},
			// Collapse whitespace runs.
			{
				Name:    "common_multiple_spaces",
				Pattern: regexp.MustCompile(`\s{2,}`),
				Replace: " ",
			},
			// Cap dot runs at three.
			{
				Name:    "common_dots",
				Pattern: regexp.MustCompile(`\.{3,}`),
				Replace: "...",
			},
			// A leading dialogue dash gets one space.
			{
				Name:    "common_dash_space",
				Pattern: regexp.MustCompile(`^-([^\s-])`),
				Replace: "- ${1}",
			},
			// Strip leading dot groups that are not a recognized ellipsis.
			{
				Name: "common_starting_spacedots",
				Fn: func(_ *Context, line string) string {
					if spacedEllipsisStart.MatchString(line) || plainEllipsisStart.MatchString(line) {
						return line
					}
					if !startingDotsPattern.MatchString(line) {
						return line
					}
					return leadingDotRunPattern.ReplaceAllString(line, "")
				},
			},
			// Uppercase I glued onto lowercase letters is OCR-misread l.
			{
				Name:    "common_uppercase_i_in_word",
				Pattern: regexp.MustCompile(`([a-zà-ž]+)(I+)`),
				ReplaceFunc: func(_ *Context, m []string) string {
					return m[1] + strings.Repeat("l", len(m[2]))
				},
			},
			// A single space inside a digit group is OCR damage; two or more
			// spaces look like independent numbers (countdowns) and stay.
			{
				Name:    "common_spaces_in_numbers",
				Pattern: regexp.MustCompile(`\b[0-9]+[0-9:']*\s+[0-9,.:'\s]*[0-9]`),
				ReplaceFunc: func(_ *Context, m []string) string {
					if strings.Contains(m[0], "..") {
						return m[0]
					}
					if strings.Count(m[0], " ") != 1 {
						return m[0]
					}
					return strings.ReplaceAll(m[0], " ", "")
				},
			},
			// Capitalize after a sentence-ending dot, unless the preceding
			// token looks like an initial, acronym, or number.
			{
				Name:    "common_uppercase_after_dot",
				Pattern: regexp.MustCompile(`([^.\s]+\.\s+)([a-zà-ž])`),
				ReplaceFunc: func(_ *Context, m []string) string {
					if startsAbbreviationLike(m[1]) {
						return m[0]
					}
					return m[1] + strings.ToUpper(m[2])
				},
			},
			// Doubled interpunction collapses to the first mark.
			{
				Name:    "common_double_interpunct",
				Pattern: regexp.MustCompile(`(\s*[,!?])\s*([,.!?][,.!?\s]*)`),
				ReplaceFunc: func(_ *Context, m []string) string {
					out := strings.TrimSpace(m[1])
					if strings.HasSuffix(m[2], " ") {
						out += " "
					}
					return out
				},
			},
			// Remove spurious whitespace before punctuation, leaving spaced
			// ellipses alone.
			{
				Name: "common_punctuation_space",
				Fn:   removeSpaceBeforePunctuation,
			},
			// Insert a missing space after sentence punctuation unless the
			// token is a host name (keeps URLs intact).
			{
				Name:    "common_punctuation_space2",
				Pattern: regexp.MustCompile(`(\S*)([!?.,:])([A-Za-zÀ-ž]{2,})`),
				ReplaceFunc: func(ctx *Context, m []string) string {
					if ctx.validHost(m[0]) {
						return m[0]
					}
					return m[1] + m[2] + " " + m[3]
				},
			},
			// English: a standalone lowercase i is the pronoun.
			{
				Name:    "common_english_lowercase_i",
				Pattern: regexp.MustCompile(`\bi\b`),
				Replace: "I",
				Supported: func(ctx *Context) bool {
					return ctx != nil && ctx.Language == "eng"
				},
			},
		},
	}
}

// startsAbbreviationLike reports whether the token before the sentence dot
// starts with an uppercase letter, digit, dot, dash, or underscore, the
// shapes initials, acronyms, and numbered lists take.
func startsAbbreviationLike(token string) bool {
	for _, r := range token {
		switch {
		case r >= 'A' && r <= 'Z':
			return true
		case r >= 'À' && r <= 'Ž':
			return true
		case r >= '0' && r <= '9':
			return true
		case r == '.' || r == '-' || r == '_':
			return true
		}
		return false
	}
	return false
}

// removeSpaceBeforePunctuation deletes spaces between a word (or line start)
// and a following single punctuation mark. Spaces that belong to a spaced
// ellipsis or precede a punctuation run are kept.
func removeSpaceBeforePunctuation(_ *Context, line string) string {
	matches := spaceBeforePunct.FindAllStringSubmatchIndex(line, -1)
	if len(matches) == 0 {
		return line
	}
	var b strings.Builder
	b.Grow(len(line))
	prev := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		rest := line[end:]
		// The matched mark must stand alone: not part of a punctuation run
		// and not the head of a spaced ellipsis.
		if len(rest) > 0 && strings.ContainsRune("!?.,", rune(rest[0])) {
			continue
		}
		if strings.HasPrefix(rest, " .") {
			continue
		}
		b.WriteString(line[prev:start])
		b.WriteString(line[m[2]:m[3]]) // leading word char or line start
		b.WriteString(line[m[6]:m[7]]) // the punctuation mark
		prev = end
	}
	b.WriteString(line[prev:])
	return b.String()
}
