package mods

import (
	"strings"

	"subfix/internal/srt"
)

// Descriptor is the registration metadata every modification declares.
type Descriptor struct {
	Identifier  string
	Description string
	// Exclusive modifications collapse to a single application even when
	// selected repeatedly.
	Exclusive bool
	// Order positions the modification in the pipeline; lower runs earlier
	// unless ApplyLast is set.
	Order int
	// Languages restricts applicability to a set of ISO 639-2 codes; empty
	// means all languages.
	Languages []string
	// OnlyUppercase gates the modification on predominantly-uppercase input.
	OnlyUppercase bool
	// ApplyLast schedules the modification after all other selected ones.
	ApplyLast bool
	// ModifiesWholeFile marks transforms that operate on the full entry
	// sequence rather than per-line text.
	ModifiesWholeFile bool
}

// AppliesTo reports whether the descriptor's language restriction admits the
// given ISO 639-2 code. An unrestricted modification applies to every
// language, including an unresolved one; a restricted modification requires a
// resolved match.
func (d Descriptor) AppliesTo(lang string) bool {
	if len(d.Languages) == 0 {
		return true
	}
	if lang == "" || lang == "und" {
		return false
	}
	for _, l := range d.Languages {
		if l == lang {
			return true
		}
	}
	return false
}

// Modification is the contract every rule set and whole-file transform
// fulfills. Modify receives the entry sequence and returns the sequence to
// continue with; per-line rule sets mutate entries in place and return the
// input slice, whole-file transforms may rebuild it.
type Modification interface {
	Descriptor() Descriptor
	Modify(entries []*srt.Entry, ctx *Context) []*srt.Entry
}

// TextMod applies an ordered rule list to every display line of every entry,
// then collapses lines the rules emptied. Entry count never changes.
type TextMod struct {
	Desc  Descriptor
	Rules []Rule
}

// Descriptor returns the registration metadata.
func (m *TextMod) Descriptor() Descriptor { return m.Desc }

// Modify runs the rule list over each entry. Each rule receives the output of
// the previous rule. Lines left empty are removed when the entry is
// reassembled; an entry whose lines all emptied keeps an empty text but stays
// in the sequence.
func (m *TextMod) Modify(entries []*srt.Entry, ctx *Context) []*srt.Entry {
	for _, entry := range entries {
		if entry == nil {
			continue
		}
		lines := entry.Lines()
		kept := make([]string, 0, len(lines))
		for _, line := range lines {
			for _, rule := range m.Rules {
				line = rule.Apply(ctx, line)
			}
			if strings.TrimSpace(line) == "" {
				continue
			}
			kept = append(kept, line)
		}
		if len(kept) == 0 {
			entry.Text = ""
			continue
		}
		entry.SetLines(kept)
	}
	return entries
}
