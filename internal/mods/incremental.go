package mods

import (
	"strings"

	"subfix/internal/srt"
)

// FixIncremental removes typewriter-style accumulation, where each entry
// repeats the previous entry's lines and appends a little more. Lines the
// previous entry already ends with are duplicate remainders and are dropped.
type FixIncremental struct{}

// NewFixIncremental constructs the deduplication transform.
func NewFixIncremental() *FixIncremental { return &FixIncremental{} }

// Descriptor returns the registration metadata.
func (m *FixIncremental) Descriptor() Descriptor {
	return Descriptor{
		Identifier:        "fix_incremental",
		Description:       "Fixes incremental-repeating subtitles",
		Exclusive:         true,
		Order:             30,
		ModifiesWholeFile: true,
	}
}

// Modify folds over the sequence carrying the previous entry as context. The
// first entry passes through unmodified; an entry whose every line duplicates
// the previous text is retained as an empty entry, never removed. The suffix
// check deliberately compares against the previous entry's entire text.
func (m *FixIncremental) Modify(entries []*srt.Entry, ctx *Context) []*srt.Entry {
	var prev *srt.Entry
	for _, entry := range entries {
		if entry == nil {
			continue
		}
		if prev == nil {
			prev = entry
			continue
		}
		prevLower := strings.ToLower(prev.Text)
		kept := make([]string, 0, 2)
		for _, line := range entry.Lines() {
			if prev.Text != "" && strings.HasSuffix(prevLower, strings.ToLower(line)) {
				ctx.log().Debug("dropping incremental duplicate line", "line", line)
				continue
			}
			kept = append(kept, line)
		}
		if len(kept) == 0 {
			entry.Text = ""
		} else {
			entry.SetLines(kept)
		}
		prev = entry
	}
	return entries
}
