package mods

import (
	"regexp"
	"strings"
	"time"

	"subfix/internal/srt"
)

// Merge policy for flash captions.
const (
	shortMaxDuration = 500 * time.Millisecond
	shortMaxLineLen  = 200
	shortMaxLines    = 3
)

// A line is complete enough to pack when it ends in non-word punctuation.
var lineCompletePattern = regexp.MustCompile(`^.+[^\p{L}\p{N}_]$`)

// FixShort merges very short flash captions backward into the preceding
// entry. Lines are first packed within the entry, then the entry is absorbed
// into the previous output entry when its duration and the packed line count
// stay within the merge limits. The sequence is rebuilt; entry count may
// shrink.
type FixShort struct{}

// NewFixShort constructs the short-entry merger.
func NewFixShort() *FixShort { return &FixShort{} }

// Descriptor returns the registration metadata.
func (m *FixShort) Descriptor() Descriptor {
	return Descriptor{
		Identifier:        "fix_short",
		Description:       "Merges short flash captions into their predecessor",
		Exclusive:         true,
		Order:             35,
		ModifiesWholeFile: true,
	}
}

// Modify rebuilds the sequence. The first entry is always carried through as
// the initial anchor; each later entry either extends the previous output
// entry (keeping that entry's timing) or stands alone.
func (m *FixShort) Modify(entries []*srt.Entry, ctx *Context) []*srt.Entry {
	if len(entries) == 0 {
		return entries
	}
	out := make([]*srt.Entry, 0, len(entries))
	out = append(out, entries[0].Clone())
	for _, entry := range entries[1:] {
		if entry == nil {
			continue
		}
		packed := packLines(entry.Lines())
		prev := out[len(out)-1]
		if entry.Duration() < shortMaxDuration && len(packed) < shortMaxLines {
			ctx.log().Debug("merging short entry into predecessor",
				"previous", prev.Text, "current", entry.Text)
			prev.SetLines(append(prev.Lines(), packed...))
			continue
		}
		merged := entry.Clone()
		merged.SetLines(packed)
		out = append(out, merged)
	}
	return out
}

// packLines folds each line onto the running last-line buffer: a candidate
// joins the buffer when the buffer is non-empty and different, the combined
// length stays within the limit, and the candidate ends with non-word
// punctuation. Otherwise the candidate starts a new buffer entry.
func packLines(lines []string) []string {
	packed := make([]string, 0, len(lines))
	for _, line := range lines {
		if line != "" && len(packed) > 0 {
			last := packed[len(packed)-1]
			if last != "" && last != line &&
				len(last)+len(line) <= shortMaxLineLen &&
				lineCompletePattern.MatchString(line) {
				if strings.HasSuffix(last, " ") {
					packed[len(packed)-1] = last + line
				} else {
					packed[len(packed)-1] = last + " " + line
				}
				continue
			}
		}
		packed = append(packed, line)
	}
	return packed
}
