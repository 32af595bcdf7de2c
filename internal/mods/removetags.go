package mods

import (
	"subfix/internal/srt"
)

// RemoveTags strips all style and formatting markup from every entry,
// keeping only text and line-break structure.
type RemoveTags struct{}

// NewRemoveTags constructs the tag-stripping transform.
func NewRemoveTags() *RemoveTags { return &RemoveTags{} }

// Descriptor returns the registration metadata.
func (m *RemoveTags) Descriptor() Descriptor {
	return Descriptor{
		Identifier:        "remove_tags",
		Description:       "Remove all style tags",
		Exclusive:         true,
		Order:             10,
		ModifiesWholeFile: true,
	}
}

// Modify re-derives each entry's plain text and assigns it back, which drops
// markup while restoring the line-break marker exactly.
func (m *RemoveTags) Modify(entries []*srt.Entry, _ *Context) []*srt.Entry {
	for _, entry := range entries {
		if entry == nil {
			continue
		}
		entry.SetPlain(entry.Plain())
	}
	return entries
}
