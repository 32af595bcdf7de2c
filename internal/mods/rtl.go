package mods

import (
	"regexp"

	"subfix/internal/language"
)

// NewReverseRTL relocates the leading punctuation/whitespace envelope
// of each line to the opposite end for right-to-left languages. Some playback
// devices do not apply bidirectional reordering to punctuation; swapping the
// envelope compensates. The core text content keeps its internal order.
func NewReverseRTL() *TextMod {
	return &TextMod{
		Desc: Descriptor{
			Identifier:  "reverse_rtl",
			Description: "Reverse punctuation in RTL languages",
			Exclusive:   true,
			Order:       50,
			Languages:   language.RTLCodes(),
		},
		Rules: []Rule{
			{
				Name:    "rtl_reverse",
				Pattern: regexp.MustCompile(`^([\s.!?:,'-]*)(.+?)(\s*)(-?\s*)$`),
				Replace: "${4}${3}${2}${1}",
			},
		},
	}
}
