package mods

import (
	"unicode"

	"subfix/internal/srt"
)

// Thresholds for uppercase detection: enough letters to judge, and a near
// total absence of lowercase.
const (
	uppercaseMinLetters = 20
	uppercaseMinRatio   = 0.9
)

// PredominantlyUppercase reports whether the entry sequence reads as
// all-capitals source material. It feeds Context.Uppercase, which gates the
// fix_uppercase transform.
func PredominantlyUppercase(entries []*srt.Entry) bool {
	var upper, lower int
	for _, entry := range entries {
		if entry == nil {
			continue
		}
		for _, r := range entry.Plain() {
			switch {
			case unicode.IsUpper(r):
				upper++
			case unicode.IsLower(r):
				lower++
			}
		}
	}
	total := upper + lower
	if total < uppercaseMinLetters {
		return false
	}
	return float64(upper)/float64(total) >= uppercaseMinRatio
}
