package mods

import (
	"testing"

	"subfix/internal/srt"
)

func applyRTL(t *testing.T, text string) string {
	t.Helper()
	entry := &srt.Entry{Text: text}
	NewReverseRTL().Modify([]*srt.Entry{entry}, NewContext("he"))
	return entry.Text
}

func TestReverseRTLMovesLeadingPunctuation(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"leading dot", ".שלום", "שלום."},
		{"leading question", "?מה קורה", "מה קורה?"},
		{"dialogue dash", "- שלום", "שלום- "},
		{"no punctuation", "שלום", "שלום"},
		{"arabic comma", ",مرحبا", "مرحبا,"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := applyRTL(t, tt.input); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReverseRTLDoubleApplicationRoundTrips(t *testing.T) {
	// With a single leading or trailing group the reversal is its own
	// inverse.
	inputs := []string{"- שלום", "שלום", "מה קורה "}
	for _, input := range inputs {
		once := applyRTL(t, input)
		twice := applyRTL(t, once)
		if twice != input {
			t.Errorf("double reversal of %q: got %q via %q", input, twice, once)
		}
	}
}

func TestReverseRTLPreservesCoreOrder(t *testing.T) {
	got := applyRTL(t, ".מילה אחת מילה שתיים")
	if got != "מילה אחת מילה שתיים." {
		t.Errorf("internal content order must be untouched, got %q", got)
	}
}

func TestReverseRTLLanguageRestriction(t *testing.T) {
	desc := NewReverseRTL().Descriptor()
	for _, lang := range []string{"heb", "ara", "fas"} {
		if !desc.AppliesTo(lang) {
			t.Errorf("expected %s to be eligible", lang)
		}
	}
	if desc.AppliesTo("eng") {
		t.Error("expected eng to be ineligible")
	}
	if desc.AppliesTo("und") {
		t.Error("restricted modification must not apply to unresolved language")
	}
}
