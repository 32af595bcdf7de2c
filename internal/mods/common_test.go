package mods

import (
	"testing"

	"subfix/internal/srt"
)

func applyCommon(t *testing.T, ctx *Context, text string) string {
	t.Helper()
	entry := &srt.Entry{Text: text}
	NewCommonFixes().Modify([]*srt.Entry{entry}, ctx)
	return entry.Text
}

func TestCommonFixes(t *testing.T) {
	ctx := NewContext("fr")
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"unicode hyphens", "foo‑bar", "foo-bar"},
		{"double dash to em dash", "wait-- what", "wait— what"},
		{"leading double dash", "-- what", "— what"},
		{"triple dash collapses", "‑-", "—"},
		{"punctuation only line", "-_-", ""},
		{"ellipsis only line", "...", ""},
		{"leading crocodiles", ">> Hello", "Hello"},
		{"leading colon", ": Hello", "Hello"},
		{"music markers", "# lalala #", "♪ lalala ♪"},
		{"music opening only", "* singing along", "♪ singing along"},
		{"double apostrophe", "He said ''hello''", `He said "hello"`},
		{"quote inside word", `don"t`, "don't"},
		{"smart quote run", "““Well", `"Well`},
		{"smart quotes", "it’s fine", "it's fine"},
		{"leading ellipsis", "...and then", "and then"},
		{"downloaded from ad", "Subs downloaded from example.com", ""},
		{"ellipsis needs space", "Wait...what", "Wait... what"},
		{"spaced ellipsis spacing", "word. . .", "word . . ."},
		{"multiple spaces", "a  b", "a b"},
		{"too many dots", "Wait.....", "Wait..."},
		{"dash space", "-Hello", "- Hello"},
		{"dash already spaced", "- Hello", "- Hello"},
		{"starting spaced dots", ". . word", "word"},
		{"uppercase I in word", "AppIe pie", "Apple pie"},
		{"space in number", "1 000 things", "1000 things"},
		{"countdown untouched", "10 9 8", "10 9 8"},
		{"capital after dot", "this is it. time to go", "this is it. Time to go"},
		{"initial untouched", "A. smith did it", "A. smith did it"},
		{"double interpunction", "So,, yes", "So, yes"},
		{"interpunction run", "Really?!", "Really?"},
		{"space before punctuation", "Hello !", "Hello!"},
		{"space before comma", "Hey , you", "Hey, you"},
		{"spaced ellipsis kept", "wait . . .", "wait . . ."},
		{"missing space after dot", "Hello.Qq", "Hello. Qq"},
		{"real tld left alone", "Hello.World", "Hello.World"},
		{"domain left alone", "Visit opensubtitles.org now", "Visit opensubtitles.org now"},
		{"plain text untouched", "Nothing to fix here.", "Nothing to fix here."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := applyCommon(t, ctx, tt.input)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCommonFixesEnglishLowercaseI(t *testing.T) {
	english := NewContext("en")
	if got := applyCommon(t, english, "well, i think so"); got != "well, I think so" {
		t.Errorf("english context: got %q", got)
	}
	if got := applyCommon(t, english, "i'm here"); got != "I'm here" {
		t.Errorf("english contraction: got %q", got)
	}
	french := NewContext("fr")
	if got := applyCommon(t, french, "well, i think so"); got != "well, i think so" {
		t.Errorf("non-english context: got %q", got)
	}
}

func TestCommonFixesIdempotent(t *testing.T) {
	ctx := NewContext("en")
	inputs := []string{
		"- Hello there!",
		"♪ lalala ♪",
		"Wait... what?",
		`He said "hello" to me.`,
		"This is it. Time to go.",
		"wait . . . not yet",
	}
	for _, input := range inputs {
		once := applyCommon(t, ctx, input)
		twice := applyCommon(t, ctx, once)
		if once != twice {
			t.Errorf("not idempotent on %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestCommonFixesRuleOrderMatters(t *testing.T) {
	// Hyphen normalization before dash collapsing turns a Unicode hyphen
	// pair into an em dash; the swapped order leaves two ASCII hyphens.
	// Rule order is a contract, not an accident.
	ctx := NewContext("fr")
	common := NewCommonFixes()
	hyphens := findRule(t, common, "common_hyphens")
	multidash := findRule(t, common, "common_multidash")

	input := "‑-"
	declared := multidash.Apply(ctx, hyphens.Apply(ctx, input))
	swapped := hyphens.Apply(ctx, multidash.Apply(ctx, input))
	if declared == swapped {
		t.Fatalf("expected order to matter, both orders produced %q", declared)
	}
	if declared != "—" {
		t.Errorf("declared order: got %q, want em dash", declared)
	}
	if swapped != "--" {
		t.Errorf("swapped order: got %q, want double hyphen", swapped)
	}
}

func findRule(t *testing.T, m *TextMod, name string) Rule {
	t.Helper()
	for _, r := range m.Rules {
		if r.Name == name {
			return r
		}
	}
	t.Fatalf("rule %q not found", name)
	return Rule{}
}

func TestCommonFixesCollapsesEmptiedLines(t *testing.T) {
	ctx := NewContext("en")
	entry := &srt.Entry{Text: "Good." + srt.LineBreak + "..."}
	entries := NewCommonFixes().Modify([]*srt.Entry{entry}, ctx)
	if len(entries) != 1 {
		t.Fatalf("entry count changed: %d", len(entries))
	}
	if entry.Text != "Good." {
		t.Errorf("expected emptied line removed, got %q", entry.Text)
	}
}

func TestCommonFixesEmptiedEntryRemainsValid(t *testing.T) {
	ctx := NewContext("en")
	entry := &srt.Entry{Text: "..."}
	entries := NewCommonFixes().Modify([]*srt.Entry{entry}, ctx)
	if len(entries) != 1 || entries[0] == nil {
		t.Fatal("expected entry object to survive")
	}
	if entries[0].Text != "" {
		t.Errorf("expected empty text, got %q", entries[0].Text)
	}
}

func TestCommonFixesDomainOracleFailureMeansNotADomain(t *testing.T) {
	ctx := NewContext("en")
	ctx.ValidHost = nil
	if got := applyCommon(t, ctx, "end.Of sentence"); got != "end. Of sentence" {
		t.Errorf("nil oracle should insert the space, got %q", got)
	}
}
