package mods

import (
	"testing"
	"time"

	"subfix/internal/srt"
)

func makeEntries(texts ...string) []*srt.Entry {
	entries := make([]*srt.Entry, len(texts))
	for i, text := range texts {
		start := time.Duration(i) * time.Second
		entries[i] = &srt.Entry{
			Index: i + 1,
			Start: start,
			End:   start + time.Second,
			Text:  text,
		}
	}
	return entries
}

func TestFixIncrementalDropsRepeatedLines(t *testing.T) {
	entries := makeEntries(
		"Hello",
		"Hello"+srt.LineBreak+"there",
		"there"+srt.LineBreak+"friend",
	)
	out := NewFixIncremental().Modify(entries, NewContext("en"))
	if len(out) != 3 {
		t.Fatalf("entry count changed: %d", len(out))
	}
	want := []string{"Hello", "there", "friend"}
	for i, w := range want {
		if out[i].Text != w {
			t.Errorf("entry %d: got %q, want %q", i, out[i].Text, w)
		}
	}
}

func TestFixIncrementalFirstEntryUnmodified(t *testing.T) {
	entries := makeEntries("Hello" + srt.LineBreak + "Hello")
	out := NewFixIncremental().Modify(entries, NewContext("en"))
	if out[0].Text != "Hello"+srt.LineBreak+"Hello" {
		t.Errorf("first entry must pass through, got %q", out[0].Text)
	}
}

func TestFixIncrementalCaseInsensitive(t *testing.T) {
	entries := makeEntries("HELLO THERE", "hello there")
	out := NewFixIncremental().Modify(entries, NewContext("en"))
	if out[1].Text != "" {
		t.Errorf("expected duplicate dropped case-insensitively, got %q", out[1].Text)
	}
}

func TestFixIncrementalRetainsEmptiedEntries(t *testing.T) {
	entries := makeEntries("Same text", "Same text", "New text")
	out := NewFixIncremental().Modify(entries, NewContext("en"))
	if len(out) != 3 {
		t.Fatalf("emptied entry must not be removed, got %d entries", len(out))
	}
	if out[1] == nil || out[1].Text != "" {
		t.Fatalf("expected valid empty entry, got %+v", out[1])
	}
	if out[1].Start != time.Second {
		t.Errorf("timing must survive: %v", out[1].Start)
	}
}

func TestFixIncrementalEmptyPreviousKeepsLines(t *testing.T) {
	entries := makeEntries("Same", "Same", "Same")
	out := NewFixIncremental().Modify(entries, NewContext("en"))
	// Entry 2 empties against entry 1; entry 3 is then compared against the
	// post-filter empty text and keeps its line.
	if out[1].Text != "" {
		t.Errorf("entry 2: got %q, want empty", out[1].Text)
	}
	if out[2].Text != "Same" {
		t.Errorf("entry 3: got %q, want %q", out[2].Text, "Same")
	}
}

func TestFixIncrementalSuffixMatchesWholePreviousText(t *testing.T) {
	// The check runs against the previous entry's entire text, not just its
	// last line.
	entries := makeEntries(
		"First line"+srt.LineBreak+"second line",
		"second line"+srt.LineBreak+"and more",
	)
	out := NewFixIncremental().Modify(entries, NewContext("en"))
	if out[1].Text != "and more" {
		t.Errorf("got %q, want %q", out[1].Text, "and more")
	}
}
