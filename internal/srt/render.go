package srt

import (
	"fmt"
	"strings"
	"time"
)

// Render serializes an entry sequence back to SubRip format. Cues are
// renumbered sequentially; empty entries are kept so timing structure
// survives round trips.
func Render(entries []*Entry) []byte {
	var b strings.Builder
	for i, entry := range entries {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d\n", i+1)
		b.WriteString(formatTimestamp(entry.Start))
		b.WriteString(" --> ")
		b.WriteString(formatTimestamp(entry.End))
		b.WriteString("\n")
		for _, line := range entry.Lines() {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return []byte(b.String())
}

func formatTimestamp(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	d -= minutes * time.Minute
	seconds := d / time.Second
	d -= seconds * time.Second
	millis := d / time.Millisecond
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, millis)
}
