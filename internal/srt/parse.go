package srt

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Parse reads SubRip content into an ordered entry sequence. Blocks without a
// parseable timing line are skipped; Parse only fails when no cue at all can
// be recovered from non-empty input.
func Parse(data []byte) ([]*Entry, error) {
	content := strings.ReplaceAll(string(data), "\r\n", "\n")
	content = strings.TrimPrefix(content, "\ufeff")
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, nil
	}

	blocks := strings.Split(trimmed, "\n\n")
	entries := make([]*Entry, 0, len(blocks))
	for _, block := range blocks {
		entry, ok := parseBlock(block)
		if !ok {
			continue
		}
		entry.Index = len(entries) + 1
		entries = append(entries, entry)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("parse srt: no valid cues found")
	}
	return entries, nil
}

func parseBlock(block string) (*Entry, bool) {
	lines := strings.Split(strings.TrimSpace(block), "\n")
	start := 0
	if start < len(lines) && isNumeric(lines[start]) {
		start++
	}
	if start >= len(lines) || !strings.Contains(lines[start], "-->") {
		return nil, false
	}
	startTime, endTime, err := parseTimingLine(lines[start])
	if err != nil {
		return nil, false
	}
	start++

	text := make([]string, 0, len(lines)-start)
	for _, line := range lines[start:] {
		text = append(text, strings.TrimRight(line, " \t"))
	}
	entry := &Entry{Start: startTime, End: endTime}
	entry.SetLines(text)
	return entry, true
}

func parseTimingLine(line string) (time.Duration, time.Duration, error) {
	parts := strings.Split(line, "-->")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid timing line %q", line)
	}
	start, err := parseTimestamp(parts[0])
	if err != nil {
		return 0, 0, err
	}
	end, err := parseTimestamp(parts[1])
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

func parseTimestamp(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty timestamp")
	}
	// SRT uses a comma for milliseconds; tolerate a period.
	value = strings.ReplaceAll(value, ".", ",")
	timeParts := strings.Split(value, ",")
	if len(timeParts) != 2 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hms := strings.Split(timeParts[0], ":")
	if len(hms) != 3 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hours, errH := strconv.Atoi(hms[0])
	minutes, errM := strconv.Atoi(hms[1])
	seconds, errS := strconv.Atoi(hms[2])
	millis, errMS := strconv.Atoi(timeParts[1])
	if errH != nil || errM != nil || errS != nil || errMS != nil {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	total := time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second +
		time.Duration(millis)*time.Millisecond
	return total, nil
}

func isNumeric(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}
	_, err := strconv.Atoi(value)
	return err == nil
}
