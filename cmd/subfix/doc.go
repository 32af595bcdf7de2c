// Command subfix cleans up SRT subtitle files: it strips markup, repairs
// OCR and spacing artifacts, merges flash frames, deduplicates incremental
// captions, and normalizes capitalization.
package main
