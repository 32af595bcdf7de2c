// Package srt parses and renders SubRip subtitle files as ordered entry
// sequences.
//
// Entries keep their raw text with the \N line-break marker so modifications
// can reason about display lines without caring about the on-disk newline
// convention. The package is lenient on malformed cues: unparseable blocks are
// skipped and reported, never fatal.
package srt
