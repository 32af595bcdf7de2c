// Package mods implements subtitle modifications: ordered rule sets that fix
// punctuation, whitespace, and casing per display line, and whole-file
// transforms that restructure the entry sequence (incremental-caption
// deduplication, short-entry merging, all-uppercase repair).
//
// Modifications are registered in an explicit Registry and selected by
// identifier. Application is deterministic: the same entry sequence, language
// context, and selection always produce the same output. No modification is
// fatal; a rule that fails on unexpected input is skipped for that line and
// reported through the context logger.
package mods
