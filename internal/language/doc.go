// Package language provides unified language code normalization and mapping.
//
// All language-related conversions (ISO 639-1, ISO 639-2, BCP-47 tags,
// display names, right-to-left detection) are consolidated here so the
// modification pipeline and CLI share one resolution path.
package language
