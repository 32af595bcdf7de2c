// Package logging builds the slog loggers used across subfix.
//
// Two formats are supported: a compact single-line console format for
// interactive use and JSON for machine consumption. The "component"
// attribute is hoisted into the console message prefix.
package logging
