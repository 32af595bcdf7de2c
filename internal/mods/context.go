package mods

import (
	"log/slog"

	"subfix/internal/domains"
	"subfix/internal/language"
)

// Context carries the per-subtitle state rules and transforms consult:
// the resolved language, whether the source is predominantly uppercase,
// the diagnostics logger, and the domain-validity oracle.
type Context struct {
	// Language is the subtitle language as an ISO 639-2 code; "und" means
	// unknown and lifts every language restriction.
	Language string
	// Uppercase reports whether the source text is predominantly uppercase.
	Uppercase bool
	// Logger receives rule and transform diagnostics.
	Logger *slog.Logger
	// ValidHost reports whether a token is a real host name so spacing rules
	// leave URLs alone. A nil oracle treats everything as "not a domain".
	ValidHost func(string) bool
}

// NewContext builds a context for the given language identifier with the
// default domain oracle and a discarding logger.
func NewContext(lang string) *Context {
	return &Context{
		Language:  language.Resolve(lang),
		Logger:    slog.New(slog.DiscardHandler),
		ValidHost: domains.ValidHost,
	}
}

func (c *Context) log() *slog.Logger {
	if c == nil || c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}

func (c *Context) validHost(candidate string) bool {
	if c == nil || c.ValidHost == nil {
		return false
	}
	return c.ValidHost(candidate)
}
