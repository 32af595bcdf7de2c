package mods

import (
	"regexp"
)

// Rule is a single named pattern-match-and-replace operation over one display
// line. Exactly one of Replace, ReplaceFunc, or Fn drives the rewrite:
// Replace is a literal template (supports ${n} group references), ReplaceFunc
// derives the replacement from the submatches, and Fn handles the few rules
// whose guards cannot be expressed in RE2 alone.
type Rule struct {
	Name        string
	Pattern     *regexp.Regexp
	Replace     string
	ReplaceFunc func(ctx *Context, match []string) string
	Fn          func(ctx *Context, line string) string
	// Supported gates the rule on the active context; nil means always
	// applicable.
	Supported func(ctx *Context) bool
}

// Apply runs the rule against one line. A rule that panics on unexpected
// input is skipped for that line: the input is returned unchanged and a
// diagnostic is logged.
func (r Rule) Apply(ctx *Context, line string) (out string) {
	if r.Supported != nil && !r.Supported(ctx) {
		return line
	}
	out = line
	defer func() {
		if rec := recover(); rec != nil {
			ctx.log().Warn("rule failed, skipping",
				"rule", r.Name,
				"input", snippet(line),
				"panic", rec)
			out = line
		}
	}()
	switch {
	case r.Fn != nil:
		out = r.Fn(ctx, line)
	case r.ReplaceFunc != nil:
		out = r.Pattern.ReplaceAllStringFunc(line, func(match string) string {
			groups := r.Pattern.FindStringSubmatch(match)
			if groups == nil {
				return match
			}
			return r.ReplaceFunc(ctx, groups)
		})
	default:
		out = r.Pattern.ReplaceAllString(line, r.Replace)
	}
	return out
}

func snippet(line string) string {
	const max = 80
	if len(line) <= max {
		return line
	}
	return line[:max] + "..."
}
