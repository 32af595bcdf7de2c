package mods

import (
	"fmt"
	"sort"

	"subfix/internal/srt"
)

// Registry holds the known modifications. It is constructed explicitly,
// populated once, and never mutated afterwards; callers pass it into the
// pipeline runner instead of relying on process-global state.
type Registry struct {
	mods map[string]Modification
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{mods: make(map[string]Modification)}
}

// Register adds a modification, rejecting duplicate identifiers.
func (r *Registry) Register(m Modification) error {
	id := m.Descriptor().Identifier
	if id == "" {
		return fmt.Errorf("register modification: empty identifier")
	}
	if _, exists := r.mods[id]; exists {
		return fmt.Errorf("register modification: duplicate identifier %q", id)
	}
	r.mods[id] = m
	return nil
}

// Get looks up a modification by identifier.
func (r *Registry) Get(id string) (Modification, bool) {
	m, ok := r.mods[id]
	return m, ok
}

// Identifiers returns every registered identifier in sorted order.
func (r *Registry) Identifiers() []string {
	ids := make([]string, 0, len(r.mods))
	for id := range r.mods {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Select resolves identifiers to an ordered modification list for the given
// context. Unknown identifiers are skipped (never fatal), exclusive
// modifications collapse to one application, language-restricted and
// uppercase-gated modifications that do not apply are dropped, and the result
// is sorted by apply-last flag, then declared order, then identifier.
func (r *Registry) Select(ids []string, ctx *Context) []Modification {
	seen := make(map[string]struct{}, len(ids))
	selected := make([]Modification, 0, len(ids))
	for _, id := range ids {
		m, ok := r.mods[id]
		if !ok {
			ctx.log().Debug("unknown modification requested", "identifier", id)
			continue
		}
		desc := m.Descriptor()
		if desc.Exclusive {
			if _, dup := seen[id]; dup {
				continue
			}
		}
		seen[id] = struct{}{}
		if !desc.AppliesTo(ctx.Language) {
			ctx.log().Debug("modification not applicable to language",
				"identifier", id, "language", ctx.Language)
			continue
		}
		if desc.OnlyUppercase && !ctx.Uppercase {
			ctx.log().Debug("modification gated on uppercase input", "identifier", id)
			continue
		}
		selected = append(selected, m)
	}
	sort.SliceStable(selected, func(i, j int) bool {
		a, b := selected[i].Descriptor(), selected[j].Descriptor()
		if a.ApplyLast != b.ApplyLast {
			return !a.ApplyLast
		}
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		return a.Identifier < b.Identifier
	})
	return selected
}

// Apply selects the requested modifications and runs them in order over the
// entry sequence, returning the resulting sequence. A transform that panics
// leaves the sequence as it stood before that transform and is reported
// through the context logger.
func (r *Registry) Apply(entries []*srt.Entry, ids []string, ctx *Context) []*srt.Entry {
	for _, m := range r.Select(ids, ctx) {
		entries = runModification(m, entries, ctx)
	}
	return entries
}

func runModification(m Modification, entries []*srt.Entry, ctx *Context) (out []*srt.Entry) {
	out = entries
	defer func() {
		if rec := recover(); rec != nil {
			ctx.log().Warn("modification failed, sequence left unchanged",
				"identifier", m.Descriptor().Identifier,
				"panic", rec)
			out = entries
		}
	}()
	result := m.Modify(entries, ctx)
	if result != nil {
		out = result
	}
	return out
}

// Default returns a registry populated with the standard modifications.
func Default() *Registry {
	r := NewRegistry()
	for _, m := range []Modification{
		NewRemoveTags(),
		NewFixIncremental(),
		NewFixShort(),
		NewCommonFixes(),
		NewFixUppercase(),
		NewReverseRTL(),
	} {
		if err := r.Register(m); err != nil {
			panic(err)
		}
	}
	return r
}
