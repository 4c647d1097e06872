// Package section resolves site document entries to components and renders
// them in document order.
package section

import (
	"sort"

	g "maragu.dev/gomponents"

	"github.com/starford/sitekit/internal/site"
)

// Actions are the cross-cutting callbacks handed to the components that
// consume them regardless of their own properties.
type Actions struct {
	// ContactHref is the target that opens the contact form.
	ContactHref string
}

// Input is everything a component receives for one entry.
type Input struct {
	AnchorID string
	Variant  string
	Props    site.Props
	// Actions is nil unless the component's registration asks for it.
	Actions *Actions
}

// Component renders one section.
type Component interface {
	Render(in Input) g.Node
}

// ComponentFunc adapts a function to Component.
type ComponentFunc func(in Input) g.Node

// Render calls f.
func (f ComponentFunc) Render(in Input) g.Node { return f(in) }

// Registration binds a section type to its component.
type Registration struct {
	Type      site.SectionType
	Component Component
	// UsesActions marks components that receive the shared Actions.
	UsesActions bool
}

// Registry maps section types to components. It is built once and
// read-only afterwards, so concurrent lookups need no locking.
type Registry struct {
	entries map[site.SectionType]Registration
}

// NewRegistry builds a registry. A later registration for the same type
// replaces an earlier one.
func NewRegistry(regs ...Registration) *Registry {
	r := &Registry{entries: make(map[site.SectionType]Registration, len(regs))}
	for _, reg := range regs {
		r.entries[reg.Type] = reg
	}
	return r
}

// Lookup returns the component for t.
func (r *Registry) Lookup(t site.SectionType) (Component, bool) {
	reg, ok := r.entries[t]
	return reg.Component, ok
}

func (r *Registry) registration(t site.SectionType) (Registration, bool) {
	reg, ok := r.entries[t]
	return reg, ok
}

// Keys returns the registered types in lexical order.
func (r *Registry) Keys() []site.SectionType {
	out := make([]site.SectionType, 0, len(r.entries))
	for k := range r.entries {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
