// Package components holds the HTML components for every section type and
// the registry that binds them.
package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/starford/sitekit/internal/feed"
	"github.com/starford/sitekit/internal/section"
	"github.com/starford/sitekit/internal/sequencer"
	"github.com/starford/sitekit/internal/site"
)

// EpisodeSource supplies podcast episodes.
type EpisodeSource interface {
	Episodes(limit int) []feed.Episode
}

// Deps are the collaborators some components read from.
type Deps struct {
	Episodes EpisodeSource
	Scripts  *sequencer.Library
	// StreamPath returns the frame stream URL for a demo script.
	StreamPath func(script string) string
	// SubscribePath is the newsletter form action.
	SubscribePath string
}

// Registry returns the section registry with every built-in component.
func Registry(d Deps) *section.Registry {
	if d.StreamPath == nil {
		d.StreamPath = func(script string) string { return "/demos/" + script + "/stream" }
	}
	if d.SubscribePath == "" {
		d.SubscribePath = "/api/subscribe"
	}
	return section.NewRegistry(
		section.Registration{Type: site.TypeHero, Component: section.ComponentFunc(hero), UsesActions: true},
		section.Registration{Type: site.TypeTwoColumn, Component: section.ComponentFunc(twoColumn)},
		section.Registration{Type: site.TypeFeaturePanel, Component: section.ComponentFunc(featurePanel)},
		section.Registration{Type: site.TypeFAQ, Component: section.ComponentFunc(faq)},
		section.Registration{Type: site.TypeFinalCTA, Component: section.ComponentFunc(finalCTA), UsesActions: true},
		section.Registration{Type: site.TypeNewsletter, Component: newsletterForm{action: d.SubscribePath}},
		section.Registration{Type: site.TypePodcast, Component: podcast{source: d.Episodes}},
		section.Registration{Type: site.TypeDemo, Component: demo{scripts: d.Scripts, stream: d.StreamPath}},
		section.Registration{Type: site.TypeFooter, Component: section.ComponentFunc(footer)},
	)
}

// propsOf returns the typed props of in, or the zero record when the entry
// carries none.
func propsOf[T site.Props](in section.Input) T {
	p, _ := in.Props.(T)
	return p
}

// shell wraps a section body with the attributes every section shares.
func shell(in section.Input, kind site.SectionType, children ...g.Node) g.Node {
	return Section(
		g.If(in.AnchorID != "", ID(in.AnchorID)),
		Class("section section-"+string(kind)),
		Data("section", string(kind)),
		g.If(in.Variant != "", Data("variant", in.Variant)),
		g.Group(children),
	)
}

func contactHref(in section.Input) string {
	if in.Actions == nil || in.Actions.ContactHref == "" {
		return "#contact"
	}
	return in.Actions.ContactHref
}

func heading(text string) g.Node {
	return g.If(text != "", H2(Class("section-heading"), g.Text(text)))
}

func paragraph(class, text string) g.Node {
	return g.If(text != "", P(g.If(class != "", Class(class)), g.Text(text)))
}

func classes(base string, cond bool, extra string) string {
	if cond {
		return base + " " + extra
	}
	return base
}
