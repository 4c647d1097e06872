package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/starford/sitekit/internal/feed"
	"github.com/starford/sitekit/internal/section"
	"github.com/starford/sitekit/internal/sequencer"
	"github.com/starford/sitekit/internal/site"
)

const defaultEpisodeLimit = 3

type newsletterForm struct {
	action string
}

// Render implements section.Component.
func (c newsletterForm) Render(in section.Input) g.Node {
	p := propsOf[site.NewsletterProps](in)
	placeholder := p.Placeholder
	if placeholder == "" {
		placeholder = "you@company.com"
	}
	button := p.ButtonLabel
	if button == "" {
		button = "Subscribe"
	}
	return shell(in, site.TypeNewsletter,
		Div(Class("container narrow newsletter"),
			heading(p.Heading),
			paragraph("lead", p.Body),
			Form(Method("post"), Action(c.action), Class("newsletter-form"), Data("newsletter-form", ""), g.Attr("novalidate"),
				Label(For("newsletter-email"), Class("visually-hidden"), g.Text("Email address")),
				Input(ID("newsletter-email"), Type("email"), Name("email"), Placeholder(placeholder), AutoComplete("email"), Required()),
				Button(Type("submit"), Class("btn btn-primary"), g.Text(button)),
				P(Class("form-message"), Role("status"), Aria("live", "polite")),
			),
		),
	)
}

type podcast struct {
	source EpisodeSource
}

// Render implements section.Component.
func (c podcast) Render(in section.Input) g.Node {
	p := propsOf[site.PodcastProps](in)
	limit := p.Limit
	if limit == 0 {
		limit = defaultEpisodeLimit
	}
	var eps []feed.Episode
	if c.source != nil {
		eps = c.source.Episodes(limit)
	} else {
		eps = feed.Placeholder()
		if len(eps) > limit {
			eps = eps[:limit]
		}
	}
	return shell(in, site.TypePodcast,
		Div(Class("container"),
			heading(p.Heading),
			paragraph("lead", p.Intro),
			Ul(Class("episode-list"),
				g.Map(eps, func(ep feed.Episode) g.Node {
					return Li(Class("episode"), Data("episode-id", ep.ID),
						A(Href(ep.URL), Target("_blank"), Rel("noopener"),
							g.If(ep.Thumbnail != "", Img(Src(ep.Thumbnail), Alt(""), g.Attr("loading", "lazy"))),
							H3(g.Text(ep.Title)),
						),
						g.Iff(!ep.Published.IsZero(), func() g.Node {
							return g.El("time", g.Attr("datetime", ep.Published.Format("2006-01-02")), g.Text(ep.Published.Format("2 Jan 2006")))
						}),
						paragraph("", ep.Description),
					)
				}),
			),
			g.If(p.ChannelURL != "", A(Href(p.ChannelURL), Class("btn btn-ghost"), Target("_blank"), Rel("noopener"), g.Text("All episodes"))),
		),
	)
}

type demo struct {
	scripts *sequencer.Library
	stream  func(script string) string
}

// Render implements section.Component. The widget starts in the waiting
// state; the page script opens the stream once the element scrolls into
// view.
func (c demo) Render(in section.Input) g.Node {
	p := propsOf[site.DemoProps](in)
	title := p.Script
	available := true
	if c.scripts != nil {
		s, ok := c.scripts.Lookup(p.Script)
		available = ok
		if ok && s.Title != "" {
			title = s.Title
		}
	}
	return shell(in, site.TypeDemo,
		Div(Class("container"),
			heading(p.Heading),
			Figure(Class("demo"),
				Data("demo-script", p.Script),
				g.If(available, Data("demo-stream", c.stream(p.Script))),
				Data("demo-state", "waiting"),
				Aria("label", title),
				Div(Class("demo-window"),
					Div(Class("demo-prompt"), Data("demo-target", string(sequencer.TargetPrompt))),
					Pre(Class("demo-terminal"), Data("demo-target", string(sequencer.TargetTerminal))),
					Div(Class("demo-result"), Data("demo-target", string(sequencer.TargetResult))),
				),
				g.If(p.Caption != "", FigCaption(g.Text(p.Caption))),
			),
		),
	)
}
