package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/starford/sitekit/internal/section"
	"github.com/starford/sitekit/internal/site"
)

func hero(in section.Input) g.Node {
	p := propsOf[site.HeroProps](in)
	label := p.ContactLabel
	if label == "" {
		label = "Get in touch"
	}
	return shell(in, site.TypeHero,
		Div(Class("container hero"),
			paragraph("eyebrow", p.Eyebrow),
			H1(Class("hero-headline"), g.Text(p.Headline)),
			paragraph("hero-subheadline", p.Subheadline),
			Div(Class("hero-actions"),
				A(Href(contactHref(in)), Class("btn btn-primary"), Data("action", "contact"), g.Text(label)),
				g.Iff(p.Secondary != nil, func() g.Node {
					return A(Href(p.Secondary.Href), Class("btn btn-ghost"), g.Text(p.Secondary.Label))
				}),
			),
		),
	)
}

func twoColumn(in section.Input) g.Node {
	p := propsOf[site.TwoColumnProps](in)
	text := Div(Class("column column-text"),
		heading(p.Heading),
		paragraph("lead", p.Body),
		g.If(len(p.Bullets) > 0, Ul(Class("bullets"),
			g.Map(p.Bullets, func(b string) g.Node { return Li(g.Text(b)) }),
		)),
	)
	return shell(in, site.TypeTwoColumn,
		Div(Class(classes("container two-column", p.Reverse, "reverse")),
			text,
			g.Iff(p.Image != nil, func() g.Node {
				return Div(Class("column column-media"),
					Img(Src(p.Image.Src), Alt(p.Image.Alt), g.Attr("loading", "lazy")),
				)
			}),
		),
	)
}

func featurePanel(in section.Input) g.Node {
	p := propsOf[site.FeaturePanelProps](in)
	return shell(in, site.TypeFeaturePanel,
		Div(Class("container"),
			heading(p.Heading),
			paragraph("lead", p.Intro),
			Div(Class("feature-grid"),
				g.Map(p.Features, func(f site.Feature) g.Node {
					return Article(Class("feature"),
						g.If(f.Icon != "", Span(Class("icon icon-"+f.Icon), Aria("hidden", "true"))),
						H3(g.Text(f.Title)),
						paragraph("", f.Description),
					)
				}),
			),
		),
	)
}

func faq(in section.Input) g.Node {
	p := propsOf[site.FAQProps](in)
	return shell(in, site.TypeFAQ,
		Div(Class("container narrow"),
			heading(p.Heading),
			g.Map(p.Items, func(item site.FAQItem) g.Node {
				return Details(Class("faq-item"),
					Summary(g.Text(item.Question)),
					P(g.Text(item.Answer)),
				)
			}),
		),
	)
}

func finalCTA(in section.Input) g.Node {
	p := propsOf[site.FinalCTAProps](in)
	label := p.ButtonLabel
	if label == "" {
		label = "Start a conversation"
	}
	return shell(in, site.TypeFinalCTA,
		Div(Class("container final-cta"),
			heading(p.Heading),
			paragraph("lead", p.Body),
			A(Href(contactHref(in)), Class("btn btn-primary btn-lg"), Data("action", "contact"), g.Text(label)),
		),
	)
}

func footer(in section.Input) g.Node {
	p := propsOf[site.FooterProps](in)
	return Footer(
		g.If(in.AnchorID != "", ID(in.AnchorID)),
		Class("section section-footer"),
		Data("section", string(site.TypeFooter)),
		Div(Class("container footer"),
			g.If(len(p.Links) > 0, Nav(Aria("label", "Footer"),
				g.Map(p.Links, func(l site.Link) g.Node { return A(Href(l.Href), g.Text(l.Label)) }),
			)),
			g.If(p.Email != "", A(Href("mailto:"+p.Email), g.Text(p.Email))),
			Small(g.Text(p.Copyright)),
		),
	)
}
