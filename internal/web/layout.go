package web

import (
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"

	"github.com/starford/sitekit/internal/components"
	"github.com/starford/sitekit/internal/site"
)

// pageTop is the header anchor. It does not depend on section anchors.
const pageTop = "page-top"

type pageData struct {
	Slug        string
	Meta        site.Metadata
	Sections    g.Group
	ContactPath string
	LiveReload  string
}

func layout(p pageData) g.Node {
	return c.HTML5(c.HTML5Props{
		Title:       p.Meta.Title(),
		Description: p.Meta.Description(),
		Language:    "en",
		Head: []g.Node{
			h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
			h.Link(h.Rel("stylesheet"), h.Href("/static/site.css")),
			h.Script(h.Src("/static/site.js"), h.Defer()),
		},
		Body: []g.Node{
			h.Data("site", p.Slug),
			g.If(p.LiveReload != "", h.Data("live-reload", p.LiveReload)),
			h.Header(h.ID(pageTop), h.Class("site-header"),
				h.Div(h.Class("container"),
					h.A(h.Href("#"+pageTop), h.Class("brand"), g.Text(p.Meta.Name)),
					g.If(p.Meta.Tagline != "", h.Span(h.Class("tagline"), g.Text(p.Meta.Tagline))),
				),
			),
			h.Main(p.Sections),
			components.ContactDialog(p.ContactPath, p.Slug),
		},
	})
}

func notFoundPage() g.Node {
	return c.HTML5(c.HTML5Props{
		Title:    "Page not found",
		Language: "en",
		Head: []g.Node{
			h.Link(h.Rel("stylesheet"), h.Href("/static/site.css")),
		},
		Body: []g.Node{
			h.Main(h.Class("container not-found"),
				h.H1(g.Text("Page not found")),
				h.P(g.Text("The page you were looking for does not exist.")),
				h.A(h.Href("/"), h.Class("btn btn-primary"), g.Text("Back to the home page")),
			),
		},
	})
}
