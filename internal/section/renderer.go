package section

import (
	"fmt"
	"log/slog"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/starford/sitekit/internal/site"
)

// Mode selects how misconfiguration is surfaced.
type Mode int

const (
	// ModeDevelopment renders a visible placeholder for unknown types.
	ModeDevelopment Mode = iota
	// ModeProduction silently omits unknown types.
	ModeProduction
)

// ParseMode maps a config value to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "development", "dev", "":
		return ModeDevelopment, nil
	case "production", "prod":
		return ModeProduction, nil
	}
	return ModeDevelopment, fmt.Errorf("section: unknown mode %q", s)
}

func (m Mode) String() string {
	if m == ModeProduction {
		return "production"
	}
	return "development"
}

// Rendered is one live section in page order.
type Rendered struct {
	Type     site.SectionType
	AnchorID string
	// Diagnostic is set for the development placeholder of an unknown type.
	Diagnostic bool
	Node       g.Node
}

// Renderer turns document entries into rendered sections.
type Renderer struct {
	registry *Registry
	mode     Mode
	logger   *slog.Logger
}

// NewRenderer creates a renderer over registry.
func NewRenderer(registry *Registry, mode Mode, logger *slog.Logger) *Renderer {
	return &Renderer{registry: registry, mode: mode, logger: logger}
}

// Mode returns the renderer mode.
func (r *Renderer) Mode() Mode { return r.mode }

// Render walks entries in order. Disabled entries produce nothing. Unknown
// types produce a diagnostic placeholder in development and nothing in
// production. entries is not modified.
func (r *Renderer) Render(entries []site.Entry, actions Actions) []Rendered {
	out := make([]Rendered, 0, len(entries))
	for i, e := range entries {
		if !e.Enabled {
			continue
		}
		reg, ok := r.registry.registration(e.Type)
		if !ok {
			r.logger.Warn("section: unregistered type",
				slog.String("type", string(e.Type)),
				slog.Int("index", i),
				slog.String("mode", r.mode.String()))
			if r.mode == ModeDevelopment {
				out = append(out, Rendered{
					Type:       e.Type,
					AnchorID:   e.AnchorID,
					Diagnostic: true,
					Node:       placeholder(e, i),
				})
			}
			continue
		}
		in := Input{AnchorID: e.AnchorID, Variant: e.Variant, Props: e.Props}
		if reg.UsesActions {
			a := actions
			in.Actions = &a
		}
		out = append(out, Rendered{
			Type:     e.Type,
			AnchorID: e.AnchorID,
			Node:     reg.Component.Render(in),
		})
	}
	return out
}

// Nodes collects the rendered nodes for embedding in a page.
func Nodes(rs []Rendered) g.Group {
	out := make(g.Group, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.Node)
	}
	return out
}

func placeholder(e site.Entry, index int) g.Node {
	return h.Div(
		h.Class("section-diagnostic"),
		h.Role("alert"),
		h.Data("section-type", string(e.Type)),
		g.If(e.AnchorID != "", h.ID(e.AnchorID)),
		h.Strong(g.Text("Unknown section type ")),
		h.Code(g.Text(string(e.Type))),
		g.Textf(" at position %d. Register a component for it or disable the entry.", index),
	)
}

// Lint reports enabled entries whose type has no registered component.
func Lint(doc *site.Document, registry *Registry) []string {
	var issues []string
	for i, e := range doc.Sections {
		if !e.Enabled {
			continue
		}
		if _, ok := registry.Lookup(e.Type); !ok {
			issues = append(issues, fmt.Sprintf("sections[%d]: no component registered for type %q", i, e.Type))
		}
	}
	return issues
}
