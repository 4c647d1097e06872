package section

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/starford/sitekit/internal/site"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stub renders <div data-type=...> and records whether actions arrived.
func stub(t site.SectionType, seen map[site.SectionType]*Actions) Component {
	return ComponentFunc(func(in Input) g.Node {
		if seen != nil {
			seen[t] = in.Actions
		}
		return h.Div(h.Data("type", string(t)), g.If(in.AnchorID != "", h.ID(in.AnchorID)))
	})
}

func testRegistry(seen map[site.SectionType]*Actions) *Registry {
	return NewRegistry(
		Registration{Type: site.TypeHero, Component: stub(site.TypeHero, seen), UsesActions: true},
		Registration{Type: site.TypeFAQ, Component: stub(site.TypeFAQ, seen)},
		Registration{Type: site.TypeFinalCTA, Component: stub(site.TypeFinalCTA, seen), UsesActions: true},
		Registration{Type: site.TypeFooter, Component: stub(site.TypeFooter, seen)},
	)
}

func types(rs []Rendered) []site.SectionType {
	out := make([]site.SectionType, len(rs))
	for i, r := range rs {
		out[i] = r.Type
	}
	return out
}

func renderString(t *testing.T, rs []Rendered) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Nodes(rs).Render(&buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func TestRender_SkipsDisabledKeepsOrder(t *testing.T) {
	r := NewRenderer(testRegistry(nil), ModeProduction, discardLogger())
	entries := []site.Entry{
		{Type: site.TypeHero, Enabled: true},
		{Type: site.TypeFAQ, Enabled: false},
		{Type: site.TypeFooter, Enabled: true},
	}

	got := r.Render(entries, Actions{})
	want := []site.SectionType{site.TypeHero, site.TypeFooter}
	if diff := cmp.Diff(want, types(got)); diff != "" {
		t.Errorf("type sequence mismatch (-want +got):\n%s", diff)
	}
	if strings.Contains(renderString(t, got), `data-type="faq"`) {
		t.Error("disabled entry produced output")
	}
}

func TestRender_OneElementPerEnabledEntry(t *testing.T) {
	r := NewRenderer(testRegistry(nil), ModeDevelopment, discardLogger())
	entries := []site.Entry{
		{Type: site.TypeFooter, Enabled: true},
		{Type: site.TypeHero, Enabled: true},
		{Type: site.TypeFAQ, Enabled: true},
		{Type: site.TypeHero, Enabled: false},
		{Type: site.TypeFinalCTA, Enabled: true},
	}
	got := r.Render(entries, Actions{})
	want := []site.SectionType{site.TypeFooter, site.TypeHero, site.TypeFAQ, site.TypeFinalCTA}
	if diff := cmp.Diff(want, types(got)); diff != "" {
		t.Errorf("type sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_UnknownTypeDevelopmentShowsDiagnostic(t *testing.T) {
	r := NewRenderer(testRegistry(nil), ModeDevelopment, discardLogger())
	entries := []site.Entry{
		{Type: site.TypeHero, Enabled: true},
		{Type: "carousel", Enabled: true, Props: site.RawProps{Kind: "carousel"}},
		{Type: site.TypeFooter, Enabled: true},
	}

	got := r.Render(entries, Actions{})
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if !got[1].Diagnostic || got[1].Type != "carousel" {
		t.Errorf("placeholder = %+v", got[1])
	}
	html := renderString(t, got)
	if !strings.Contains(html, "carousel") || !strings.Contains(html, "section-diagnostic") {
		t.Errorf("diagnostic missing type key: %s", html)
	}
}

func TestRender_UnknownTypeProductionOmits(t *testing.T) {
	r := NewRenderer(testRegistry(nil), ModeProduction, discardLogger())
	entries := []site.Entry{
		{Type: site.TypeHero, Enabled: true},
		{Type: "carousel", Enabled: true},
		{Type: site.TypeFooter, Enabled: true},
	}

	got := r.Render(entries, Actions{})
	want := []site.SectionType{site.TypeHero, site.TypeFooter}
	if diff := cmp.Diff(want, types(got)); diff != "" {
		t.Errorf("type sequence mismatch (-want +got):\n%s", diff)
	}
	if strings.Contains(renderString(t, got), "carousel") {
		t.Error("production output leaked unknown type")
	}
}

func TestRender_ActionsOnlyForConsumers(t *testing.T) {
	seen := make(map[site.SectionType]*Actions)
	r := NewRenderer(testRegistry(seen), ModeProduction, discardLogger())
	entries := []site.Entry{
		{Type: site.TypeHero, Enabled: true},
		{Type: site.TypeFAQ, Enabled: true},
		{Type: site.TypeFinalCTA, Enabled: true},
		{Type: site.TypeFooter, Enabled: true},
	}

	r.Render(entries, Actions{ContactHref: "#contact-form"})

	for _, typ := range []site.SectionType{site.TypeHero, site.TypeFinalCTA} {
		if seen[typ] == nil || seen[typ].ContactHref != "#contact-form" {
			t.Errorf("%s did not receive actions: %+v", typ, seen[typ])
		}
	}
	for _, typ := range []site.SectionType{site.TypeFAQ, site.TypeFooter} {
		if seen[typ] != nil {
			t.Errorf("%s should not receive actions", typ)
		}
	}
}

func TestRender_AnchorPassedThrough(t *testing.T) {
	r := NewRenderer(testRegistry(nil), ModeProduction, discardLogger())
	got := r.Render([]site.Entry{{Type: site.TypeFooter, Enabled: true, AnchorID: "end"}}, Actions{})
	if got[0].AnchorID != "end" {
		t.Errorf("anchor = %q", got[0].AnchorID)
	}
	if !strings.Contains(renderString(t, got), `id="end"`) {
		t.Error("anchor not passed to component")
	}
}

func TestRender_IdempotentAndNonMutating(t *testing.T) {
	r := NewRenderer(testRegistry(nil), ModeDevelopment, discardLogger())
	entries := []site.Entry{
		{Type: site.TypeHero, Enabled: true, AnchorID: "top", Props: site.HeroProps{Headline: "Hi"}},
		{Type: "mystery", Enabled: true},
		{Type: site.TypeFAQ, Enabled: false},
		{Type: site.TypeFooter, Enabled: true, Props: site.FooterProps{Copyright: "c"}},
	}
	before := make([]site.Entry, len(entries))
	copy(before, entries)

	first := r.Render(entries, Actions{ContactHref: "#c"})
	second := r.Render(entries, Actions{ContactHref: "#c"})

	if diff := cmp.Diff(types(first), types(second)); diff != "" {
		t.Errorf("renders differ (-first +second):\n%s", diff)
	}
	if renderString(t, first) != renderString(t, second) {
		t.Error("rendered html differs between runs")
	}
	if diff := cmp.Diff(before, entries); diff != "" {
		t.Errorf("input mutated (-before +after):\n%s", diff)
	}
}

func TestLint(t *testing.T) {
	doc := &site.Document{Sections: []site.Entry{
		{Type: site.TypeHero, Enabled: true},
		{Type: "carousel", Enabled: true},
		{Type: "ghost", Enabled: false},
	}}
	issues := Lint(doc, testRegistry(nil))
	if len(issues) != 1 || !strings.Contains(issues[0], "carousel") {
		t.Errorf("issues = %v", issues)
	}
}

func TestRegistry_LookupAndKeys(t *testing.T) {
	reg := testRegistry(nil)
	if _, ok := reg.Lookup(site.TypeHero); !ok {
		t.Error("hero should be registered")
	}
	if _, ok := reg.Lookup("carousel"); ok {
		t.Error("carousel should not be registered")
	}
	want := []site.SectionType{site.TypeFAQ, site.TypeFinalCTA, site.TypeFooter, site.TypeHero}
	if diff := cmp.Diff(want, reg.Keys()); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestParseMode(t *testing.T) {
	cases := map[string]Mode{"development": ModeDevelopment, "production": ModeProduction, "": ModeDevelopment}
	for in, want := range cases {
		got, err := ParseMode(in)
		if err != nil || got != want {
			t.Errorf("ParseMode(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseMode("staging"); err == nil {
		t.Error("expected error for unknown mode")
	}
}
