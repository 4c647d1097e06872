package web

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/starford/sitekit/internal/components"
	"github.com/starford/sitekit/internal/content"
	"github.com/starford/sitekit/internal/section"
	"github.com/starford/sitekit/internal/sequencer"
	"github.com/starford/sitekit/internal/site"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRouter(t *testing.T, mode section.Mode, docs map[string]*site.Document, live string) http.Handler {
	t.Helper()
	if docs == nil {
		docs = content.Builtin()
	}
	scripts := sequencer.Builtin()
	renderer := section.NewRenderer(components.Registry(components.Deps{Scripts: scripts}), mode, discardLogger())
	h := NewHandler(Options{
		Catalog:    site.NewCatalog(content.LevelUp, docs),
		Renderer:   renderer,
		Scripts:    scripts,
		Logger:     discardLogger(),
		LiveReload: live,
	})
	return NewRouter(h)
}

func get(t *testing.T, h http.Handler, path string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHome_RendersDefaultSite(t *testing.T) {
	h := newTestRouter(t, section.ModeProduction, nil, "")

	rec := get(t, h, "/", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"<!doctype html>", "<title>LevelUp | ", `data-site="levelup"`, `<dialog id="contact"`, "/static/site.js", `<header id="page-top"`, `href="#page-top"`} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
	if strings.Contains(body, "data-live-reload") {
		t.Error("live reload should be off")
	}

	etag := rec.Header().Get("ETag")
	if etag == "" {
		t.Fatal("missing ETag")
	}
	rec = get(t, h, "/", http.Header{"If-None-Match": {etag}})
	if rec.Code != http.StatusNotModified {
		t.Errorf("conditional status = %d, want 304", rec.Code)
	}
}

func TestSite_BySlugAndNotFound(t *testing.T) {
	h := newTestRouter(t, section.ModeProduction, nil, "")

	rec := get(t, h, "/sites/"+content.Speedrun, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `data-site="speedrun"`) {
		t.Error("speedrun page not rendered")
	}

	rec = get(t, h, "/sites/nope", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Page not found") {
		t.Error("missing not found page")
	}

	if rec := get(t, h, "/no/such/path", nil); rec.Code != http.StatusNotFound {
		t.Errorf("unknown path status = %d", rec.Code)
	}
}

func TestSite_UnknownSectionByMode(t *testing.T) {
	docs := map[string]*site.Document{
		content.LevelUp: {
			Metadata: site.Metadata{Name: "Test"},
			Sections: []site.Entry{
				{Type: site.TypeHero, Enabled: true, Props: site.HeroProps{Headline: "Hi"}},
				{Type: "carousel", Enabled: true, Props: site.RawProps{Kind: "carousel"}},
			},
		},
	}

	dev := get(t, newTestRouter(t, section.ModeDevelopment, docs, "/api/events"), "/", nil).Body.String()
	if !strings.Contains(dev, `data-section-type="carousel"`) {
		t.Error("development page should show the diagnostic")
	}
	if !strings.Contains(dev, `data-live-reload="/api/events"`) {
		t.Error("development page should enable live reload")
	}

	prod := get(t, newTestRouter(t, section.ModeProduction, docs, ""), "/", nil).Body.String()
	if strings.Contains(prod, "carousel") {
		t.Error("production page leaked the unknown section")
	}
	if !strings.Contains(prod, "Hi") {
		t.Error("production page lost the hero")
	}
}

func TestStatic(t *testing.T) {
	h := newTestRouter(t, section.ModeProduction, nil, "")

	rec := get(t, h, "/static/site.js", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "IntersectionObserver") {
		t.Error("site.js content mismatch")
	}
	if rec := get(t, h, "/static/site.css", nil); rec.Code != http.StatusOK {
		t.Errorf("site.css status = %d", rec.Code)
	}
}

func TestStatic_DemoStreamClosedOnError(t *testing.T) {
	h := newTestRouter(t, section.ModeProduction, nil, "")

	body := get(t, h, "/static/site.js", nil).Body.String()
	start := strings.Index(body, "function startDemo")
	end := strings.Index(body, "function bindDemos")
	if start < 0 || end < start {
		t.Fatal("startDemo not found")
	}
	fn := body[start:end]
	for _, want := range []string{`addEventListener("error"`, "source.close()", `demoState = "stopped"`} {
		if !strings.Contains(fn, want) {
			t.Errorf("startDemo missing %q", want)
		}
	}
}

func TestDemoStream(t *testing.T) {
	srv := httptest.NewServer(newTestRouter(t, section.ModeProduction, nil, ""))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/demos/missing/stream")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown script status = %d", resp.StatusCode)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/demos/chat-typing/stream", nil)
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("Content-Type = %q", ct)
	}

	scanner := bufio.NewScanner(resp.Body)
	var sawEvent bool
	for scanner.Scan() {
		line := scanner.Text()
		if line == "event: frame" {
			sawEvent = true
			continue
		}
		if sawEvent && strings.HasPrefix(line, "data: ") {
			var f sequencer.Frame
			if err := json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &f); err != nil {
				t.Fatalf("decode frame: %v", err)
			}
			if f.Script != "chat-typing" || f.Waiting || f.Cycle != 0 || f.PhaseIndex != 0 {
				t.Errorf("first frame = %+v", f)
			}
			return
		}
	}
	t.Fatalf("no frame received: %v", scanner.Err())
}
