// Package web serves the rendered marketing pages, their static assets and
// the demo frame streams.
package web

import (
	"bytes"
	"embed"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	g "maragu.dev/gomponents"

	"github.com/starford/sitekit/internal/apperr"
	"github.com/starford/sitekit/internal/checksum"
	"github.com/starford/sitekit/internal/components"
	"github.com/starford/sitekit/internal/section"
	"github.com/starford/sitekit/internal/sequencer"
	"github.com/starford/sitekit/internal/site"
)

//go:embed static
var staticFiles embed.FS

// Options configures a Handler.
type Options struct {
	Catalog  *site.Catalog
	Renderer *section.Renderer
	Scripts  *sequencer.Library
	Logger   *slog.Logger
	// LiveReload is the event stream the page listens on for reloads.
	// Empty disables live reload.
	LiveReload  string
	ContactPath string
}

// Handler renders site pages.
type Handler struct {
	catalog     *site.Catalog
	renderer    *section.Renderer
	scripts     *sequencer.Library
	logger      *slog.Logger
	liveReload  string
	contactPath string
}

// NewHandler creates a Handler.
func NewHandler(opts Options) *Handler {
	if opts.ContactPath == "" {
		opts.ContactPath = "/api/contact"
	}
	return &Handler{
		catalog:     opts.Catalog,
		renderer:    opts.Renderer,
		scripts:     opts.Scripts,
		logger:      opts.Logger,
		liveReload:  opts.LiveReload,
		contactPath: opts.ContactPath,
	}
}

// NewRouter mounts the page, static and demo stream routes.
func NewRouter(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Home)
	r.Get("/sites/{slug}", h.Site)
	r.Get("/demos/{script}/stream", h.DemoStream)

	static, _ := fs.Sub(staticFiles, "static")
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		h.writePage(w, req, http.StatusNotFound, notFoundPage())
	})
	return r
}

// Home handles GET / with the default site.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	doc, slug, err := h.catalog.Default()
	if err != nil {
		h.logger.Error("default site unavailable", slog.String("error", err.Error()))
		h.writePage(w, r, http.StatusNotFound, notFoundPage())
		return
	}
	h.renderSite(w, r, slug, doc)
}

// Site handles GET /sites/{slug}.
func (h *Handler) Site(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	doc, err := h.catalog.Get(slug)
	if err != nil {
		if !errors.Is(err, apperr.ErrNotFound) {
			h.logger.Error("get site failed", slog.String("slug", slug), slog.String("error", err.Error()))
		}
		h.writePage(w, r, http.StatusNotFound, notFoundPage())
		return
	}
	h.renderSite(w, r, slug, doc)
}

func (h *Handler) renderSite(w http.ResponseWriter, r *http.Request, slug string, doc *site.Document) {
	sections := h.renderer.Render(doc.Sections, section.Actions{ContactHref: components.ContactAnchor})
	page := layout(pageData{
		Slug:        slug,
		Meta:        doc.Metadata,
		Sections:    section.Nodes(sections),
		ContactPath: h.contactPath,
		LiveReload:  h.liveReload,
	})
	h.writePage(w, r, http.StatusOK, page)
}

func (h *Handler) writePage(w http.ResponseWriter, r *http.Request, status int, page g.Node) {
	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		h.logger.Error("render page failed", slog.String("path", r.URL.Path), slog.String("error", err.Error()))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if status == http.StatusOK {
		etag := checksum.ETag(buf.Bytes())
		w.Header().Set("ETag", etag)
		w.Header().Set("Cache-Control", "no-cache")
		if r.Header.Get("If-None-Match") == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}
	}
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
