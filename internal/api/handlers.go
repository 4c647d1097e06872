package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/starford/sitekit/internal/apperr"
	"github.com/starford/sitekit/internal/contact"
	"github.com/starford/sitekit/internal/section"
	"github.com/starford/sitekit/internal/site"
	"github.com/starford/sitekit/internal/store"
)

// Messages returned by the subscribe endpoint. The page shows them verbatim.
const (
	MsgInvalidEmail      = "Invalid email address"
	MsgAlreadySubscribed = "This email is already subscribed"
	MsgSubscribeFailed   = "Failed to subscribe. Please try again later."
)

// Subscriber signs an address up to the newsletter.
type Subscriber interface {
	Subscribe(ctx context.Context, email string) error
}

// Inquiries accepts and lists contact inquiries.
type Inquiries interface {
	Submit(ctx context.Context, in contact.Inquiry) (string, error)
	List(ctx context.Context, limit int) ([]store.InquiryRow, error)
}

// SubscriberLister lists locally stored subscribers.
type SubscriberLister interface {
	ListSubscribers(ctx context.Context, limit int) ([]store.SubscriberRow, error)
}

// Deps are the collaborators of the API handlers.
type Deps struct {
	Catalog    *site.Catalog
	Renderer   *section.Renderer
	Newsletter Subscriber
	Contact    Inquiries
	// Subscribers is nil unless the newsletter is stored locally.
	Subscribers SubscriberLister
}

// Handler holds API route handlers.
type Handler struct {
	deps Deps
}

// NewHandler creates a new Handler.
func NewHandler(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// ListSites handles GET /api/sites.
//
//	@Summary	List site variants
//	@Tags		sites
//	@Produce	json
//	@Success	200	{object}	SiteListResponse
//	@Router		/sites [get]
func (h *Handler) ListSites(w http.ResponseWriter, r *http.Request) {
	_, defaultSlug, _ := h.deps.Catalog.Default()
	resp := SiteListResponse{Sites: []SiteSummary{}}
	for _, slug := range h.deps.Catalog.Slugs() {
		doc, err := h.deps.Catalog.Get(slug)
		if err != nil {
			continue
		}
		resp.Sites = append(resp.Sites, SiteSummary{
			Slug:        slug,
			Name:        doc.Metadata.Name,
			Tagline:     doc.Metadata.Tagline,
			Title:       doc.Metadata.Title(),
			Description: doc.Metadata.Description(),
			Sections:    len(doc.Sections),
			Enabled:     len(doc.Enabled()),
			Default:     slug == defaultSlug,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// ListSections handles GET /api/sites/{slug}/sections.
//
//	@Summary	Rendered section outline of a site
//	@Tags		sites
//	@Produce	json
//	@Param		slug	path		string	true	"Site slug"
//	@Success	200		{object}	SectionListResponse
//	@Failure	404		{object}	errResponse
//	@Router		/sites/{slug}/sections [get]
func (h *Handler) ListSections(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	doc, err := h.deps.Catalog.Get(slug)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("site not found"))
		} else {
			slog.Error("get site failed", slog.String("slug", slug), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}

	rendered := h.deps.Renderer.Render(doc.Sections, section.Actions{})
	resp := SectionListResponse{
		Slug:     slug,
		Mode:     h.deps.Renderer.Mode().String(),
		Sections: make([]SectionSummary, 0, len(rendered)),
	}
	for _, s := range rendered {
		resp.Sections = append(resp.Sections, SectionSummary{
			Type:       string(s.Type),
			AnchorID:   s.AnchorID,
			Diagnostic: s.Diagnostic,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// Subscribe handles POST /api/subscribe.
//
//	@Summary	Subscribe to the newsletter
//	@Tags		newsletter
//	@Accept		json
//	@Produce	json
//	@Param		body	body		SubscribeRequest	true	"Address to subscribe"
//	@Success	200		{object}	SuccessResponse
//	@Failure	400		{object}	errResponse
//	@Failure	409		{object}	errResponse
//	@Failure	500		{object}	errResponse
//	@Router		/subscribe [post]
func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req SubscribeRequest
	if err := readJSON(w, r, 16<<10, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(MsgInvalidEmail))
		return
	}

	err := h.deps.Newsletter.Subscribe(r.Context(), req.Email)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
	case errors.Is(err, apperr.ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, errorBody(MsgInvalidEmail))
	case errors.Is(err, apperr.ErrAlreadyExists):
		writeJSON(w, http.StatusConflict, errorBody(MsgAlreadySubscribed))
	default:
		slog.Error("subscribe failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody(MsgSubscribeFailed))
	}
}

// Contact handles POST /api/contact.
//
//	@Summary	Send a contact inquiry
//	@Tags		contact
//	@Accept		json
//	@Produce	json
//	@Param		body	body		contact.Inquiry	true	"Inquiry"
//	@Success	201		{object}	SuccessResponse
//	@Failure	400		{object}	errResponse
//	@Failure	500		{object}	errResponse
//	@Router		/contact [post]
func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	var req contact.Inquiry
	if err := readJSON(w, r, 64<<10, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}

	id, err := h.deps.Contact.Submit(r.Context(), req)
	if err != nil {
		if errors.Is(err, apperr.ErrInvalidInput) {
			writeJSON(w, http.StatusBadRequest, errorBody("Please add your name, a valid email address and a message."))
		} else {
			slog.Error("contact submit failed", slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("Failed to send your message. Please try again later."))
		}
		return
	}
	writeJSON(w, http.StatusCreated, SuccessResponse{Success: true, ID: id})
}

// ListInquiries handles GET /api/admin/inquiries.
//
//	@Summary	List contact inquiries
//	@Tags		admin
//	@Produce	json
//	@Param		limit	query	int	false	"Page size"
//	@Security	BearerAuth
//	@Router		/admin/inquiries [get]
func (h *Handler) ListInquiries(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	items, err := h.deps.Contact.List(r.Context(), limit)
	if err != nil {
		slog.Error("list inquiries failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	if items == nil {
		items = []store.InquiryRow{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"inquiries": items})
}

// ListSubscribers handles GET /api/admin/subscribers.
//
//	@Summary	List locally stored subscribers
//	@Tags		admin
//	@Produce	json
//	@Param		limit	query	int	false	"Page size"
//	@Failure	404		{object}	errResponse
//	@Security	BearerAuth
//	@Router		/admin/subscribers [get]
func (h *Handler) ListSubscribers(w http.ResponseWriter, r *http.Request) {
	if h.deps.Subscribers == nil {
		writeJSON(w, http.StatusNotFound, errorBody("subscribers are managed by the newsletter provider"))
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	items, err := h.deps.Subscribers.ListSubscribers(r.Context(), limit)
	if err != nil {
		slog.Error("list subscribers failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	if items == nil {
		items = []store.SubscriberRow{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"subscribers": items})
}
