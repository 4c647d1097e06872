package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// AdminAccess controls the admin routes.
type AdminAccess struct {
	// AuthEnabled enforces "Authorization: Bearer <Token>".
	AuthEnabled bool
	Token       string
	// AllowOpen mounts the routes without auth. Without it and without
	// auth the admin routes do not exist.
	AllowOpen bool
}

func (a AdminAccess) mounted() bool { return a.AuthEnabled || a.AllowOpen }

// NewRouter creates a chi router with all API routes mounted.
// The public form endpoints are always open; admin routes follow admin.
// sseHandler, if non-nil, is mounted at GET /events.
func NewRouter(h *Handler, admin AdminAccess, sseHandler http.Handler) chi.Router {
	r := chi.NewRouter()

	// Sites.
	r.Get("/sites", h.ListSites)
	r.Get("/sites/{slug}/sections", h.ListSections)

	// Forms.
	r.Post("/subscribe", h.Subscribe)
	r.Post("/contact", h.Contact)

	// Live reload stream.
	if sseHandler != nil {
		r.Get("/events", sseHandler.ServeHTTP)
	}

	if admin.mounted() {
		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware(admin.AuthEnabled, admin.Token))
			r.Get("/admin/inquiries", h.ListInquiries)
			r.Get("/admin/subscribers", h.ListSubscribers)
		})
	}

	return r
}
