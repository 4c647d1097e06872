package api

// SubscribeRequest is the request body for POST /api/subscribe.
type SubscribeRequest struct {
	Email string `json:"email" example:"user@example.com" validate:"required"`
}

// SuccessResponse acknowledges a write.
type SuccessResponse struct {
	Success bool   `json:"success" example:"true" validate:"required"`
	ID      string `json:"id,omitempty" example:"2f1c7a1e-8d0b-4c39-9d1c-4f6f0b2b9a11"`
}

// SiteSummary describes one site variant.
type SiteSummary struct {
	Slug        string `json:"slug" example:"levelup" validate:"required"`
	Name        string `json:"name" example:"LevelUp" validate:"required"`
	Tagline     string `json:"tagline,omitempty"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description,omitempty"`
	Sections    int    `json:"sections" example:"8" validate:"required"`
	Enabled     int    `json:"enabled" example:"7" validate:"required"`
	Default     bool   `json:"default"`
}

// SiteListResponse wraps site summaries.
type SiteListResponse struct {
	Sites []SiteSummary `json:"sites" validate:"required"`
}

// SectionSummary is one rendered section in page order.
type SectionSummary struct {
	Type       string `json:"type" example:"hero" validate:"required"`
	AnchorID   string `json:"anchor_id,omitempty" example:"top"`
	Diagnostic bool   `json:"diagnostic,omitempty"`
}

// SectionListResponse is the rendered outline of a site.
type SectionListResponse struct {
	Slug     string           `json:"slug" validate:"required"`
	Mode     string           `json:"mode" example:"production" validate:"required"`
	Sections []SectionSummary `json:"sections" validate:"required"`
}
