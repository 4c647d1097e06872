package newsletter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/starford/sitekit/internal/apperr"
)

// DefaultBeehiivURL is the public Beehiiv API base.
const DefaultBeehiivURL = "https://api.beehiiv.com/v2"

// Beehiiv subscribes addresses to a Beehiiv publication.
type Beehiiv struct {
	baseURL       string
	apiKey        string
	publicationID string
	utmSource     string
	client        *http.Client
}

// BeehiivOptions configures a Beehiiv provider.
type BeehiivOptions struct {
	BaseURL       string
	APIKey        string
	PublicationID string
	UTMSource     string
	Timeout       time.Duration
}

// NewBeehiiv creates a Beehiiv provider. Empty BaseURL means the public API.
func NewBeehiiv(opts BeehiivOptions) *Beehiiv {
	base := strings.TrimRight(opts.BaseURL, "/")
	if base == "" {
		base = DefaultBeehiivURL
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Beehiiv{
		baseURL:       base,
		apiKey:        opts.APIKey,
		publicationID: opts.PublicationID,
		utmSource:     opts.UTMSource,
		client:        &http.Client{Timeout: timeout},
	}
}

type beehiivRequest struct {
	Email              string `json:"email"`
	ReactivateExisting bool   `json:"reactivate_existing"`
	SendWelcomeEmail   bool   `json:"send_welcome_email"`
	UTMSource          string `json:"utm_source,omitempty"`
}

// Subscribe implements Provider.
func (b *Beehiiv) Subscribe(ctx context.Context, email string) error {
	body, err := json.Marshal(beehiivRequest{
		Email:            email,
		SendWelcomeEmail: true,
		UTMSource:        b.utmSource,
	})
	if err != nil {
		return fmt.Errorf("beehiiv: encode: %w", err)
	}

	url := fmt.Sprintf("%s/publications/%s/subscriptions", b.baseURL, b.publicationID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("beehiiv: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+b.apiKey)

	resp, err := b.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: beehiiv: %v", apperr.ErrUpstream, err)
	}
	defer resp.Body.Close()
	detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusConflict:
		return apperr.ErrAlreadyExists
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: beehiiv: status %d: %s", apperr.ErrInvalidInput, resp.StatusCode, strings.TrimSpace(string(detail)))
	default:
		// Anything else, including auth and rate limiting, is a provider fault.
		return fmt.Errorf("%w: beehiiv: status %d: %s", apperr.ErrUpstream, resp.StatusCode, strings.TrimSpace(string(detail)))
	}
}
