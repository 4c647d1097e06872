// Package newsletter handles email sign-ups: providers that record a
// subscription, the service behind POST /api/subscribe, and a client-side
// form that talks to that endpoint.
package newsletter

import (
	"context"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/starford/sitekit/internal/apperr"
)

// Provider records a subscription for an already-normalised address.
//
// Implementations return apperr.ErrAlreadyExists for a known address,
// apperr.ErrInvalidInput when the provider rejects it and apperr.ErrUpstream
// when the provider cannot be reached.
type Provider interface {
	Subscribe(ctx context.Context, email string) error
}

// Normalize trims surrounding space and lower-cases the address.
func Normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail reports whether email is a syntactically valid address.
func ValidateEmail(email string) error {
	return validation.Validate(email, validation.Required, is.EmailFormat)
}

// Service validates sign-ups before handing them to a provider.
type Service struct {
	provider Provider
}

// NewService creates a Service backed by p.
func NewService(p Provider) *Service {
	return &Service{provider: p}
}

// Subscribe normalises and validates email, then subscribes it.
func (s *Service) Subscribe(ctx context.Context, email string) error {
	email = Normalize(email)
	if err := ValidateEmail(email); err != nil {
		return fmt.Errorf("%w: email: %v", apperr.ErrInvalidInput, err)
	}
	return s.provider.Subscribe(ctx, email)
}
