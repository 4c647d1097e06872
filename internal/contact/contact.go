// Package contact records "talk to us" inquiries from the site's modal form.
package contact

import (
	"context"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
	"github.com/starford/sitekit/internal/apperr"
	"github.com/starford/sitekit/internal/store"
)

// Topics offered by the contact form.
var Topics = []any{"", "automation", "ai-prototype", "training", "other"}

// Inquiry is the payload of POST /api/contact.
type Inquiry struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company,omitempty"`
	Topic   string `json:"topic,omitempty"`
	Message string `json:"message"`
	Site    string `json:"site,omitempty"`
}

// Validate validates the inquiry.
func (in Inquiry) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&in.Email, validation.Required, is.EmailFormat),
		validation.Field(&in.Company, validation.Length(0, 200)),
		validation.Field(&in.Topic, validation.In(Topics...)),
		validation.Field(&in.Message, validation.Required, validation.Length(1, 5000)),
	)
}

// Store persists inquiries.
type Store interface {
	InsertInquiry(ctx context.Context, r store.InquiryRow) error
	ListInquiries(ctx context.Context, limit int) ([]store.InquiryRow, error)
}

// Service validates and stores inquiries.
type Service struct {
	store Store
	now   func() time.Time
}

// NewService creates a Service on st.
func NewService(st Store) *Service {
	return &Service{store: st, now: time.Now}
}

// Submit validates in and stores it, returning the new inquiry id.
func (s *Service) Submit(ctx context.Context, in Inquiry) (string, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Company = strings.TrimSpace(in.Company)
	in.Message = strings.TrimSpace(in.Message)
	if err := in.Validate(); err != nil {
		return "", fmt.Errorf("%w: %w", apperr.ErrInvalidInput, err)
	}

	id := uuid.NewString()
	err := s.store.InsertInquiry(ctx, store.InquiryRow{
		ID:        id,
		Name:      in.Name,
		Email:     in.Email,
		Company:   in.Company,
		Topic:     in.Topic,
		Message:   in.Message,
		Site:      in.Site,
		CreatedAt: s.now(),
	})
	if err != nil {
		return "", fmt.Errorf("contact: submit: %w", err)
	}
	return id, nil
}

// List returns the most recent inquiries.
func (s *Service) List(ctx context.Context, limit int) ([]store.InquiryRow, error) {
	return s.store.ListInquiries(ctx, limit)
}
