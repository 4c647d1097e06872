package newsletter

import (
	"context"
)

// SubscriberStore persists addresses for the Local provider.
type SubscriberStore interface {
	InsertSubscriber(ctx context.Context, email, source string) error
}

// Local keeps subscribers in the site's own database.
type Local struct {
	store  SubscriberStore
	source string
}

// NewLocal creates a Local provider that tags rows with source.
func NewLocal(store SubscriberStore, source string) *Local {
	return &Local{store: store, source: source}
}

// Subscribe implements Provider.
func (l *Local) Subscribe(ctx context.Context, email string) error {
	return l.store.InsertSubscriber(ctx, email, l.source)
}
