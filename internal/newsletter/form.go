package newsletter

import (
	"context"
	"errors"
	"sync"
)

// Messages shown by the form.
const (
	MsgInvalidEmail = "Please enter a valid email address"
	MsgSubscribed   = "Thanks for subscribing!"
	MsgNetwork      = "Something went wrong. Please try again."
)

// ErrBusy is returned by Submit while another submission is in flight.
var ErrBusy = errors.New("newsletter: submission in progress")

// Status is the form's state.
type Status int

const (
	StatusIdle Status = iota
	StatusSubmitting
	StatusSuccess
	StatusError
)

// Form is the state behind an email capture form. It owns its address,
// status and message; nothing else mutates them.
type Form struct {
	provider Provider

	mu      sync.Mutex
	email   string
	status  Status
	message string
}

// NewForm creates a form that submits through p, usually a *Client.
func NewForm(p Provider) *Form {
	return &Form{provider: p}
}

// SetEmail replaces the address field.
func (f *Form) SetEmail(v string) {
	f.mu.Lock()
	f.email = v
	f.mu.Unlock()
}

// Email returns the address field.
func (f *Form) Email() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.email
}

// Disabled reports whether the submit control is disabled.
func (f *Form) Disabled() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status == StatusSubmitting
}

// Status returns the current status.
func (f *Form) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// Message returns the inline message for the last submission.
func (f *Form) Message() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.message
}

// Submit validates the address locally and, if it looks right, sends
// exactly one request. The returned error is the submission's outcome;
// Message holds what the visitor sees.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.status == StatusSubmitting {
		f.mu.Unlock()
		return ErrBusy
	}
	email := Normalize(f.email)
	if err := ValidateEmail(email); err != nil {
		f.status = StatusError
		f.message = MsgInvalidEmail
		f.mu.Unlock()
		return err
	}
	f.status = StatusSubmitting
	f.message = ""
	f.mu.Unlock()

	err := f.provider.Subscribe(ctx, email)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.status = StatusError
		if re, ok := IsResponseError(err); ok {
			f.message = re.Message
		} else {
			f.message = MsgNetwork
		}
		return err
	}
	f.status = StatusSuccess
	f.message = MsgSubscribed
	f.email = ""
	return nil
}
