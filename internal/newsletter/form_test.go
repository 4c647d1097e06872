package newsletter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/starford/sitekit/internal/testutil"
)

func TestForm_InvalidAddressNoNetwork(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	f := NewForm(NewClient(srv.URL, srv.Client()))
	f.SetEmail("not-an-email")
	if err := f.Submit(context.Background()); err == nil {
		t.Fatal("expected validation error")
	}
	if got := f.Message(); got != MsgInvalidEmail {
		t.Errorf("Message = %q", got)
	}
	if calls.Load() != 0 {
		t.Errorf("network calls = %d, want 0", calls.Load())
	}
	if f.Email() != "not-an-email" {
		t.Errorf("field cleared on validation failure")
	}
}

func TestForm_ConflictShowsEndpointText(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		<-release
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"This email is already subscribed"}`))
	}))
	defer srv.Close()

	f := NewForm(NewClient(srv.URL, srv.Client()))
	f.SetEmail("user@example.com")

	done := make(chan error, 1)
	go func() { done <- f.Submit(context.Background()) }()

	testutil.Eventually(t, 2*time.Second, 10*time.Millisecond, func() bool { return calls.Load() == 1 }, "request never reached the endpoint")
	if !f.Disabled() {
		t.Error("form should be disabled while request is in flight")
	}
	if err := f.Submit(context.Background()); err != ErrBusy {
		t.Errorf("second Submit = %v, want ErrBusy", err)
	}

	close(release)
	if err := <-done; err == nil {
		t.Fatal("expected error from 409")
	}

	if f.Disabled() {
		t.Error("form still disabled after request settled")
	}
	if got := f.Message(); got != "This email is already subscribed" {
		t.Errorf("Message = %q", got)
	}
	if calls.Load() != 1 {
		t.Errorf("network calls = %d, want 1", calls.Load())
	}
}

func TestForm_SuccessClearsField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	f := NewForm(NewClient(srv.URL, srv.Client()))
	f.SetEmail("user@example.com")
	if err := f.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if f.Status() != StatusSuccess || f.Message() != MsgSubscribed {
		t.Errorf("status = %v, message = %q", f.Status(), f.Message())
	}
	if f.Email() != "" {
		t.Errorf("Email = %q, want cleared", f.Email())
	}
}

func TestForm_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	f := NewForm(NewClient(url, nil))
	f.SetEmail("user@example.com")
	if err := f.Submit(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if f.Message() != MsgNetwork {
		t.Errorf("Message = %q", f.Message())
	}
	if f.Email() != "user@example.com" {
		t.Errorf("field should keep the address after a failure")
	}
}
