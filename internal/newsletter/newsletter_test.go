package newsletter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/starford/sitekit/internal/apperr"
)

type recordingProvider struct {
	mu     sync.Mutex
	emails []string
	err    error
}

func (p *recordingProvider) Subscribe(_ context.Context, email string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.emails = append(p.emails, email)
	return p.err
}

func TestService_NormalisesAddress(t *testing.T) {
	p := &recordingProvider{}
	svc := NewService(p)

	if err := svc.Subscribe(context.Background(), "  User@Example.COM "); err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	if len(p.emails) != 1 || p.emails[0] != "user@example.com" {
		t.Errorf("emails = %v", p.emails)
	}
}

func TestService_RejectsInvalid(t *testing.T) {
	p := &recordingProvider{}
	svc := NewService(p)

	for _, in := range []string{"", "not-an-email", "a@", "@example.com"} {
		err := svc.Subscribe(context.Background(), in)
		if !errors.Is(err, apperr.ErrInvalidInput) {
			t.Errorf("Subscribe(%q) = %v, want ErrInvalidInput", in, err)
		}
	}
	if len(p.emails) != 0 {
		t.Errorf("provider called for invalid input: %v", p.emails)
	}
}

func TestBeehiiv_StatusMapping(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusCreated, nil},
		{http.StatusConflict, apperr.ErrAlreadyExists},
		{http.StatusBadRequest, apperr.ErrInvalidInput},
		{http.StatusUnprocessableEntity, apperr.ErrInvalidInput},
		{http.StatusUnauthorized, apperr.ErrUpstream},
		{http.StatusForbidden, apperr.ErrUpstream},
		{http.StatusNotFound, apperr.ErrUpstream},
		{http.StatusTooManyRequests, apperr.ErrUpstream},
		{http.StatusBadGateway, apperr.ErrUpstream},
	}
	for _, tc := range cases {
		var gotAuth, gotPath string
		var gotBody beehiivRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotPath = r.URL.Path
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
			w.WriteHeader(tc.status)
			_, _ = w.Write([]byte(`{}`))
		}))

		b := NewBeehiiv(BeehiivOptions{BaseURL: srv.URL + "/v2/", APIKey: "k3y", PublicationID: "pub_1"})
		err := b.Subscribe(context.Background(), "user@example.com")
		srv.Close()

		if tc.want == nil && err != nil {
			t.Errorf("status %d: err = %v", tc.status, err)
		}
		if tc.want != nil && !errors.Is(err, tc.want) {
			t.Errorf("status %d: err = %v, want %v", tc.status, err, tc.want)
		}
		if gotAuth != "Bearer k3y" {
			t.Errorf("Authorization = %q", gotAuth)
		}
		if gotPath != "/v2/publications/pub_1/subscriptions" {
			t.Errorf("path = %q", gotPath)
		}
		if gotBody.Email != "user@example.com" {
			t.Errorf("body email = %q", gotBody.Email)
		}
	}
}

func TestBeehiiv_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	b := NewBeehiiv(BeehiivOptions{BaseURL: url, PublicationID: "p"})
	if err := b.Subscribe(context.Background(), "user@example.com"); !errors.Is(err, apperr.ErrUpstream) {
		t.Errorf("err = %v, want ErrUpstream", err)
	}
}

type memStore struct {
	seen map[string]string
}

func (m *memStore) InsertSubscriber(_ context.Context, email, source string) error {
	if _, ok := m.seen[email]; ok {
		return apperr.ErrAlreadyExists
	}
	m.seen[email] = source
	return nil
}

func TestLocal_TagsSource(t *testing.T) {
	st := &memStore{seen: map[string]string{}}
	l := NewLocal(st, "website")

	if err := l.Subscribe(context.Background(), "user@example.com"); err != nil {
		t.Fatal(err)
	}
	if st.seen["user@example.com"] != "website" {
		t.Errorf("seen = %v", st.seen)
	}
	if err := l.Subscribe(context.Background(), "user@example.com"); !errors.Is(err, apperr.ErrAlreadyExists) {
		t.Errorf("duplicate err = %v", err)
	}
}

func TestClient_ErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"This email is already subscribed"}`))
	}))
	defer srv.Close()

	err := NewClient(srv.URL, srv.Client()).Subscribe(context.Background(), "user@example.com")
	re, ok := IsResponseError(err)
	if !ok {
		t.Fatalf("err = %v, want *ResponseError", err)
	}
	if re.Status != http.StatusConflict || re.Message != "This email is already subscribed" {
		t.Errorf("re = %+v", re)
	}
}
