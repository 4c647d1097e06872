package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/starford/sitekit/internal/apperr"
	"github.com/starford/sitekit/internal/components"
	"github.com/starford/sitekit/internal/contact"
	"github.com/starford/sitekit/internal/content"
	"github.com/starford/sitekit/internal/newsletter"
	"github.com/starford/sitekit/internal/section"
	"github.com/starford/sitekit/internal/site"
	"github.com/starford/sitekit/internal/sse"
	"github.com/starford/sitekit/internal/store"
	"github.com/starford/sitekit/internal/testutil"
)

// testEnv sets up a temp SQLite DB, local newsletter, contact service and
// router. An empty authToken means disabled mode.
func testEnv(t *testing.T, authToken string) http.Handler {
	t.Helper()
	return testEnvWith(t, authToken, nil, nil)
}

func testEnvWith(t *testing.T, authToken string, sub Subscriber, sseHandler http.Handler) http.Handler {
	t.Helper()
	admin := AdminAccess{AuthEnabled: authToken != "", Token: authToken, AllowOpen: true}
	return NewRouter(testHandler(t, sub), admin, sseHandler)
}

func testHandler(t *testing.T, sub Subscriber) *Handler {
	t.Helper()

	db := testutil.TestDB(t)

	if sub == nil {
		sub = newsletter.NewService(newsletter.NewLocal(db, "test"))
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(Deps{
		Catalog:     site.NewCatalog(content.LevelUp, content.Builtin()),
		Renderer:    section.NewRenderer(components.Registry(components.Deps{}), section.ModeProduction, logger),
		Newsletter:  sub,
		Contact:     contact.NewService(db),
		Subscribers: db,
	})
	return h
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp errResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return resp.Error
}

func TestSubscribe_Flow(t *testing.T) {
	router := testEnv(t, "")

	w := doJSON(t, router, http.MethodPost, "/subscribe", SubscribeRequest{Email: "User@Example.com"}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var ok SuccessResponse
	_ = json.NewDecoder(w.Body).Decode(&ok)
	if !ok.Success {
		t.Error("success = false")
	}

	w = doJSON(t, router, http.MethodPost, "/subscribe", SubscribeRequest{Email: "user@example.com"}, nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate status = %d", w.Code)
	}
	if msg := decodeError(t, w); msg != MsgAlreadySubscribed {
		t.Errorf("error = %q", msg)
	}
}

func TestSubscribe_Invalid(t *testing.T) {
	router := testEnv(t, "")

	w := doJSON(t, router, http.MethodPost, "/subscribe", SubscribeRequest{Email: "not-an-email"}, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	if msg := decodeError(t, w); msg != MsgInvalidEmail {
		t.Errorf("error = %q", msg)
	}

	for _, body := range []string{`{`, `{"email":"a@example.com"}{"email":"b@example.com"}`} {
		req := httptest.NewRequest(http.MethodPost, "/subscribe", bytes.NewReader([]byte(body)))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %q: status = %d", body, rec.Code)
		}
	}
}

type failingSubscriber struct{ err error }

func (f failingSubscriber) Subscribe(context.Context, string) error { return f.err }

func TestSubscribe_ProviderFailure(t *testing.T) {
	router := testEnvWith(t, "", failingSubscriber{err: apperr.ErrUpstream}, nil)

	w := doJSON(t, router, http.MethodPost, "/subscribe", SubscribeRequest{Email: "user@example.com"}, nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	if msg := decodeError(t, w); msg != MsgSubscribeFailed {
		t.Errorf("error = %q", msg)
	}
}

func TestSubscribe_BeehiivRejectsKey(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer upstream.Close()

	provider := newsletter.NewBeehiiv(newsletter.BeehiivOptions{BaseURL: upstream.URL, APIKey: "wrong", PublicationID: "pub_1"})
	router := testEnvWith(t, "", newsletter.NewService(provider), nil)

	w := doJSON(t, router, http.MethodPost, "/subscribe", SubscribeRequest{Email: "user@example.com"}, nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if msg := decodeError(t, w); msg != MsgSubscribeFailed {
		t.Errorf("error = %q", msg)
	}
}

func TestSubscribe_FormAgainstEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.StripPrefix("/api", testEnv(t, "")))
	defer srv.Close()

	form := newsletter.NewForm(newsletter.NewClient(srv.URL, srv.Client()))
	form.SetEmail("user@example.com")
	if err := form.Submit(context.Background()); err != nil {
		t.Fatalf("first submit: %v", err)
	}

	form.SetEmail("user@example.com")
	if err := form.Submit(context.Background()); err == nil {
		t.Fatal("expected conflict")
	}
	if form.Message() != MsgAlreadySubscribed {
		t.Errorf("Message = %q", form.Message())
	}
}

func TestContact_CreateAndList(t *testing.T) {
	router := testEnv(t, "secret")

	w := doJSON(t, router, http.MethodPost, "/contact", contact.Inquiry{
		Name:    "Ada",
		Email:   "ada@example.com",
		Topic:   "training",
		Message: "Can you run a workshop?",
	}, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var created SuccessResponse
	_ = json.NewDecoder(w.Body).Decode(&created)
	if created.ID == "" {
		t.Fatal("missing id")
	}

	w = doJSON(t, router, http.MethodGet, "/admin/inquiries", nil, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated status = %d", w.Code)
	}

	w = doJSON(t, router, http.MethodGet, "/admin/inquiries", nil, http.Header{"Authorization": {"Bearer secret"}})
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	var list struct {
		Inquiries []store.InquiryRow `json:"inquiries"`
	}
	_ = json.NewDecoder(w.Body).Decode(&list)
	if len(list.Inquiries) != 1 || list.Inquiries[0].ID != created.ID {
		t.Errorf("inquiries = %+v", list.Inquiries)
	}
}

func TestContact_Invalid(t *testing.T) {
	router := testEnv(t, "")
	w := doJSON(t, router, http.MethodPost, "/contact", contact.Inquiry{Name: "Ada"}, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d", w.Code)
	}
}

func TestAdminSubscribers(t *testing.T) {
	router := testEnv(t, "")
	doJSON(t, router, http.MethodPost, "/subscribe", SubscribeRequest{Email: "a@example.com"}, nil)

	w := doJSON(t, router, http.MethodGet, "/admin/subscribers", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var list struct {
		Subscribers []store.SubscriberRow `json:"subscribers"`
	}
	_ = json.NewDecoder(w.Body).Decode(&list)
	if len(list.Subscribers) != 1 || list.Subscribers[0].Email != "a@example.com" || list.Subscribers[0].Source != "test" {
		t.Errorf("subscribers = %+v", list.Subscribers)
	}
}

func TestAdminRoutesAbsentWithoutAuth(t *testing.T) {
	router := NewRouter(testHandler(t, nil), AdminAccess{}, nil)
	doJSON(t, router, http.MethodPost, "/subscribe", SubscribeRequest{Email: "a@example.com"}, nil)

	for _, path := range []string{"/admin/subscribers", "/admin/inquiries"} {
		w := doJSON(t, router, http.MethodGet, path, nil, nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("%s: status = %d, want 404", path, w.Code)
		}
		if strings.Contains(w.Body.String(), "a@example.com") {
			t.Errorf("%s leaked a subscriber", path)
		}
	}
}

func TestListSites(t *testing.T) {
	router := testEnv(t, "")
	w := doJSON(t, router, http.MethodGet, "/sites", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp SiteListResponse
	_ = json.NewDecoder(w.Body).Decode(&resp)
	if len(resp.Sites) != 3 {
		t.Fatalf("sites = %+v", resp.Sites)
	}
	var defaults int
	for _, s := range resp.Sites {
		if s.Default {
			defaults++
			if s.Slug != content.LevelUp {
				t.Errorf("default = %q", s.Slug)
			}
		}
		if s.Enabled > s.Sections {
			t.Errorf("%s: enabled %d > sections %d", s.Slug, s.Enabled, s.Sections)
		}
	}
	if defaults != 1 {
		t.Errorf("defaults = %d", defaults)
	}
}

func TestListSections(t *testing.T) {
	router := testEnv(t, "")

	w := doJSON(t, router, http.MethodGet, "/sites/"+content.Speedrun+"/sections", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp SectionListResponse
	_ = json.NewDecoder(w.Body).Decode(&resp)
	doc, _ := site.NewCatalog(content.Speedrun, content.Builtin()).Get(content.Speedrun)
	if len(resp.Sections) != len(doc.Enabled()) {
		t.Errorf("sections = %d, want %d", len(resp.Sections), len(doc.Enabled()))
	}
	if resp.Mode != "production" {
		t.Errorf("mode = %q", resp.Mode)
	}
	for i, s := range resp.Sections {
		if s.Type != string(doc.Enabled()[i].Type) {
			t.Errorf("sections[%d] = %q, want %q", i, s.Type, doc.Enabled()[i].Type)
		}
	}

	w = doJSON(t, router, http.MethodGet, "/sites/nope/sections", nil, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown slug status = %d", w.Code)
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	router := testEnv(t, "secret")
	w := doJSON(t, router, http.MethodGet, "/admin/subscribers", nil, http.Header{"Authorization": {"Bearer secret"}})
	if w.Code != http.StatusOK {
		t.Errorf("status = %d", w.Code)
	}
}

func TestAuthMiddleware_WrongToken(t *testing.T) {
	router := testEnv(t, "secret")
	w := doJSON(t, router, http.MethodGet, "/admin/subscribers", nil, http.Header{"Authorization": {"Bearer nope"}})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d", w.Code)
	}
}

func TestAuthMiddleware_PublicRoutesOpen(t *testing.T) {
	router := testEnv(t, "secret")
	w := doJSON(t, router, http.MethodGet, "/sites", nil, nil)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d", w.Code)
	}
}

func TestSSEEvents_Mounted(t *testing.T) {
	broker := sse.NewBroker(time.Second)
	defer broker.Close()
	router := testEnvWith(t, "", nil, broker)

	srv := httptest.NewServer(router)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/events", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("Content-Type = %q", ct)
	}
}
