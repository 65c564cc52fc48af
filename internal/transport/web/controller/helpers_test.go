package controller

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"github.com/swipeshop/swipe-feed/internal/domain"
	"github.com/swipeshop/swipe-feed/internal/swipe"
	"github.com/swipeshop/swipe-feed/internal/transport/web/session"
)

func testContext() func(r *http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.DiscardHandler))
		return r.WithContext(ctx)
	}
}

func testContextWithUserID(userID string) func(r *http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.DiscardHandler))
		ctx = domain.ContextWithUserID(ctx, userID)
		return r.WithContext(ctx)
	}
}

type recordingDispatcher struct {
	mu      sync.Mutex
	intents []domain.Intent
}

func (d *recordingDispatcher) Dispatch(_ context.Context, intent domain.Intent) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.intents = append(d.intents, intent)
}

func (d *recordingDispatcher) kinds() []domain.IntentKind {
	d.mu.Lock()
	defer d.mu.Unlock()

	kinds := make([]domain.IntentKind, 0, len(d.intents))
	for _, intent := range d.intents {
		kinds = append(kinds, intent.Kind)
	}
	return kinds
}

// testSessionView mirrors SessionView with the state decoded as text.
type testSessionView struct {
	SessionID     string                `json:"session_id"`
	State         string                `json:"state"`
	Index         int                   `json:"index"`
	Total         int                   `json:"total"`
	Current       *domain.Item          `json:"current"`
	Exhausted     bool                  `json:"exhausted"`
	CanUndo       bool                  `json:"can_undo"`
	Notifications []domain.Notification `json:"notifications"`
}

func testItems() []domain.Item {
	return []domain.Item{
		{
			ID:    "item1",
			Title: "Denim jacket",
			Tags:  []string{"denim"},
			Variants: []domain.Variant{
				{ID: "v1", OptionValues: map[domain.OptionName]domain.OptionValue{"size": "m"}},
			},
		},
		{ID: "item2", Title: "Linen shirt"},
	}
}

func newTestStore(t *testing.T) (*session.Store, *recordingDispatcher) {
	t.Helper()
	dispatcher := &recordingDispatcher{}
	return session.NewStore(swipe.DefaultConfig(), dispatcher, time.Hour), dispatcher
}

func newTestSession(t *testing.T, store *session.Store, userID string, items []domain.Item) *session.Session {
	t.Helper()
	ctx := domain.ContextWithLogger(context.Background(), slog.New(slog.DiscardHandler))
	sess, err := store.Create(ctx, userID, items)
	require.NoError(t, err)
	return sess
}

// serveSession sends a request for the session routes with the given path variables set.
func serveSession(
	h http.Handler, method string, body io.Reader, vars map[string]string,
	setupContext func(r *http.Request) *http.Request,
) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/v1/sessions/"+vars["session_id"], body)
	req = mux.SetURLVars(req, vars)
	req = setupContext(req)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}
