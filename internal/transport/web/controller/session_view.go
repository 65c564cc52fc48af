package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/swipeshop/swipe-feed/internal/domain"
	"github.com/swipeshop/swipe-feed/internal/swipe"
	"github.com/swipeshop/swipe-feed/internal/transport/web/session"
)

// SessionView is what a client needs to render the card stack.
type SessionView struct {
	SessionID     string                `json:"session_id"`
	State         swipe.State           `json:"state"`
	Index         int                   `json:"index"`
	Total         int                   `json:"total"`
	Current       *domain.Item          `json:"current,omitempty"`
	Exhausted     bool                  `json:"exhausted"`
	CanUndo       bool                  `json:"can_undo"`
	Notifications []domain.Notification `json:"notifications"`
}

// newSessionView must be called with the session's engine held.
func newSessionView(sess *session.Session, e *swipe.Engine) SessionView {
	view := SessionView{
		SessionID:     sess.ID,
		State:         e.State(),
		Index:         e.Index(),
		Total:         e.Len(),
		Exhausted:     e.Exhausted(),
		CanUndo:       e.CanUndo(),
		Notifications: sess.DrainNotifications(),
	}
	if current, ok := e.Current(); ok {
		view.Current = &current
	}
	return view
}

// lookupSession resolves the session_id path variable to a session owned by the requesting user.
// On failure it writes the response itself.
func lookupSession(
	w http.ResponseWriter, r *http.Request, sessions *session.Store,
) (*session.Session, context.Context, bool) {
	id := mux.Vars(r)["session_id"]
	ctx := domain.ContextWithLogAttrs(r.Context(), "session_id", id)
	ctx = domain.ContextWithSessionID(ctx, id)
	logger := domain.LoggerFromContext(ctx)

	sess, ok := sessions.Get(id)
	if !ok {
		logger.InfoContext(ctx, "swipe session not found")
		w.WriteHeader(http.StatusNotFound)
		return nil, ctx, false
	}

	if sess.UserID != domain.UserIDFromContext(ctx) {
		logger.WarnContext(ctx, "swipe session requested by another user")
		w.WriteHeader(http.StatusNotFound)
		return nil, ctx, false
	}

	return sess, ctx, true
}

func writeSessionJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write session to response", "error", err)
	}
}
