package controller

import (
	"net/http"

	"github.com/swipeshop/swipe-feed/internal/domain"
	"github.com/swipeshop/swipe-feed/internal/swipe"
	"github.com/swipeshop/swipe-feed/internal/transport/web/session"
)

type UndoResponse struct {
	Undone   bool                  `json:"undone"`
	Decision *domain.SwipeDecision `json:"decision,omitempty"`
	Session  SessionView           `json:"session"`
}

// SessionUndo reverses the most recent swipe. Having nothing to undo is not an error.
type SessionUndo struct {
	Sessions *session.Store
}

func (c SessionUndo) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sess, ctx, ok := lookupSession(w, r, c.Sessions)
	if !ok {
		return
	}

	var resp UndoResponse
	sess.Do(func(e *swipe.Engine) {
		if decision, undone := e.Undo(ctx); undone {
			resp.Undone = true
			resp.Decision = &decision
		}
		resp.Session = newSessionView(sess, e)
	})

	writeSessionJSON(ctx, w, http.StatusOK, resp)
}
