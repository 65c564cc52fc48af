package controller

import (
	"encoding/json"
	"net/http"

	"github.com/swipeshop/swipe-feed/internal/domain"
	"github.com/swipeshop/swipe-feed/internal/swipe"
	"github.com/swipeshop/swipe-feed/internal/transport/web/session"
)

type GestureResponse struct {
	Outcome   swipe.Outcome    `json:"outcome"`
	Direction domain.Direction `json:"direction,omitempty"`
	Preview   swipe.Preview    `json:"preview"`
	Commit    *swipe.Commit    `json:"commit,omitempty"`
	Session   SessionView      `json:"session"`
}

// SessionGesture replays a complete drag gesture, from pointer down to release, against the session.
// A release past a threshold commits immediately since there is no exit animation to wait for.
type SessionGesture struct {
	Sessions *session.Store
}

func (c SessionGesture) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sess, ctx, ok := lookupSession(w, r, c.Sessions)
	if !ok {
		return
	}
	logger := domain.LoggerFromContext(ctx)

	var drag domain.Displacement
	if err := json.NewDecoder(r.Body).Decode(&drag); err != nil {
		logger.ErrorContext(ctx, "unable to parse gesture body", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var (
		resp    GestureResponse
		started bool
	)
	sess.Do(func(e *swipe.Engine) {
		if started = e.PointerDown(); !started {
			return
		}

		resp.Preview = e.PointerMove(drag)
		outcome := e.PointerUp()
		resp.Outcome = outcome.Outcome
		resp.Direction = outcome.Direction

		if outcome.Outcome == swipe.OutcomeCommitting {
			if commit, ok := e.FinishAnimation(ctx); ok {
				resp.Commit = &commit
			}
		}

		resp.Session = newSessionView(sess, e)
	})

	if !started {
		logger.InfoContext(ctx, "gesture rejected, session busy or exhausted")
		w.WriteHeader(http.StatusConflict)
		return
	}

	writeSessionJSON(ctx, w, http.StatusOK, resp)
}
