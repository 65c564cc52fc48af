package controller

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/swipeshop/swipe-feed/internal/domain"
	"github.com/swipeshop/swipe-feed/internal/swipe"
	"github.com/swipeshop/swipe-feed/internal/transport/web/session"
)

type SwipeResponse struct {
	Commit  swipe.Commit `json:"commit"`
	Session SessionView  `json:"session"`
}

// SessionSwipe commits the current card in the direction named in the path, as the action buttons do.
type SessionSwipe struct {
	Sessions *session.Store
}

func (c SessionSwipe) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	dir, ok := domain.ParseDirection(mux.Vars(r)["direction"])
	if !ok {
		logger := domain.LoggerFromContext(r.Context())
		logger.ErrorContext(r.Context(), "invalid swipe direction", "direction", mux.Vars(r)["direction"])
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	sess, ctx, ok := lookupSession(w, r, c.Sessions)
	if !ok {
		return
	}

	var (
		resp      SwipeResponse
		committed bool
	)
	sess.Do(func(e *swipe.Engine) {
		resp.Commit, committed = e.Swipe(ctx, dir)
		resp.Session = newSessionView(sess, e)
	})

	if !committed {
		logger := domain.LoggerFromContext(ctx)
		logger.InfoContext(ctx, "swipe rejected, session busy or exhausted", "direction", dir)
		w.WriteHeader(http.StatusConflict)
		return
	}

	writeSessionJSON(ctx, w, http.StatusOK, resp)
}
