package controller

import (
	"net/http"

	"github.com/swipeshop/swipe-feed/internal/swipe"
	"github.com/swipeshop/swipe-feed/internal/transport/web/session"
)

// SessionGet returns the current card and delivers pending notifications.
type SessionGet struct {
	Sessions *session.Store
}

func (c SessionGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sess, ctx, ok := lookupSession(w, r, c.Sessions)
	if !ok {
		return
	}

	var view SessionView
	sess.Do(func(e *swipe.Engine) {
		view = newSessionView(sess, e)
	})

	writeSessionJSON(ctx, w, http.StatusOK, view)
}
