package controller

import (
	"net/http"

	"github.com/swipeshop/swipe-feed/internal/command"
	"github.com/swipeshop/swipe-feed/internal/domain"
	"github.com/swipeshop/swipe-feed/internal/swipe"
	"github.com/swipeshop/swipe-feed/internal/transport/web/session"
)

const (
	defaultFeedLimit = 100
	maxFeedLimit     = 500
)

// SessionCreate builds a ranked feed for the user and starts a swipe session over it.
type SessionCreate struct {
	Feed     command.Command[command.LoadFeedRequest, []domain.Item]
	Sessions *session.Store
}

func (c SessionCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	limit, err := parseLimit(r.URL.Query(), defaultFeedLimit, maxFeedLimit)
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse feed limit in query string", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	userID := domain.UserIDFromContext(ctx)
	items, err := c.Feed.Execute(ctx, command.LoadFeedRequest{UserID: userID, Limit: limit})
	if err != nil {
		logger.ErrorContext(ctx, "unable to load feed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	sess, err := c.Sessions.Create(ctx, userID, items)
	if err != nil {
		logger.ErrorContext(ctx, "unable to create swipe session", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	var view SessionView
	sess.Do(func(e *swipe.Engine) {
		view = newSessionView(sess, e)
	})

	w.Header().Set("Location", "/v1/sessions/"+sess.ID)
	writeSessionJSON(ctx, w, http.StatusCreated, view)
}
