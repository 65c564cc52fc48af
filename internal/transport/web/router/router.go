package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swipeshop/swipe-feed/internal/command"
	"github.com/swipeshop/swipe-feed/internal/domain"
	"github.com/swipeshop/swipe-feed/internal/transport/web/controller"
	"github.com/swipeshop/swipe-feed/internal/transport/web/session"
)

func MakeRouter(
	feed command.Command[command.LoadFeedRequest, []domain.Item],
	related command.Command[command.RelatedItemsRequest, []domain.Item],
	sessions *session.Store,
	rssFeedBaseURL, rssFeedAuthorName, rssFeedAuthorEmail string,
	catalogCacheMaxAge time.Duration,
	authMiddleware func(http.Handler) http.Handler,
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(authMiddleware)

	r.Handle("/v1/sessions", requireAuthMiddleware(controller.SessionCreate{
		Feed:     feed,
		Sessions: sessions,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/sessions/{session_id}", requireAuthMiddleware(controller.SessionGet{
		Sessions: sessions,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/sessions/{session_id}/gestures", requireAuthMiddleware(controller.SessionGesture{
		Sessions: sessions,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/sessions/{session_id}/swipe/{direction}", requireAuthMiddleware(controller.SessionSwipe{
		Sessions: sessions,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/sessions/{session_id}/undo", requireAuthMiddleware(controller.SessionUndo{
		Sessions: sessions,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/items/{item_id}/related", controller.RelatedItemsList{
		Related:     related,
		CacheMaxAge: catalogCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/rss", controller.RSS{
		FeedHostname:    rssFeedBaseURL,
		FeedPath:        "/rss",
		FeedAuthorName:  rssFeedAuthorName,
		FeedAuthorEmail: rssFeedAuthorEmail,
		Feed:            feed,
		CacheMaxAge:     catalogCacheMaxAge,
	}).Methods(http.MethodGet)

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return r, nil
}
