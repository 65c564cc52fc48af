package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/swipeshop/swipe-feed/internal/command"
	"github.com/swipeshop/swipe-feed/internal/domain"
)

const (
	defaultRelatedLimit = 10
	maxRelatedLimit     = 50
)

type ItemsListResponse struct {
	Data []domain.Item `json:"data"`
}

// RelatedItemsList serves the "you might also like" items for a catalog item.
type RelatedItemsList struct {
	Related     command.Command[command.RelatedItemsRequest, []domain.Item]
	CacheMaxAge time.Duration
}

func (c RelatedItemsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["item_id"]
	ctx := domain.ContextWithLogAttrs(r.Context(), "item_id", itemID)
	logger := domain.LoggerFromContext(ctx)

	limit, err := parseLimit(r.URL.Query(), defaultRelatedLimit, maxRelatedLimit)
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse related items limit in query string", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	items, err := c.Related.Execute(ctx, command.RelatedItemsRequest{ItemID: itemID, Limit: limit})
	if errors.Is(err, domain.ErrItemNotFound) {
		logger.InfoContext(ctx, "related items requested for unknown item")
		w.WriteHeader(http.StatusNotFound)
		return
	} else if err != nil {
		logger.ErrorContext(ctx, "unable to fetch related items", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Authorization")
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if err := json.NewEncoder(w).Encode(ItemsListResponse{Data: items}); err != nil {
		logger.ErrorContext(ctx, "unable to write related items to response", "error", err)
	}
}
