package controller

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/feeds"
	"github.com/swipeshop/swipe-feed/internal/command"
	"github.com/swipeshop/swipe-feed/internal/domain"
)

const (
	defaultRSSLimit = 50
	maxRSSLimit     = 200
)

// RSS publishes the ranked catalog as an RSS feed. Feed readers are anonymous, so the ranking has no signal.
type RSS struct {
	FeedHostname    string
	FeedPath        string
	FeedAuthorName  string
	FeedAuthorEmail string
	Feed            command.Command[command.LoadFeedRequest, []domain.Item]
	CacheMaxAge     time.Duration
}

func (c RSS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	limit, err := parseLimit(r.URL.Query(), defaultRSSLimit, maxRSSLimit)
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse feed limit in query string", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	items, err := c.Feed.Execute(ctx, command.LoadFeedRequest{Limit: limit})
	if err != nil {
		logger.ErrorContext(ctx, "unable to load catalog for feed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	feed := &feeds.Feed{
		Title:       "Swipe Shop",
		Link:        &feeds.Link{Href: c.FeedHostname + c.FeedPath},
		Description: "The shop catalog, best matches first",
		Author:      &feeds.Author{Name: c.FeedAuthorName, Email: c.FeedAuthorEmail},
		Created:     time.Now(),
	}

	for _, item := range items {
		feedItem := &feeds.Item{
			Id:          item.ID,
			IsPermaLink: "false",
			Title:       item.Title,
			Link:        &feeds.Link{Href: c.FeedHostname + "/items/" + item.ID},
			Description: itemDescription(item),
		}
		if item.Brand != "" {
			feedItem.Author = &feeds.Author{Name: item.Brand}
		}
		if item.Image != "" {
			feedItem.Enclosure = &feeds.Enclosure{Url: item.Image, Type: "image/jpeg", Length: "0"}
		}
		feed.Items = append(feed.Items, feedItem)
	}

	rss, err := feed.ToRss()
	if err != nil {
		logger.ErrorContext(ctx, "unable to format feed as RSS", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if _, err := w.Write([]byte(rss)); err != nil {
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}

func itemDescription(item domain.Item) string {
	var parts []string
	if item.Category != "" {
		parts = append(parts, item.Category)
	}
	if len(item.Tags) > 0 {
		parts = append(parts, strings.Join(item.Tags, ", "))
	}
	parts = append(parts, fmt.Sprintf("%.2f", item.Price))
	return strings.Join(parts, " | ")
}
