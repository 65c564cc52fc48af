package command

import (
	"context"

	"github.com/swipeshop/swipe-feed/internal/datasources"
	"github.com/swipeshop/swipe-feed/internal/domain"
)

type LoadFeedRequest struct {
	UserID string
	// Limit caps the feed length. Zero or less returns the whole ranked catalog.
	Limit int
}

// LoadFeedConfig tunes feed building.
type LoadFeedConfig struct {
	// ExcludeLiked leaves out items the user already liked.
	ExcludeLiked bool
}

func DefaultLoadFeedConfig() LoadFeedConfig {
	return LoadFeedConfig{ExcludeLiked: true}
}

// LoadFeed builds the ranked swipe queue for a user.
//
// It never fails: a catalog that cannot be fetched yields an empty feed, and a signal that cannot be
// fetched yields the catalog in its original order.
type LoadFeed struct {
	CatalogFetcher              datasources.CatalogFetcher
	PositiveInteractionsFetcher datasources.PositiveInteractionsFetcher
	Config                      LoadFeedConfig
}

var _ Command[LoadFeedRequest, []domain.Item] = (*LoadFeed)(nil)

func NewLoadFeed(
	catalog datasources.CatalogFetcher,
	interactions datasources.PositiveInteractionsFetcher,
	config LoadFeedConfig,
) *LoadFeed {
	return &LoadFeed{
		CatalogFetcher:              catalog,
		PositiveInteractionsFetcher: interactions,
		Config:                      config,
	}
}

func (c *LoadFeed) Execute(ctx context.Context, req LoadFeedRequest) ([]domain.Item, error) {
	logger := domain.LoggerFromContext(ctx)

	catalog, err := c.CatalogFetcher.FetchCatalog(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to fetch catalog, serving empty feed", "error", err)
		return []domain.Item{}, nil
	}
	candidates := cleanCatalog(ctx, catalog)

	var signal []domain.Item
	if req.UserID != "" {
		signal, err = c.PositiveInteractionsFetcher.FetchPastPositiveInteractions(ctx, req.UserID)
		if err != nil {
			logger.WarnContext(ctx, "failed to fetch positive interactions, ranking without signal",
				"error", err, "userID", req.UserID)
			signal = nil
		}
	}

	if c.Config.ExcludeLiked && len(signal) > 0 {
		candidates = excludeItems(candidates, signal)
	}

	ranked := domain.RankItems(candidates, signal)
	if req.Limit > 0 && len(ranked) > req.Limit {
		ranked = ranked[:req.Limit]
	}

	logger.DebugContext(ctx, "loaded feed",
		"catalogSize", len(catalog), "signalSize", len(signal), "feedSize", len(ranked))
	return ranked, nil
}

// cleanCatalog drops invalid items and repeated IDs, keeping the first occurrence.
func cleanCatalog(ctx context.Context, catalog []domain.Item) []domain.Item {
	logger := domain.LoggerFromContext(ctx)

	seen := make(map[string]struct{}, len(catalog))
	cleaned := make([]domain.Item, 0, len(catalog))
	for _, item := range catalog {
		if err := domain.Validate(item); err != nil {
			logger.WarnContext(ctx, "skipping invalid catalog item", "itemID", item.ID, "error", err)
			continue
		}
		if _, ok := seen[item.ID]; ok {
			logger.WarnContext(ctx, "skipping duplicate catalog item", "itemID", item.ID)
			continue
		}
		seen[item.ID] = struct{}{}
		cleaned = append(cleaned, item)
	}
	return cleaned
}

func excludeItems(items, exclude []domain.Item) []domain.Item {
	excluded := make(map[string]struct{}, len(exclude))
	for _, item := range exclude {
		excluded[item.ID] = struct{}{}
	}

	kept := make([]domain.Item, 0, len(items))
	for _, item := range items {
		if _, ok := excluded[item.ID]; !ok {
			kept = append(kept, item)
		}
	}
	return kept
}
