package command

import (
	"context"
	"fmt"

	"github.com/swipeshop/swipe-feed/internal/datasources"
	"github.com/swipeshop/swipe-feed/internal/domain"
)

type RelatedItemsRequest struct {
	ItemID string
	Limit  int
}

// RelatedItems lists the catalog items sharing the most attributes with an anchor item.
type RelatedItems struct {
	CatalogFetcher datasources.CatalogFetcher
}

var _ Command[RelatedItemsRequest, []domain.Item] = (*RelatedItems)(nil)

func NewRelatedItems(catalog datasources.CatalogFetcher) *RelatedItems {
	return &RelatedItems{CatalogFetcher: catalog}
}

func (c *RelatedItems) Execute(ctx context.Context, req RelatedItemsRequest) ([]domain.Item, error) {
	catalog, err := c.CatalogFetcher.FetchCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching catalog: %w", err)
	}

	for _, item := range catalog {
		if item.ID == req.ItemID {
			related := domain.RelatedItems(item, catalog, req.Limit)
			if related == nil {
				related = []domain.Item{}
			}
			return related, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, req.ItemID)
}
