package datasources

import (
	"context"

	"github.com/swipeshop/swipe-feed/internal/domain"
)

// ShopRepository combines everything the swipe feed needs from the shop backend.
type ShopRepository interface {
	CatalogFetcher
	PositiveInteractionsFetcher
	ItemLiker
	ItemUnliker
	CartAdder
}

// CatalogFetcher returns the current browsable product set.
type CatalogFetcher interface {
	FetchCatalog(ctx context.Context) ([]domain.Item, error)
}

// PositiveInteractionsFetcher returns the items a user has shown interest in, used as the ranking signal.
// An empty result is valid.
type PositiveInteractionsFetcher interface {
	FetchPastPositiveInteractions(ctx context.Context, userID string) ([]domain.Item, error)
}

// ItemLiker records a like. Liking an already liked item is a no-op.
type ItemLiker interface {
	LikeItem(ctx context.Context, userID, itemID string) error
}

// ItemUnliker removes a like. Unliking an item that is not liked is a no-op.
type ItemUnliker interface {
	UnlikeItem(ctx context.Context, userID, itemID string) error
}

type CartAdder interface {
	AddToCart(ctx context.Context, userID string, line domain.CartLine) error
}

// NullShopRepository is a null implementation of ShopRepository.
type NullShopRepository struct{}

var _ ShopRepository = NullShopRepository{}

func (NullShopRepository) FetchCatalog(_ context.Context) ([]domain.Item, error) {
	return nil, nil
}

func (NullShopRepository) FetchPastPositiveInteractions(_ context.Context, _ string) ([]domain.Item, error) {
	return nil, nil
}

func (NullShopRepository) LikeItem(_ context.Context, _, _ string) error {
	return nil
}

func (NullShopRepository) UnlikeItem(_ context.Context, _, _ string) error {
	return nil
}

func (NullShopRepository) AddToCart(_ context.Context, _ string, _ domain.CartLine) error {
	return nil
}
