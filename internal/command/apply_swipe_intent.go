package command

import (
	"context"
	"fmt"

	"github.com/swipeshop/swipe-feed/internal/datasources"
	"github.com/swipeshop/swipe-feed/internal/domain"
)

// ApplySwipeIntent carries out the shop side effect of a committed or undone swipe.
type ApplySwipeIntent struct {
	ItemLiker   datasources.ItemLiker
	ItemUnliker datasources.ItemUnliker
	CartAdder   datasources.CartAdder
}

var _ Command[domain.Intent, Empty] = (*ApplySwipeIntent)(nil)

func NewApplySwipeIntent(shop datasources.ShopRepository) *ApplySwipeIntent {
	return &ApplySwipeIntent{
		ItemLiker:   shop,
		ItemUnliker: shop,
		CartAdder:   shop,
	}
}

// Execute applies the intent. Failures of the shop API are wrapped with domain.ErrDispatchFailed.
func (c *ApplySwipeIntent) Execute(ctx context.Context, intent domain.Intent) (Empty, error) {
	logger := domain.LoggerFromContext(ctx)

	var err error
	switch intent.Kind {
	case domain.IntentLike:
		err = c.ItemLiker.LikeItem(ctx, intent.UserID, intent.ItemID)
	case domain.IntentUnlike:
		err = c.ItemUnliker.UnlikeItem(ctx, intent.UserID, intent.ItemID)
	case domain.IntentAddToCart:
		line := intent.CartLine
		if line.ItemID == "" {
			line.ItemID = intent.ItemID
		}
		if line.Quantity == 0 {
			line.Quantity = 1
		}
		if verr := domain.Validate(line); verr != nil {
			return Empty{}, fmt.Errorf("invalid cart line: %w", verr)
		}
		err = c.CartAdder.AddToCart(ctx, intent.UserID, line)
	case domain.IntentDislike:
		// Dislikes are not recorded by the shop.
		logger.DebugContext(ctx, "dislike kept client side", "itemID", intent.ItemID)
		return Empty{}, nil
	default:
		return Empty{}, fmt.Errorf("%w: %q", domain.ErrUnknownIntentKind, intent.Kind)
	}

	if err != nil {
		return Empty{}, fmt.Errorf("%w: %s %s: %w", domain.ErrDispatchFailed, intent.Kind, intent.ItemID, err)
	}

	logger.DebugContext(ctx, "applied swipe intent", "kind", intent.Kind, "itemID", intent.ItemID)
	return Empty{}, nil
}
