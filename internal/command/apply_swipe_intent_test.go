package command

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/swipeshop/swipe-feed/internal/datasources/mocks"
	"github.com/swipeshop/swipe-feed/internal/domain"
)

func testContext() context.Context {
	return domain.ContextWithLogger(context.Background(), slog.New(slog.DiscardHandler))
}

func TestApplySwipeIntent_Execute(t *testing.T) {
	shopErr := errors.New("shop unavailable")
	variant := domain.Variant{ID: "v1", OptionValues: map[domain.OptionName]domain.OptionValue{"size": "m"}}

	cases := []struct {
		name       string
		intent     domain.Intent
		setup      func(liker *mocks.MockItemLiker, unliker *mocks.MockItemUnliker, cart *mocks.MockCartAdder)
		wantErr    error
		wantNoCall bool
	}{
		{
			name:   "like",
			intent: domain.Intent{Kind: domain.IntentLike, UserID: "user1", ItemID: "item1"},
			setup: func(liker *mocks.MockItemLiker, _ *mocks.MockItemUnliker, _ *mocks.MockCartAdder) {
				liker.EXPECT().LikeItem(mock.Anything, "user1", "item1").Return(nil)
			},
		},
		{
			name:   "unlike",
			intent: domain.Intent{Kind: domain.IntentUnlike, UserID: "user1", ItemID: "item1"},
			setup: func(_ *mocks.MockItemLiker, unliker *mocks.MockItemUnliker, _ *mocks.MockCartAdder) {
				unliker.EXPECT().UnlikeItem(mock.Anything, "user1", "item1").Return(nil)
			},
		},
		{
			name: "add_to_cart",
			intent: domain.Intent{
				Kind:     domain.IntentAddToCart,
				UserID:   "user1",
				ItemID:   "item1",
				CartLine: domain.CartLine{ItemID: "item1", Variant: variant, Quantity: 2},
			},
			setup: func(_ *mocks.MockItemLiker, _ *mocks.MockItemUnliker, cart *mocks.MockCartAdder) {
				cart.EXPECT().
					AddToCart(mock.Anything, "user1", domain.CartLine{ItemID: "item1", Variant: variant, Quantity: 2}).
					Return(nil)
			},
		},
		{
			name:   "add_to_cart_fills_missing_line",
			intent: domain.Intent{Kind: domain.IntentAddToCart, UserID: "user1", ItemID: "item1"},
			setup: func(_ *mocks.MockItemLiker, _ *mocks.MockItemUnliker, cart *mocks.MockCartAdder) {
				cart.EXPECT().
					AddToCart(mock.Anything, "user1", domain.CartLine{ItemID: "item1", Quantity: 1}).
					Return(nil)
			},
		},
		{
			name:       "dislike_makes_no_call",
			intent:     domain.Intent{Kind: domain.IntentDislike, UserID: "user1", ItemID: "item1"},
			wantNoCall: true,
		},
		{
			name:       "unknown_kind",
			intent:     domain.Intent{Kind: "wishlist", UserID: "user1", ItemID: "item1"},
			wantErr:    domain.ErrUnknownIntentKind,
			wantNoCall: true,
		},
		{
			name:   "like_failure",
			intent: domain.Intent{Kind: domain.IntentLike, UserID: "user1", ItemID: "item1"},
			setup: func(liker *mocks.MockItemLiker, _ *mocks.MockItemUnliker, _ *mocks.MockCartAdder) {
				liker.EXPECT().LikeItem(mock.Anything, "user1", "item1").Return(shopErr)
			},
			wantErr: domain.ErrDispatchFailed,
		},
		{
			name:   "cart_failure",
			intent: domain.Intent{Kind: domain.IntentAddToCart, UserID: "user1", ItemID: "item1"},
			setup: func(_ *mocks.MockItemLiker, _ *mocks.MockItemUnliker, cart *mocks.MockCartAdder) {
				cart.EXPECT().AddToCart(mock.Anything, "user1", mock.Anything).Return(shopErr)
			},
			wantErr: domain.ErrDispatchFailed,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			liker := mocks.NewMockItemLiker(t)
			unliker := mocks.NewMockItemUnliker(t)
			cart := mocks.NewMockCartAdder(t)
			if tc.setup != nil {
				tc.setup(liker, unliker, cart)
			}

			cmd := &ApplySwipeIntent{
				ItemLiker:   liker,
				ItemUnliker: unliker,
				CartAdder:   cart,
			}

			_, err := cmd.Execute(testContext(), tc.intent)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}

			if tc.wantNoCall {
				liker.AssertNotCalled(t, "LikeItem", mock.Anything, mock.Anything, mock.Anything)
				unliker.AssertNotCalled(t, "UnlikeItem", mock.Anything, mock.Anything, mock.Anything)
				cart.AssertNotCalled(t, "AddToCart", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestApplySwipeIntent_FailureKeepsCause(t *testing.T) {
	shopErr := errors.New("shop unavailable")
	liker := mocks.NewMockItemLiker(t)
	liker.EXPECT().LikeItem(mock.Anything, "user1", "item1").Return(shopErr)

	cmd := &ApplySwipeIntent{ItemLiker: liker}
	_, err := cmd.Execute(testContext(), domain.Intent{Kind: domain.IntentLike, UserID: "user1", ItemID: "item1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, shopErr)
	assert.ErrorIs(t, err, domain.ErrDispatchFailed)
}
