package app

import (
	"context"

	"github.com/swipeshop/swipe-feed/internal/command"
	"github.com/swipeshop/swipe-feed/internal/swipe"
)

// DefaultDispatchBufferSize is how many intents may wait for the shop before new ones are dropped.
const DefaultDispatchBufferSize = 256

// DefaultLoadFeedConfig returns the default config for building swipe feeds.
func DefaultLoadFeedConfig() command.LoadFeedConfig {
	return command.DefaultLoadFeedConfig()
}

// SwipeConfigFromEnv returns the default swipe config with any SWIPE_* overrides applied.
func SwipeConfigFromEnv(ctx context.Context) swipe.Config {
	cfg := swipe.DefaultConfig()

	if HasEnv("SWIPE_HORIZONTAL_THRESHOLD") {
		cfg.HorizontalThreshold = MustGetEnvAsFloat(ctx, "SWIPE_HORIZONTAL_THRESHOLD")
	}
	if HasEnv("SWIPE_DOWN_THRESHOLD") {
		cfg.DownThreshold = MustGetEnvAsFloat(ctx, "SWIPE_DOWN_THRESHOLD")
	}
	if HasEnv("SWIPE_UNDO_DEPTH") {
		cfg.UndoDepth = MustGetEnvAsInt(ctx, "SWIPE_UNDO_DEPTH")
	}
	if HasEnv("SWIPE_CART_QUANTITY") {
		cfg.CartQuantity = MustGetEnvAsInt(ctx, "SWIPE_CART_QUANTITY")
	}

	return cfg
}
