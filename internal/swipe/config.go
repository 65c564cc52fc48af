package swipe

import (
	"fmt"

	"github.com/swipeshop/swipe-feed/internal/domain"
)

// Config holds the tunables of a swipe engine.
type Config struct {
	// HorizontalThreshold is the |dx| a drag must exceed to commit as like or dislike.
	HorizontalThreshold float64 `validate:"gt=0"`
	// DownThreshold is the dy a drag must exceed to commit as cart.
	DownThreshold float64 `validate:"gt=0"`
	// UndoDepth is how many committed swipes can be undone in a row.
	UndoDepth int `validate:"min=1"`
	// CartQuantity is the quantity added to the cart by a downward swipe.
	CartQuantity int `validate:"min=1"`

	UserID    string
	SessionID string
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		HorizontalThreshold: 120,
		DownThreshold:       150,
		UndoDepth:           1,
		CartQuantity:        1,
	}
}

// Validate reports whether the configuration can drive an engine.
func (c Config) Validate() error {
	if err := domain.Validate(c); err != nil {
		return fmt.Errorf("invalid swipe config: %w", err)
	}
	return nil
}
