package domain

import (
	"errors"
	"time"
)

// Direction is the resolved outcome of a committed swipe.
type Direction string

const (
	// DirectionLike is a rightward swipe.
	DirectionLike Direction = "like"
	// DirectionDislike is a leftward swipe.
	DirectionDislike Direction = "dislike"
	// DirectionCart is a downward swipe.
	DirectionCart Direction = "cart"
)

// ParseDirection parses the wire form of a direction.
func ParseDirection(s string) (Direction, bool) {
	switch d := Direction(s); d {
	case DirectionLike, DirectionDislike, DirectionCart:
		return d, true
	default:
		return "", false
	}
}

// Displacement is the drag vector from the pointer-down position, in screen coordinates.
// Positive DX is rightward and positive DY is downward.
type Displacement struct {
	DX float64 `json:"dx"`
	DY float64 `json:"dy"`
}

// SwipeDecision records a committed swipe. It lives only in the engine's undo stack.
type SwipeDecision struct {
	ItemID    string    `json:"item_id"`
	Item      Item      `json:"item"`
	Direction Direction `json:"direction"`
	Index     int       `json:"index"`
	Timestamp time.Time `json:"timestamp"`
}

// IntentKind is the side effect requested from the shop API.
type IntentKind string

const (
	IntentLike      IntentKind = "like"
	IntentUnlike    IntentKind = "unlike"
	IntentDislike   IntentKind = "dislike"
	IntentAddToCart IntentKind = "add_to_cart"
)

// Intent is a fire-and-forget side effect emitted by a swipe or an undo.
type Intent struct {
	Kind      IntentKind `json:"kind"`
	UserID    string     `json:"user_id"`
	SessionID string     `json:"session_id"`
	ItemID    string     `json:"item_id"`
	CartLine  CartLine   `json:"cart_line,omitzero"`
	CreatedAt time.Time  `json:"created_at"`
}

// IntentForDirection maps a committed direction to the intent it dispatches.
func IntentForDirection(d Direction) IntentKind {
	switch d {
	case DirectionLike:
		return IntentLike
	case DirectionCart:
		return IntentAddToCart
	default:
		return IntentDislike
	}
}

// Notification is non-blocking feedback for the user, such as a failed dispatch.
type Notification struct {
	SessionID string     `json:"-"`
	ItemID    string     `json:"item_id"`
	Kind      IntentKind `json:"kind"`
	Message   string     `json:"message"`
	CreatedAt time.Time  `json:"created_at"`
}

var (
	// ErrDispatchFailed marks a swipe side effect the shop API did not accept.
	ErrDispatchFailed = errors.New("dispatch failed")
	// ErrDispatchQueueFull is reported when an intent is dropped because the dispatch buffer is full.
	ErrDispatchQueueFull = errors.New("dispatch queue full")
	// ErrUnknownIntentKind is returned for intents with an unrecognised kind.
	ErrUnknownIntentKind = errors.New("unknown intent kind")
	// ErrItemNotFound is returned when an item is not present in the catalog.
	ErrItemNotFound = errors.New("item not found")
)
