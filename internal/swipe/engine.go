// Package swipe turns drag gestures over a ranked item queue into like, dislike and cart decisions.
package swipe

import (
	"context"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/swipeshop/swipe-feed/internal/domain"
)

// State is the gesture state of an engine.
type State int

const (
	StateIdle State = iota
	StateDragging
	StateCommitting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateCommitting:
		return "committing"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// MarshalText lets states appear by name in JSON views.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Dispatcher delivers intents to the shop API. Dispatch must not block on the network.
type Dispatcher interface {
	Dispatch(ctx context.Context, intent domain.Intent)
}

// Notifier surfaces non-blocking feedback to the user of a session.
type Notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}

// NullDispatcher drops every intent.
type NullDispatcher struct{}

var _ Dispatcher = NullDispatcher{}

func (NullDispatcher) Dispatch(context.Context, domain.Intent) {}

// NullNotifier drops every notification.
type NullNotifier struct{}

var _ Notifier = NullNotifier{}

func (NullNotifier) Notify(context.Context, domain.Notification) {}

// Preview is presentation feedback for an in-progress drag. Each opacity is in [0, 1].
type Preview struct {
	LikeOpacity    float64 `json:"like_opacity"`
	DislikeOpacity float64 `json:"dislike_opacity"`
}

// Outcome is the result of releasing the pointer.
type Outcome string

const (
	// OutcomeIgnored means there was no drag in progress.
	OutcomeIgnored Outcome = "ignored"
	// OutcomeCancelled means the drag stayed below every threshold and the card snaps back.
	OutcomeCancelled Outcome = "cancelled"
	// OutcomeCommitting means the exit animation started for Direction.
	OutcomeCommitting Outcome = "committing"
)

type GestureOutcome struct {
	Outcome   Outcome          `json:"outcome"`
	Direction domain.Direction `json:"direction,omitempty"`
}

// Commit is a finished swipe.
type Commit struct {
	Decision  domain.SwipeDecision `json:"decision"`
	Exhausted bool                 `json:"exhausted"`
}

// Engine is the card-stack state machine of one swipe session.
//
// An engine is not safe for concurrent use; callers serialise access to it.
type Engine struct {
	cfg        Config
	queue      []domain.Item
	index      int
	state      State
	drag       domain.Displacement
	pending    domain.Direction
	undo       *UndoStack
	undone     bool
	dispatcher Dispatcher
	notifier   Notifier
	now        func() time.Time
}

// NewEngine creates an idle engine positioned on the first item of queue.
// A nil dispatcher or notifier is replaced with its null implementation.
func NewEngine(cfg Config, queue []domain.Item, dispatcher Dispatcher, notifier Notifier) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if dispatcher == nil {
		dispatcher = NullDispatcher{}
	}
	if notifier == nil {
		notifier = NullNotifier{}
	}

	return &Engine{
		cfg:        cfg,
		queue:      slices.Clone(queue),
		undo:       NewUndoStack(cfg.UndoDepth),
		dispatcher: dispatcher,
		notifier:   notifier,
		now:        time.Now,
	}, nil
}

func (e *Engine) State() State {
	return e.state
}

// Index is the queue position of the card currently shown.
func (e *Engine) Index() int {
	return e.index
}

// Len is the length of the queue.
func (e *Engine) Len() int {
	return len(e.queue)
}

// Exhausted reports whether every item of the queue has been swiped.
func (e *Engine) Exhausted() bool {
	return e.index >= len(e.queue)
}

// Current returns the card currently shown.
func (e *Engine) Current() (domain.Item, bool) {
	if e.Exhausted() {
		return domain.Item{}, false
	}
	return e.queue[e.index], true
}

// Queue returns a copy of the items the engine was created with.
func (e *Engine) Queue() []domain.Item {
	return slices.Clone(e.queue)
}

// CanUndo reports whether Undo would succeed right now.
func (e *Engine) CanUndo() bool {
	return e.state == StateIdle && e.undo.Len() > 0
}

// UndoDepth is the number of decisions that can currently be undone.
func (e *Engine) UndoDepth() int {
	return e.undo.Len()
}

// Displacement is the drag vector of the gesture in progress.
func (e *Engine) Displacement() domain.Displacement {
	return e.drag
}

// PointerDown starts a drag on the current card.
func (e *Engine) PointerDown() bool {
	if e.state != StateIdle || e.Exhausted() {
		return false
	}
	e.state = StateDragging
	e.drag = domain.Displacement{}
	return true
}

// PointerMove records the drag vector and returns the commit preview for it.
// Outside a drag it does nothing.
func (e *Engine) PointerMove(d domain.Displacement) Preview {
	if e.state != StateDragging {
		return Preview{}
	}
	e.drag = d
	return e.preview(d)
}

func (e *Engine) preview(d domain.Displacement) Preview {
	ratio := math.Min(math.Abs(d.DX)/e.cfg.HorizontalThreshold, 1)
	switch {
	case d.DX > 0:
		return Preview{LikeOpacity: ratio}
	case d.DX < 0:
		return Preview{DislikeOpacity: ratio}
	default:
		return Preview{}
	}
}

// PointerUp releases the drag. Below every threshold the card snaps back and nothing else changes;
// otherwise the engine starts committing and waits for FinishAnimation.
func (e *Engine) PointerUp() GestureOutcome {
	if e.state != StateDragging {
		return GestureOutcome{Outcome: OutcomeIgnored}
	}

	dir, ok := e.resolve(e.drag)
	e.drag = domain.Displacement{}
	if !ok {
		e.state = StateIdle
		return GestureOutcome{Outcome: OutcomeCancelled}
	}

	e.state = StateCommitting
	e.pending = dir
	return GestureOutcome{Outcome: OutcomeCommitting, Direction: dir}
}

// resolve maps a released drag to a direction. The horizontal axis wins over the vertical one.
func (e *Engine) resolve(d domain.Displacement) (domain.Direction, bool) {
	switch {
	case d.DX > e.cfg.HorizontalThreshold:
		return domain.DirectionLike, true
	case d.DX < -e.cfg.HorizontalThreshold:
		return domain.DirectionDislike, true
	case d.DY > e.cfg.DownThreshold:
		return domain.DirectionCart, true
	default:
		return "", false
	}
}

// FinishAnimation completes a pending commit once the exit animation is over.
func (e *Engine) FinishAnimation(ctx context.Context) (Commit, bool) {
	if e.state != StateCommitting {
		return Commit{}, false
	}
	return e.commit(ctx, e.pending), true
}

// Swipe commits the current card in one step, as the like, dislike and cart buttons do.
func (e *Engine) Swipe(ctx context.Context, dir domain.Direction) (Commit, bool) {
	if _, ok := domain.ParseDirection(string(dir)); !ok {
		return Commit{}, false
	}
	if e.state != StateIdle || e.Exhausted() {
		return Commit{}, false
	}
	e.state = StateCommitting
	return e.commit(ctx, dir), true
}

func (e *Engine) commit(ctx context.Context, dir domain.Direction) Commit {
	logger := domain.LoggerFromContext(ctx)

	item := e.queue[e.index]
	decision := domain.SwipeDecision{
		ItemID:    item.ID,
		Item:      item,
		Direction: dir,
		Index:     e.index,
		Timestamp: e.now(),
	}

	e.index++
	e.state = StateIdle
	e.pending = ""
	// A swipe after an undo starts a new history.
	if e.undone {
		e.undo.Clear()
		e.undone = false
	}
	e.undo.Push(decision)

	e.dispatcher.Dispatch(ctx, e.intentFor(domain.IntentForDirection(dir), item))

	exhausted := e.Exhausted()
	if exhausted {
		e.undo.Clear()
	}

	logger.DebugContext(ctx, "swipe committed",
		"itemID", item.ID, "direction", dir, "index", decision.Index, "exhausted", exhausted)

	return Commit{Decision: decision, Exhausted: exhausted}
}

// Undo reverses the most recent swipe and shows its card again.
// It returns false when there is nothing to undo or a gesture is in progress.
func (e *Engine) Undo(ctx context.Context) (domain.SwipeDecision, bool) {
	if e.state != StateIdle {
		return domain.SwipeDecision{}, false
	}
	decision, ok := e.undo.Pop()
	if !ok {
		return domain.SwipeDecision{}, false
	}

	logger := domain.LoggerFromContext(ctx)
	e.index = decision.Index
	e.undone = true

	switch decision.Direction {
	case domain.DirectionLike:
		e.dispatcher.Dispatch(ctx, e.intentFor(domain.IntentUnlike, decision.Item))
	case domain.DirectionCart:
		logger.WarnContext(ctx, "undo of cart swipe leaves the cart unchanged", "itemID", decision.ItemID)
		e.notifier.Notify(ctx, domain.Notification{
			SessionID: e.cfg.SessionID,
			ItemID:    decision.ItemID,
			Kind:      domain.IntentAddToCart,
			Message:   fmt.Sprintf("%s is still in your cart", displayName(decision.Item)),
			CreatedAt: e.now(),
		})
	}

	logger.DebugContext(ctx, "swipe undone",
		"itemID", decision.ItemID, "direction", decision.Direction, "index", decision.Index)

	return decision, true
}

func (e *Engine) intentFor(kind domain.IntentKind, item domain.Item) domain.Intent {
	intent := domain.Intent{
		Kind:      kind,
		UserID:    e.cfg.UserID,
		SessionID: e.cfg.SessionID,
		ItemID:    item.ID,
		CreatedAt: e.now(),
	}
	if kind == domain.IntentAddToCart {
		variant, _ := item.DefaultVariant()
		intent.CartLine = domain.CartLine{
			ItemID:   item.ID,
			Variant:  variant,
			Quantity: e.cfg.CartQuantity,
		}
	}
	return intent
}

func displayName(item domain.Item) string {
	if item.Title != "" {
		return item.Title
	}
	return item.ID
}
