package swipe

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swipeshop/swipe-feed/internal/domain"
)

var testNow = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

type recordingDispatcher struct {
	intents []domain.Intent
}

func (d *recordingDispatcher) Dispatch(_ context.Context, intent domain.Intent) {
	d.intents = append(d.intents, intent)
}

func (d *recordingDispatcher) kinds() []domain.IntentKind {
	kinds := make([]domain.IntentKind, 0, len(d.intents))
	for _, intent := range d.intents {
		kinds = append(kinds, intent.Kind)
	}
	return kinds
}

type recordingNotifier struct {
	mu            sync.Mutex
	notifications []domain.Notification
}

func (n *recordingNotifier) Notify(_ context.Context, notification domain.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notifications = append(n.notifications, notification)
}

func (n *recordingNotifier) all() []domain.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]domain.Notification(nil), n.notifications...)
}

func testContext() context.Context {
	return domain.ContextWithLogger(context.Background(), slog.New(slog.DiscardHandler))
}

func testQueue() []domain.Item {
	return []domain.Item{
		{ID: "item1", Title: "Denim jacket", Tags: []string{"denim"}, Variants: []domain.Variant{
			{ID: "item1-m", OptionValues: map[domain.OptionName]domain.OptionValue{"size": "m"}},
			{ID: "item1-l", OptionValues: map[domain.OptionName]domain.OptionValue{"size": "l"}},
		}},
		{ID: "item2", Title: "Linen shirt"},
		{ID: "item3", Title: "Wool scarf"},
	}
}

func newTestEngine(t *testing.T, cfg Config) (*Engine, *recordingDispatcher, *recordingNotifier) {
	t.Helper()

	dispatcher := &recordingDispatcher{}
	notifier := &recordingNotifier{}
	cfg.UserID = "user1"
	cfg.SessionID = "session1"

	engine, err := NewEngine(cfg, testQueue(), dispatcher, notifier)
	require.NoError(t, err)
	engine.now = func() time.Time { return testNow }

	return engine, dispatcher, notifier
}

func drag(t *testing.T, e *Engine, d domain.Displacement) GestureOutcome {
	t.Helper()
	require.True(t, e.PointerDown())
	e.PointerMove(d)
	return e.PointerUp()
}

func TestNewEngine_InvalidConfig(t *testing.T) {
	cases := []struct {
		name   string
		modify func(*Config)
	}{
		{name: "zero_horizontal_threshold", modify: func(c *Config) { c.HorizontalThreshold = 0 }},
		{name: "negative_down_threshold", modify: func(c *Config) { c.DownThreshold = -1 }},
		{name: "zero_undo_depth", modify: func(c *Config) { c.UndoDepth = 0 }},
		{name: "zero_cart_quantity", modify: func(c *Config) { c.CartQuantity = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.modify(&cfg)

			_, err := NewEngine(cfg, testQueue(), nil, nil)
			require.Error(t, err)
		})
	}
}

func TestEngine_InitialState(t *testing.T) {
	engine, _, _ := newTestEngine(t, DefaultConfig())

	assert.Equal(t, StateIdle, engine.State())
	assert.Equal(t, 0, engine.Index())
	assert.Equal(t, 3, engine.Len())
	assert.False(t, engine.Exhausted())
	assert.False(t, engine.CanUndo())

	current, ok := engine.Current()
	require.True(t, ok)
	assert.Equal(t, "item1", current.ID)
}

func TestEngine_EmptyQueueIsExhausted(t *testing.T) {
	engine, err := NewEngine(DefaultConfig(), nil, nil, nil)
	require.NoError(t, err)

	assert.True(t, engine.Exhausted())
	assert.False(t, engine.PointerDown())
	_, ok := engine.Current()
	assert.False(t, ok)
	_, ok = engine.Swipe(testContext(), domain.DirectionLike)
	assert.False(t, ok)
}

func TestEngine_CancelBelowThreshold(t *testing.T) {
	cases := []struct {
		name string
		d    domain.Displacement
	}{
		{name: "no_movement", d: domain.Displacement{}},
		{name: "right_at_threshold", d: domain.Displacement{DX: 120}},
		{name: "left_at_threshold", d: domain.Displacement{DX: -120}},
		{name: "down_at_threshold", d: domain.Displacement{DY: 150}},
		{name: "far_up", d: domain.Displacement{DY: -500}},
		{name: "diagonal_below_both", d: domain.Displacement{DX: 100, DY: 140}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			engine, dispatcher, notifier := newTestEngine(t, DefaultConfig())

			outcome := drag(t, engine, tc.d)

			assert.Equal(t, GestureOutcome{Outcome: OutcomeCancelled}, outcome)
			assert.Equal(t, StateIdle, engine.State())
			assert.Equal(t, 0, engine.Index())
			assert.Equal(t, 0, engine.UndoDepth())
			assert.Equal(t, domain.Displacement{}, engine.Displacement())
			assert.Empty(t, dispatcher.intents)
			assert.Empty(t, notifier.all())

			_, ok := engine.FinishAnimation(testContext())
			assert.False(t, ok)
		})
	}
}

func TestEngine_CommitDirections(t *testing.T) {
	cases := []struct {
		name          string
		d             domain.Displacement
		wantDirection domain.Direction
		wantIntent    domain.IntentKind
	}{
		{name: "right", d: domain.Displacement{DX: 121}, wantDirection: domain.DirectionLike, wantIntent: domain.IntentLike},
		{name: "left", d: domain.Displacement{DX: -121}, wantDirection: domain.DirectionDislike, wantIntent: domain.IntentDislike},
		{name: "down", d: domain.Displacement{DY: 151}, wantDirection: domain.DirectionCart, wantIntent: domain.IntentAddToCart},
		{name: "down_with_small_dx", d: domain.Displacement{DX: 60, DY: 300}, wantDirection: domain.DirectionCart, wantIntent: domain.IntentAddToCart},
		{name: "right_beats_down", d: domain.Displacement{DX: 200, DY: 400}, wantDirection: domain.DirectionLike, wantIntent: domain.IntentLike},
		{name: "left_beats_down", d: domain.Displacement{DX: -200, DY: 400}, wantDirection: domain.DirectionDislike, wantIntent: domain.IntentDislike},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			engine, dispatcher, _ := newTestEngine(t, DefaultConfig())

			outcome := drag(t, engine, tc.d)
			assert.Equal(t, GestureOutcome{Outcome: OutcomeCommitting, Direction: tc.wantDirection}, outcome)
			assert.Equal(t, StateCommitting, engine.State())
			assert.Empty(t, dispatcher.intents, "nothing is dispatched before the animation finishes")

			commit, ok := engine.FinishAnimation(testContext())
			require.True(t, ok)

			assert.Equal(t, domain.SwipeDecision{
				ItemID:    "item1",
				Item:      testQueue()[0],
				Direction: tc.wantDirection,
				Index:     0,
				Timestamp: testNow,
			}, commit.Decision)
			assert.False(t, commit.Exhausted)
			assert.Equal(t, StateIdle, engine.State())
			assert.Equal(t, 1, engine.Index())
			assert.Equal(t, 1, engine.UndoDepth())

			require.Len(t, dispatcher.intents, 1)
			intent := dispatcher.intents[0]
			assert.Equal(t, tc.wantIntent, intent.Kind)
			assert.Equal(t, "item1", intent.ItemID)
			assert.Equal(t, "user1", intent.UserID)
			assert.Equal(t, "session1", intent.SessionID)

			_, ok = engine.FinishAnimation(testContext())
			assert.False(t, ok, "a commit finishes only once")
			assert.Len(t, dispatcher.intents, 1)
		})
	}
}

func TestEngine_CartIntentUsesDefaultVariant(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CartQuantity = 2
	engine, dispatcher, _ := newTestEngine(t, cfg)

	_, ok := engine.Swipe(testContext(), domain.DirectionCart)
	require.True(t, ok)

	require.Len(t, dispatcher.intents, 1)
	assert.Equal(t, domain.CartLine{
		ItemID:   "item1",
		Variant:  testQueue()[0].Variants[0],
		Quantity: 2,
	}, dispatcher.intents[0].CartLine)
}

func TestEngine_Preview(t *testing.T) {
	cases := []struct {
		name string
		d    domain.Displacement
		want Preview
	}{
		{name: "still", d: domain.Displacement{}, want: Preview{}},
		{name: "half_right", d: domain.Displacement{DX: 60}, want: Preview{LikeOpacity: 0.5}},
		{name: "half_left", d: domain.Displacement{DX: -60}, want: Preview{DislikeOpacity: 0.5}},
		{name: "past_right", d: domain.Displacement{DX: 400}, want: Preview{LikeOpacity: 1}},
		{name: "vertical_only", d: domain.Displacement{DY: 200}, want: Preview{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			engine, _, _ := newTestEngine(t, DefaultConfig())
			require.True(t, engine.PointerDown())

			assert.Equal(t, tc.want, engine.PointerMove(tc.d))
			assert.Equal(t, StateDragging, engine.State())
		})
	}
}

func TestEngine_GestureGuards(t *testing.T) {
	ctx := testContext()
	engine, dispatcher, _ := newTestEngine(t, DefaultConfig())

	assert.Equal(t, Preview{}, engine.PointerMove(domain.Displacement{DX: 500}), "move without a drag")
	assert.Equal(t, GestureOutcome{Outcome: OutcomeIgnored}, engine.PointerUp())
	_, ok := engine.FinishAnimation(ctx)
	assert.False(t, ok)

	require.True(t, engine.PointerDown())
	assert.False(t, engine.PointerDown(), "already dragging")
	_, ok = engine.Swipe(ctx, domain.DirectionLike)
	assert.False(t, ok, "button swipe during a drag")

	engine.PointerMove(domain.Displacement{DX: 500})
	engine.PointerUp()
	require.Equal(t, StateCommitting, engine.State())
	assert.False(t, engine.PointerDown(), "committing")
	_, ok = engine.Undo(ctx)
	assert.False(t, ok, "undo while committing")

	_, ok = engine.Swipe(ctx, domain.Direction("up"))
	assert.False(t, ok)
	assert.Empty(t, dispatcher.intents)
}

func TestEngine_UndoAfterLike(t *testing.T) {
	ctx := testContext()
	engine, dispatcher, _ := newTestEngine(t, DefaultConfig())

	drag(t, engine, domain.Displacement{DX: 200})
	_, ok := engine.FinishAnimation(ctx)
	require.True(t, ok)

	assert.Equal(t, 1, engine.Index())
	assert.True(t, engine.CanUndo())
	current, _ := engine.Current()
	assert.Equal(t, "item2", current.ID)

	decision, ok := engine.Undo(ctx)
	require.True(t, ok)
	assert.Equal(t, "item1", decision.ItemID)
	assert.Equal(t, domain.DirectionLike, decision.Direction)

	assert.Equal(t, 0, engine.Index())
	assert.False(t, engine.CanUndo())
	current, _ = engine.Current()
	assert.Equal(t, testQueue()[0], current)

	assert.Equal(t, []domain.IntentKind{domain.IntentLike, domain.IntentUnlike}, dispatcher.kinds())

	_, ok = engine.Undo(ctx)
	assert.False(t, ok)
	assert.Equal(t, 0, engine.Index())
	assert.Len(t, dispatcher.intents, 2)
}

func TestEngine_UndoDislikeDispatchesNothing(t *testing.T) {
	ctx := testContext()
	engine, dispatcher, notifier := newTestEngine(t, DefaultConfig())

	_, ok := engine.Swipe(ctx, domain.DirectionDislike)
	require.True(t, ok)

	_, ok = engine.Undo(ctx)
	require.True(t, ok)

	assert.Equal(t, 0, engine.Index())
	assert.Equal(t, []domain.IntentKind{domain.IntentDislike}, dispatcher.kinds())
	assert.Empty(t, notifier.all())
}

func TestEngine_UndoCartNotifies(t *testing.T) {
	ctx := testContext()
	engine, dispatcher, notifier := newTestEngine(t, DefaultConfig())

	_, ok := engine.Swipe(ctx, domain.DirectionCart)
	require.True(t, ok)

	_, ok = engine.Undo(ctx)
	require.True(t, ok)

	assert.Equal(t, 0, engine.Index())
	assert.Equal(t, []domain.IntentKind{domain.IntentAddToCart}, dispatcher.kinds())

	notifications := notifier.all()
	require.Len(t, notifications, 1)
	assert.Equal(t, "session1", notifications[0].SessionID)
	assert.Equal(t, "item1", notifications[0].ItemID)
	assert.Equal(t, domain.IntentAddToCart, notifications[0].Kind)
	assert.Contains(t, notifications[0].Message, "Denim jacket")
}

func TestEngine_SingleUndoSlotKeepsLatest(t *testing.T) {
	ctx := testContext()
	engine, _, _ := newTestEngine(t, DefaultConfig())

	_, ok := engine.Swipe(ctx, domain.DirectionLike)
	require.True(t, ok)
	_, ok = engine.Swipe(ctx, domain.DirectionDislike)
	require.True(t, ok)
	assert.Equal(t, 1, engine.UndoDepth())

	decision, ok := engine.Undo(ctx)
	require.True(t, ok)
	assert.Equal(t, "item2", decision.ItemID)
	assert.Equal(t, 1, engine.Index())

	_, ok = engine.Undo(ctx)
	assert.False(t, ok)
	assert.Equal(t, 1, engine.Index())
}

func TestEngine_DeepUndoIsLIFO(t *testing.T) {
	ctx := testContext()
	cfg := DefaultConfig()
	cfg.UndoDepth = 3
	engine, dispatcher, _ := newTestEngine(t, cfg)

	_, ok := engine.Swipe(ctx, domain.DirectionLike)
	require.True(t, ok)
	_, ok = engine.Swipe(ctx, domain.DirectionDislike)
	require.True(t, ok)
	assert.Equal(t, 2, engine.UndoDepth())

	first, ok := engine.Undo(ctx)
	require.True(t, ok)
	assert.Equal(t, "item2", first.ItemID)
	assert.Equal(t, 1, engine.Index())

	second, ok := engine.Undo(ctx)
	require.True(t, ok)
	assert.Equal(t, "item1", second.ItemID)
	assert.Equal(t, 0, engine.Index())

	_, ok = engine.Undo(ctx)
	assert.False(t, ok)

	assert.Equal(t, []domain.IntentKind{
		domain.IntentLike, domain.IntentDislike, domain.IntentUnlike,
	}, dispatcher.kinds())
}

func TestEngine_SwipeAfterUndoStartsNewHistory(t *testing.T) {
	ctx := testContext()
	cfg := DefaultConfig()
	cfg.UndoDepth = 3
	engine, _, _ := newTestEngine(t, cfg)

	_, ok := engine.Swipe(ctx, domain.DirectionLike)
	require.True(t, ok)
	_, ok = engine.Swipe(ctx, domain.DirectionDislike)
	require.True(t, ok)

	undone, ok := engine.Undo(ctx)
	require.True(t, ok)
	assert.Equal(t, "item2", undone.ItemID)
	assert.Equal(t, 1, engine.UndoDepth())

	_, ok = engine.Swipe(ctx, domain.DirectionCart)
	require.True(t, ok)
	assert.Equal(t, 1, engine.UndoDepth())

	last, ok := engine.Undo(ctx)
	require.True(t, ok)
	assert.Equal(t, "item2", last.ItemID)
	assert.Equal(t, domain.DirectionCart, last.Direction)

	_, ok = engine.Undo(ctx)
	assert.False(t, ok, "the like before the first undo is no longer reachable")
	assert.Equal(t, 1, engine.Index())
}

func TestEngine_Exhaustion(t *testing.T) {
	ctx := testContext()
	cfg := DefaultConfig()
	cfg.UndoDepth = 5
	engine, dispatcher, _ := newTestEngine(t, cfg)

	for i := range 2 {
		commit, ok := engine.Swipe(ctx, domain.DirectionDislike)
		require.True(t, ok)
		assert.False(t, commit.Exhausted, "swipe %d", i)
	}

	drag(t, engine, domain.Displacement{DX: 300})
	commit, ok := engine.FinishAnimation(ctx)
	require.True(t, ok)
	assert.True(t, commit.Exhausted)
	assert.Equal(t, "item3", commit.Decision.ItemID)

	assert.True(t, engine.Exhausted())
	assert.Equal(t, 3, engine.Index())
	assert.False(t, engine.CanUndo(), "exhaustion clears the undo stack")
	assert.False(t, engine.PointerDown())
	_, ok = engine.Current()
	assert.False(t, ok)
	_, ok = engine.Swipe(ctx, domain.DirectionLike)
	assert.False(t, ok)
	_, ok = engine.Undo(ctx)
	assert.False(t, ok)

	assert.Len(t, dispatcher.intents, 3)
}

func TestEngine_QueueIsCopied(t *testing.T) {
	queue := testQueue()
	engine, err := NewEngine(DefaultConfig(), queue, nil, nil)
	require.NoError(t, err)

	queue[0].ID = "changed"
	current, _ := engine.Current()
	assert.Equal(t, "item1", current.ID)

	copied := engine.Queue()
	copied[1].ID = "changed"
	assert.Equal(t, "item2", engine.Queue()[1].ID)
}
