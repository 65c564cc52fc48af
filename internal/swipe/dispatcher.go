package swipe

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/swipeshop/swipe-feed/internal/command"
	"github.com/swipeshop/swipe-feed/internal/domain"
)

const (
	outcomeApplied = "applied"
	outcomeFailed  = "failed"
	outcomeDropped = "dropped"
)

var intentsDispatched = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "swipe_intents_dispatched_total",
		Help: "Swipe intents handled by the async dispatcher, by kind and outcome",
	},
	[]string{"kind", "outcome"},
)

func init() {
	prometheus.MustRegister(intentsDispatched)
}

type queuedIntent struct {
	ctx    context.Context
	intent domain.Intent
}

// AsyncDispatcher applies intents on a single background worker, in the order they were dispatched.
//
// Failed intents are not retried. The user is told through the Notifier instead and the local swipe
// stands. When the buffer is full the intent is dropped and reported the same way.
type AsyncDispatcher struct {
	Applier      command.Command[domain.Intent, command.Empty]
	Notifier     Notifier
	ApplyTimeout time.Duration

	intents chan queuedIntent
}

var _ Dispatcher = (*AsyncDispatcher)(nil)

func NewAsyncDispatcher(
	applier command.Command[domain.Intent, command.Empty],
	notifier Notifier,
	bufferSize int,
) *AsyncDispatcher {
	if notifier == nil {
		notifier = NullNotifier{}
	}
	if bufferSize < 1 {
		bufferSize = 1
	}
	return &AsyncDispatcher{
		Applier:      applier,
		Notifier:     notifier,
		ApplyTimeout: 10 * time.Second,
		intents:      make(chan queuedIntent, bufferSize),
	}
}

// Dispatch queues the intent and returns immediately.
// Dislikes never reach the shop, so they are counted as applied without taking a buffer slot.
func (d *AsyncDispatcher) Dispatch(ctx context.Context, intent domain.Intent) {
	if intent.Kind == domain.IntentDislike {
		intentsDispatched.WithLabelValues(string(intent.Kind), outcomeApplied).Inc()
		return
	}

	// The request that produced the intent finishes long before the intent is applied,
	// so only its values are kept.
	q := queuedIntent{ctx: context.WithoutCancel(ctx), intent: intent}

	select {
	case d.intents <- q:
	default:
		intentsDispatched.WithLabelValues(string(intent.Kind), outcomeDropped).Inc()
		domain.LoggerFromContext(ctx).WarnContext(ctx, "dispatch queue full, dropping intent",
			"kind", intent.Kind, "itemID", intent.ItemID)
		d.notifyFailure(ctx, intent, domain.ErrDispatchQueueFull)
	}
}

// Run applies queued intents until ctx is cancelled.
func (d *AsyncDispatcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			if pending := len(d.intents); pending > 0 {
				domain.LoggerFromContext(ctx).WarnContext(context.WithoutCancel(ctx),
					"dispatcher stopping with intents still queued", "pending", pending)
			}
			return nil
		case q := <-d.intents:
			d.apply(q)
		}
	}
}

func (d *AsyncDispatcher) apply(q queuedIntent) {
	ctx := q.ctx
	if d.ApplyTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.ApplyTimeout)
		defer cancel()
	}

	_, err := d.Applier.Execute(ctx, q.intent)
	if err != nil {
		intentsDispatched.WithLabelValues(string(q.intent.Kind), outcomeFailed).Inc()
		domain.LoggerFromContext(ctx).WarnContext(ctx, "failed to apply swipe intent",
			"error", err, "kind", q.intent.Kind, "itemID", q.intent.ItemID)
		d.notifyFailure(q.ctx, q.intent, err)
		return
	}
	intentsDispatched.WithLabelValues(string(q.intent.Kind), outcomeApplied).Inc()
}

func (d *AsyncDispatcher) notifyFailure(ctx context.Context, intent domain.Intent, err error) {
	d.Notifier.Notify(ctx, domain.Notification{
		SessionID: intent.SessionID,
		ItemID:    intent.ItemID,
		Kind:      intent.Kind,
		Message:   failureMessage(intent.Kind, err),
		CreatedAt: time.Now(),
	})
}

func failureMessage(kind domain.IntentKind, err error) string {
	var action string
	switch kind {
	case domain.IntentLike:
		action = "save your like"
	case domain.IntentUnlike:
		action = "remove your like"
	case domain.IntentAddToCart:
		action = "add the item to your cart"
	default:
		action = "save your choice"
	}

	if errors.Is(err, domain.ErrDispatchQueueFull) {
		return fmt.Sprintf("Too many swipes at once, we couldn't %s", action)
	}
	return fmt.Sprintf("We couldn't %s, please try again later", action)
}
