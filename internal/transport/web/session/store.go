// Package session keeps the swipe engines of active clients.
package session

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/swipeshop/swipe-feed/internal/domain"
	"github.com/swipeshop/swipe-feed/internal/swipe"
)

// maxInbox bounds the undelivered notifications kept per session; the oldest are dropped first.
const maxInbox = 50

// Session is one client's swipe engine plus the notifications not yet delivered to it.
type Session struct {
	ID     string
	UserID string

	mu     sync.Mutex
	engine *swipe.Engine

	lastSeen atomic.Int64

	inboxMu sync.Mutex
	inbox   []domain.Notification
}

// Do runs fn with exclusive access to the session's engine.
func (s *Session) Do(fn func(e *swipe.Engine)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.engine)
}

// DrainNotifications returns and forgets the pending notifications, oldest first.
func (s *Session) DrainNotifications() []domain.Notification {
	s.inboxMu.Lock()
	defer s.inboxMu.Unlock()

	drained := s.inbox
	s.inbox = nil
	if drained == nil {
		drained = []domain.Notification{}
	}
	return drained
}

func (s *Session) push(n domain.Notification) {
	s.inboxMu.Lock()
	defer s.inboxMu.Unlock()

	if len(s.inbox) == maxInbox {
		s.inbox = append(s.inbox[:0], s.inbox[1:]...)
	}
	s.inbox = append(s.inbox, n)
}

func (s *Session) touch(now time.Time) {
	s.lastSeen.Store(now.UnixNano())
}

func (s *Session) idleSince() time.Time {
	return time.Unix(0, s.lastSeen.Load())
}

// Store holds the active sessions and delivers notifications to them.
type Store struct {
	Config      swipe.Config
	Dispatcher  swipe.Dispatcher
	IdleTimeout time.Duration

	mu       sync.RWMutex
	sessions map[string]*Session
	now      func() time.Time
}

var _ swipe.Notifier = (*Store)(nil)

func NewStore(cfg swipe.Config, dispatcher swipe.Dispatcher, idleTimeout time.Duration) *Store {
	return &Store{
		Config:      cfg,
		Dispatcher:  dispatcher,
		IdleTimeout: idleTimeout,
		sessions:    make(map[string]*Session),
		now:         time.Now,
	}
}

// Create starts a session for userID over the given ranked queue.
func (s *Store) Create(ctx context.Context, userID string, queue []domain.Item) (*Session, error) {
	id := uuid.NewString()

	cfg := s.Config
	cfg.UserID = userID
	cfg.SessionID = id

	engine, err := swipe.NewEngine(cfg, queue, s.Dispatcher, s)
	if err != nil {
		return nil, fmt.Errorf("creating swipe engine: %w", err)
	}

	sess := &Session{ID: id, UserID: userID, engine: engine}
	sess.touch(s.now())

	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()

	domain.LoggerFromContext(ctx).InfoContext(ctx, "swipe session created",
		"sessionID", id, "userID", userID, "queueLength", len(queue))
	return sess, nil
}

// Get returns the session and marks it as recently used.
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()

	if ok {
		sess.touch(s.now())
	}
	return sess, ok
}

func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Notify queues a notification for its session. Notifications for unknown sessions are dropped.
func (s *Store) Notify(ctx context.Context, n domain.Notification) {
	s.mu.RLock()
	sess, ok := s.sessions[n.SessionID]
	s.mu.RUnlock()

	if !ok {
		domain.LoggerFromContext(ctx).DebugContext(ctx, "dropping notification for unknown session",
			"sessionID", n.SessionID, "itemID", n.ItemID)
		return
	}
	sess.push(n)
}

// EvictIdle removes sessions unused for longer than IdleTimeout and returns how many were removed.
func (s *Store) EvictIdle() int {
	if s.IdleTimeout <= 0 {
		return 0
	}
	cutoff := s.now().Add(-s.IdleTimeout)

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, sess := range s.sessions {
		if sess.idleSince().Before(cutoff) {
			delete(s.sessions, id)
			evicted++
		}
	}
	return evicted
}

// Run evicts idle sessions periodically until ctx is cancelled.
func (s *Store) Run(ctx context.Context) error {
	interval := s.IdleTimeout / 4
	if interval < time.Second {
		interval = time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger := domain.LoggerFromContext(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if evicted := s.EvictIdle(); evicted > 0 {
				logger.InfoContext(ctx, "evicted idle swipe sessions", "count", evicted, "remaining", s.Len())
			}
		}
	}
}
