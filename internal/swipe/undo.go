package swipe

import "github.com/swipeshop/swipe-feed/internal/domain"

// UndoStack is a bounded LIFO of committed swipes.
// Pushing onto a full stack evicts the oldest decision.
type UndoStack struct {
	capacity  int
	decisions []domain.SwipeDecision
}

// NewUndoStack creates an undo stack holding at most capacity decisions.
// A capacity below one is treated as one.
func NewUndoStack(capacity int) *UndoStack {
	if capacity < 1 {
		capacity = 1
	}
	return &UndoStack{
		capacity:  capacity,
		decisions: make([]domain.SwipeDecision, 0, capacity),
	}
}

func (s *UndoStack) Push(d domain.SwipeDecision) {
	if len(s.decisions) == s.capacity {
		copy(s.decisions, s.decisions[1:])
		s.decisions = s.decisions[:len(s.decisions)-1]
	}
	s.decisions = append(s.decisions, d)
}

// Pop removes and returns the most recent decision.
func (s *UndoStack) Pop() (domain.SwipeDecision, bool) {
	if len(s.decisions) == 0 {
		return domain.SwipeDecision{}, false
	}
	last := s.decisions[len(s.decisions)-1]
	s.decisions[len(s.decisions)-1] = domain.SwipeDecision{}
	s.decisions = s.decisions[:len(s.decisions)-1]
	return last, true
}

// Peek returns the most recent decision without removing it.
func (s *UndoStack) Peek() (domain.SwipeDecision, bool) {
	if len(s.decisions) == 0 {
		return domain.SwipeDecision{}, false
	}
	return s.decisions[len(s.decisions)-1], true
}

func (s *UndoStack) Len() int {
	return len(s.decisions)
}

func (s *UndoStack) Cap() int {
	return s.capacity
}

func (s *UndoStack) Clear() {
	clear(s.decisions)
	s.decisions = s.decisions[:0]
}
