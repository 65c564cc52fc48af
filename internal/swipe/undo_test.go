package swipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swipeshop/swipe-feed/internal/domain"
)

func TestUndoStack(t *testing.T) {
	decision := func(id string) domain.SwipeDecision {
		return domain.SwipeDecision{ItemID: id}
	}

	cases := []struct {
		name     string
		capacity int
		pushes   []string
		wantPops []string
	}{
		{name: "empty", capacity: 1, pushes: nil, wantPops: nil},
		{name: "single_slot_keeps_latest", capacity: 1, pushes: []string{"a", "b", "c"}, wantPops: []string{"c"}},
		{name: "lifo", capacity: 3, pushes: []string{"a", "b", "c"}, wantPops: []string{"c", "b", "a"}},
		{name: "evicts_oldest", capacity: 2, pushes: []string{"a", "b", "c"}, wantPops: []string{"c", "b"}},
		{name: "capacity_floor", capacity: 0, pushes: []string{"a", "b"}, wantPops: []string{"b"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stack := NewUndoStack(tc.capacity)
			for _, id := range tc.pushes {
				stack.Push(decision(id))
			}
			assert.Equal(t, len(tc.wantPops), stack.Len())

			var popped []string
			for {
				d, ok := stack.Pop()
				if !ok {
					break
				}
				popped = append(popped, d.ItemID)
			}
			assert.Equal(t, tc.wantPops, popped)
			assert.Equal(t, 0, stack.Len())
		})
	}
}

func TestUndoStack_PeekAndClear(t *testing.T) {
	stack := NewUndoStack(2)

	_, ok := stack.Peek()
	assert.False(t, ok)

	stack.Push(domain.SwipeDecision{ItemID: "a"})
	stack.Push(domain.SwipeDecision{ItemID: "b"})

	top, ok := stack.Peek()
	require.True(t, ok)
	assert.Equal(t, "b", top.ItemID)
	assert.Equal(t, 2, stack.Len())

	stack.Clear()
	assert.Equal(t, 0, stack.Len())
	assert.Equal(t, 2, stack.Cap())
	_, ok = stack.Pop()
	assert.False(t, ok)
}
