// Package memory is an in-process shop backend, used for local development and demos.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"sync"

	"github.com/swipeshop/swipe-feed/internal/datasources"
	"github.com/swipeshop/swipe-feed/internal/domain"
)

type likeKey struct {
	userID string
	itemID string
}

type Store struct {
	mu      sync.RWMutex
	catalog []domain.Item
	likes   map[likeKey]int64
	seq     int64
	carts   map[string][]domain.CartLine
}

var _ datasources.ShopRepository = (*Store)(nil)

func NewStore(catalog []domain.Item) *Store {
	return &Store{
		catalog: slices.Clone(catalog),
		likes:   make(map[likeKey]int64),
		carts:   make(map[string][]domain.CartLine),
	}
}

// LoadCatalogFile reads a JSON array of items, as used to seed a Store.
func LoadCatalogFile(path string) ([]domain.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog seed file: %w", err)
	}

	var items []domain.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parsing catalog seed file: %w", err)
	}
	return items, nil
}

func (s *Store) FetchCatalog(_ context.Context) ([]domain.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.catalog), nil
}

// FetchPastPositiveInteractions returns the user's liked items, oldest like first.
func (s *Store) FetchPastPositiveInteractions(_ context.Context, userID string) ([]domain.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	type likedItem struct {
		item domain.Item
		seq  int64
	}
	var liked []likedItem
	for _, item := range s.catalog {
		if seq, ok := s.likes[likeKey{userID: userID, itemID: item.ID}]; ok {
			liked = append(liked, likedItem{item: item, seq: seq})
		}
	}
	slices.SortFunc(liked, func(a, b likedItem) int {
		return int(a.seq - b.seq)
	})

	items := make([]domain.Item, 0, len(liked))
	for _, l := range liked {
		items = append(items, l.item)
	}
	return items, nil
}

func (s *Store) LikeItem(_ context.Context, userID, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasItem(itemID) {
		return fmt.Errorf("liking item: %w: %s", domain.ErrItemNotFound, itemID)
	}

	key := likeKey{userID: userID, itemID: itemID}
	if _, ok := s.likes[key]; ok {
		return nil
	}
	s.seq++
	s.likes[key] = s.seq
	return nil
}

func (s *Store) UnlikeItem(_ context.Context, userID, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.likes, likeKey{userID: userID, itemID: itemID})
	return nil
}

func (s *Store) AddToCart(_ context.Context, userID string, line domain.CartLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasItem(line.ItemID) {
		return fmt.Errorf("adding to cart: %w: %s", domain.ErrItemNotFound, line.ItemID)
	}

	s.carts[userID] = domain.MergeCartLine(s.carts[userID], line)
	return nil
}

// Cart returns the user's cart lines in the order they were first added.
func (s *Store) Cart(userID string) []domain.CartLine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.carts[userID])
}

func (s *Store) hasItem(itemID string) bool {
	return slices.ContainsFunc(s.catalog, func(item domain.Item) bool {
		return item.ID == itemID
	})
}
