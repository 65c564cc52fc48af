package domain

// Item is the display-ready projection of a catalog product.
// ID must stay stable across re-fetches of the same product; likes and undo state are keyed by it.
type Item struct {
	ID       string    `json:"id" validate:"required"`
	Title    string    `json:"title"`
	Brand    string    `json:"brand"`
	Image    string    `json:"image"`
	Tags     []string  `json:"tags,omitempty"`
	Category string    `json:"category"`
	Price    float64   `json:"price" validate:"gte=0"`
	Variants []Variant `json:"variants,omitempty" validate:"dive"`
}

// DefaultVariant returns the first variant of the item, if it has any.
func (i Item) DefaultVariant() (Variant, bool) {
	if len(i.Variants) == 0 {
		return Variant{}, false
	}
	return i.Variants[0], true
}

// ItemIDs returns the IDs of the given items, in order.
func ItemIDs(items []Item) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return ids
}

// ScoredItem is an item with its ranking score.
type ScoredItem struct {
	Item  Item `json:"item"`
	Score int  `json:"score"`
}
