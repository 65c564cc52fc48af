package domain

// CartLine is a quantity of one item variant in a user's cart.
type CartLine struct {
	ItemID   string  `json:"item_id" validate:"required"`
	Variant  Variant `json:"variant"`
	Quantity int     `json:"quantity" validate:"gt=0"`
}

// MergeCartLine adds line to lines, increasing the quantity of an existing line for the same
// item and an equal variant instead of appending a duplicate. The input slice is not modified.
func MergeCartLine(lines []CartLine, line CartLine) []CartLine {
	merged := make([]CartLine, len(lines), len(lines)+1)
	copy(merged, lines)

	for i := range merged {
		if merged[i].ItemID == line.ItemID && merged[i].Variant.Equal(line.Variant) {
			merged[i].Quantity += line.Quantity
			return merged
		}
	}

	return append(merged, line)
}
