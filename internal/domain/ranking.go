package domain

import (
	"sort"
	"strings"
)

const (
	attributeTag      = "tag:"
	attributeBrand    = "brand:"
	attributeCategory = "category:"
)

// AttributeFrequencies maps an attribute key to the number of signal items carrying it.
type AttributeFrequencies map[string]int

// ItemAttributes returns the distinct, normalised attribute keys of an item.
// Tags, brand and category are namespaced so a tag never matches a category of the same name.
func ItemAttributes(item Item) []string {
	seen := make(map[string]struct{}, len(item.Tags)+2)
	attrs := make([]string, 0, len(item.Tags)+2)

	add := func(prefix, value string) {
		value = normaliseAttribute(value)
		if value == "" {
			return
		}
		key := prefix + value
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		attrs = append(attrs, key)
	}

	for _, tag := range item.Tags {
		add(attributeTag, tag)
	}
	add(attributeBrand, item.Brand)
	add(attributeCategory, item.Category)

	return attrs
}

func normaliseAttribute(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// BuildAttributeFrequencies aggregates the attributes of the positive-interaction signal.
func BuildAttributeFrequencies(signal []Item) AttributeFrequencies {
	freq := make(AttributeFrequencies)
	for _, item := range signal {
		for _, attr := range ItemAttributes(item) {
			freq[attr]++
		}
	}
	return freq
}

// Score counts the attribute matches between item and the signal.
// Every attribute weighs the same; each signal item sharing an attribute adds one.
func (f AttributeFrequencies) Score(item Item) int {
	score := 0
	for _, attr := range ItemAttributes(item) {
		score += f[attr]
	}
	return score
}

// ScoreItems scores every candidate against the signal and orders them by descending score.
// Equal scores keep their input order.
func ScoreItems(candidates, signal []Item) []ScoredItem {
	freq := BuildAttributeFrequencies(signal)

	scored := make([]ScoredItem, len(candidates))
	for i, item := range candidates {
		scored[i] = ScoredItem{Item: item, Score: freq.Score(item)}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}

// RankItems returns the candidates permuted by descending relevance to the signal.
//
// The function is total: an empty candidate list yields an empty result and an empty signal
// yields the candidates in their original order. The output is always a fresh slice holding
// the same items as the input.
func RankItems(candidates, signal []Item) []Item {
	ranked := make([]Item, 0, len(candidates))
	if len(signal) == 0 {
		return append(ranked, candidates...)
	}

	for _, s := range ScoreItems(candidates, signal) {
		ranked = append(ranked, s.Item)
	}
	return ranked
}

// RelatedItems ranks candidates against a single anchor item, leaving out the anchor itself
// and anything sharing no attribute with it. A non-positive limit means no limit.
func RelatedItems(anchor Item, candidates []Item, limit int) []Item {
	others := make([]Item, 0, len(candidates))
	for _, c := range candidates {
		if c.ID != anchor.ID {
			others = append(others, c)
		}
	}

	var related []Item
	for _, s := range ScoreItems(others, []Item{anchor}) {
		if s.Score == 0 {
			break
		}
		related = append(related, s.Item)
		if limit > 0 && len(related) == limit {
			break
		}
	}
	return related
}
