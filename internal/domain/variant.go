package domain

import (
	"maps"
	"slices"
	"strings"
)

// OptionName names a product option such as "size" or "color".
type OptionName string

// OptionValue is the chosen value of a product option.
type OptionValue string

// Variant is one purchasable combination of option values for an item.
type Variant struct {
	ID           string                     `json:"id,omitempty"`
	OptionValues map[OptionName]OptionValue `json:"option_values,omitempty"`
}

// Matches reports whether the variant carries exactly the given option selection.
// A nil and an empty selection are treated the same.
func (v Variant) Matches(selection map[OptionName]OptionValue) bool {
	return maps.Equal(v.OptionValues, selection)
}

// Equal reports whether two variants describe the same option combination.
// IDs are compared only when both are set.
func (v Variant) Equal(other Variant) bool {
	if v.ID != "" && other.ID != "" && v.ID != other.ID {
		return false
	}
	return v.Matches(other.OptionValues)
}

// Key returns a canonical string for the option combination, e.g. "color=red;size=m".
// Option order does not affect the key.
func (v Variant) Key() string {
	names := slices.Sorted(maps.Keys(v.OptionValues))

	var sb strings.Builder
	for i, name := range names {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(string(name))
		sb.WriteByte('=')
		sb.WriteString(string(v.OptionValues[name]))
	}
	return sb.String()
}

// FindVariant returns the variant matching the selection exactly.
func FindVariant(variants []Variant, selection map[OptionName]OptionValue) (Variant, bool) {
	for _, v := range variants {
		if v.Matches(selection) {
			return v, true
		}
	}
	return Variant{}, false
}
