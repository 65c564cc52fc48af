package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariant_Matches(t *testing.T) {
	v := Variant{ID: "v1", OptionValues: map[OptionName]OptionValue{"size": "m", "color": "red"}}

	cases := []struct {
		name      string
		selection map[OptionName]OptionValue
		want      bool
	}{
		{name: "exact", selection: map[OptionName]OptionValue{"color": "red", "size": "m"}, want: true},
		{name: "different_value", selection: map[OptionName]OptionValue{"color": "blue", "size": "m"}, want: false},
		{name: "subset", selection: map[OptionName]OptionValue{"size": "m"}, want: false},
		{name: "superset", selection: map[OptionName]OptionValue{"size": "m", "color": "red", "fit": "slim"}, want: false},
		{name: "empty", selection: nil, want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, v.Matches(tc.selection))
		})
	}

	assert.True(t, Variant{}.Matches(nil))
	assert.True(t, Variant{}.Matches(map[OptionName]OptionValue{}))
}

func TestVariant_Equal(t *testing.T) {
	opts := map[OptionName]OptionValue{"size": "s"}

	assert.True(t, Variant{ID: "a", OptionValues: opts}.Equal(Variant{ID: "a", OptionValues: opts}))
	assert.True(t, Variant{OptionValues: opts}.Equal(Variant{ID: "a", OptionValues: opts}))
	assert.False(t, Variant{ID: "a", OptionValues: opts}.Equal(Variant{ID: "b", OptionValues: opts}))
	assert.False(t, Variant{OptionValues: opts}.Equal(Variant{}))
}

func TestVariant_Key(t *testing.T) {
	v := Variant{OptionValues: map[OptionName]OptionValue{"size": "m", "color": "red", "fit": "slim"}}

	assert.Equal(t, "color=red;fit=slim;size=m", v.Key())
	assert.Equal(t, "", Variant{}.Key())
}

func TestFindVariant(t *testing.T) {
	variants := []Variant{
		{ID: "s-red", OptionValues: map[OptionName]OptionValue{"size": "s", "color": "red"}},
		{ID: "m-red", OptionValues: map[OptionName]OptionValue{"size": "m", "color": "red"}},
	}

	found, ok := FindVariant(variants, map[OptionName]OptionValue{"color": "red", "size": "m"})
	require.True(t, ok)
	assert.Equal(t, "m-red", found.ID)

	_, ok = FindVariant(variants, map[OptionName]OptionValue{"color": "red"})
	assert.False(t, ok)
}

func TestMergeCartLine(t *testing.T) {
	red := Variant{OptionValues: map[OptionName]OptionValue{"color": "red", "size": "m"}}
	redReordered := Variant{OptionValues: map[OptionName]OptionValue{"size": "m", "color": "red"}}
	blue := Variant{OptionValues: map[OptionName]OptionValue{"color": "blue", "size": "m"}}

	lines := []CartLine{{ItemID: "shirt", Variant: red, Quantity: 1}}

	cases := []struct {
		name     string
		line     CartLine
		expected []CartLine
	}{
		{
			name: "same_variant_merges",
			line: CartLine{ItemID: "shirt", Variant: redReordered, Quantity: 2},
			expected: []CartLine{
				{ItemID: "shirt", Variant: red, Quantity: 3},
			},
		},
		{
			name: "different_variant_appends",
			line: CartLine{ItemID: "shirt", Variant: blue, Quantity: 1},
			expected: []CartLine{
				{ItemID: "shirt", Variant: red, Quantity: 1},
				{ItemID: "shirt", Variant: blue, Quantity: 1},
			},
		},
		{
			name: "different_item_appends",
			line: CartLine{ItemID: "scarf", Quantity: 1},
			expected: []CartLine{
				{ItemID: "shirt", Variant: red, Quantity: 1},
				{ItemID: "scarf", Quantity: 1},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			merged := MergeCartLine(lines, tc.line)
			assert.Equal(t, tc.expected, merged)
			assert.Equal(t, 1, lines[0].Quantity, "input must not be modified")
		})
	}
}

func TestValidate_Item(t *testing.T) {
	require.NoError(t, Validate(Item{ID: "a", Price: 10}))

	err := Validate(Item{Price: -1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Item.ID")
	assert.Contains(t, err.Error(), "Item.Price")
}

func TestParseDirection(t *testing.T) {
	for _, s := range []string{"like", "dislike", "cart"} {
		d, ok := ParseDirection(s)
		require.True(t, ok)
		assert.Equal(t, Direction(s), d)
	}

	_, ok := ParseDirection("up")
	assert.False(t, ok)
}
