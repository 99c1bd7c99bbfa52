package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupForKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want TransactionType
	}{
		{name: "salary is income", key: "salary", want: TypeIncome},
		{name: "investment is income", key: "investment", want: TypeIncome},
		{name: "gift is income", key: "gift", want: TypeIncome},
		{name: "other-income matches substring", key: "other-income", want: TypeIncome},
		{name: "custom key containing income", key: "side-income", want: TypeIncome},
		{name: "food is expense", key: "food", want: TypeExpense},
		{name: "unknown key defaults to expense", key: "crypto", want: TypeExpense},
		{name: "empty key is expense", key: "", want: TypeExpense},
		// The rule is a plain substring match, not word matching.
		{name: "incomected still matches", key: "incomected", want: TypeIncome},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GroupForKey(tt.key))
		})
	}
}

func TestFallbackInfo(t *testing.T) {
	info := FallbackInfo("nonexistent-key")
	assert.Equal(t, "nonexistent-key", info.Label)
	assert.NotEmpty(t, info.Color)
	assert.NotEmpty(t, info.Icon)
}

func TestDefaultCategories(t *testing.T) {
	defaults := DefaultCategories()
	require.NotEmpty(t, defaults)

	seen := make(map[string]bool, len(defaults))
	var income, expense int
	for _, cat := range defaults {
		assert.False(t, seen[cat.Key], "duplicate default key %q", cat.Key)
		seen[cat.Key] = true

		assert.True(t, cat.IsDefault)
		assert.NotEmpty(t, cat.Label)
		assert.Equal(t, GroupForKey(cat.Key), cat.Type)

		if cat.Type == TypeIncome {
			income++
		} else {
			expense++
		}
	}

	assert.Equal(t, 4, income)
	assert.Equal(t, 9, expense)
}

func TestFilterOptionsNormalized(t *testing.T) {
	opts := FilterOptions{Type: FilterAll, Category: FilterAll}
	assert.True(t, opts.IsEmpty())

	norm := opts.Normalized()
	assert.Empty(t, string(norm.Type))
	assert.Empty(t, norm.Category)

	assert.False(t, FilterOptions{SearchTerm: "sal"}.IsEmpty())
}
