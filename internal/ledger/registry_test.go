package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dompet/dompet/internal/model"
)

func TestCategoryRegistryGet(t *testing.T) {
	reg := NewCategoryRegistry(nil, nil)

	t.Run("built-in entry", func(t *testing.T) {
		info := reg.Get("salary")
		assert.Equal(t, "Salary", info.Label)
		assert.Equal(t, "green", info.Color)
		assert.Equal(t, "💼", info.Icon)
	})

	t.Run("unknown key never fails", func(t *testing.T) {
		info := reg.Get("nonexistent-key")
		assert.Equal(t, "nonexistent-key", info.Label)
		assert.Equal(t, model.FallbackInfo("nonexistent-key"), info)
	})
}

func TestCategoryRegistryUpsert(t *testing.T) {
	ctx := context.Background()

	t.Run("overwrite replaces all three fields", func(t *testing.T) {
		repo := &memRepo{}
		reg := NewCategoryRegistry(repo, nil)

		err := reg.Upsert(ctx, "food", model.CategoryInfo{Label: "Dining", Color: "red", Icon: "🍽️"})
		require.NoError(t, err)

		got := reg.Get("food")
		assert.Equal(t, model.CategoryInfo{Label: "Dining", Color: "red", Icon: "🍽️"}, got)
	})

	t.Run("overwrite with empty color and icon keeps them empty", func(t *testing.T) {
		reg := NewCategoryRegistry(&memRepo{}, nil)
		require.NoError(t, reg.Upsert(ctx, "food", model.CategoryInfo{Label: "Dining"}))

		got := reg.Get("food")
		assert.Equal(t, "Dining", got.Label)
		assert.Empty(t, got.Color, "no merge with the previous entry")
		assert.Empty(t, got.Icon)
	})

	t.Run("new custom key", func(t *testing.T) {
		repo := &memRepo{}
		reg := NewCategoryRegistry(repo, nil)

		err := reg.Upsert(ctx, "side-income", model.CategoryInfo{Label: "Side Income", Color: "teal", Icon: "🪙"})
		require.NoError(t, err)

		require.Len(t, repo.cats, 1)
		assert.Equal(t, model.TypeIncome, repo.cats[0].Type)
		assert.False(t, repo.cats[0].IsDefault)
	})

	t.Run("built-in key stays flagged as default", func(t *testing.T) {
		repo := &memRepo{}
		reg := NewCategoryRegistry(repo, nil)

		require.NoError(t, reg.Upsert(ctx, "food", model.CategoryInfo{Label: "Dining"}))
		require.Len(t, repo.cats, 1)
		assert.True(t, repo.cats[0].IsDefault)
	})

	t.Run("empty label rejected before persistence", func(t *testing.T) {
		repo := &memRepo{}
		notifier := &recordingNotifier{}
		reg := NewCategoryRegistry(repo, notifier)

		err := reg.Upsert(ctx, "food", model.CategoryInfo{Color: "red"})
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrEmptyLabel)
		assert.Empty(t, repo.cats)
		assert.Equal(t, "Food & Drinks", reg.Get("food").Label)
	})

	t.Run("persistence failure leaves the entry untouched", func(t *testing.T) {
		repo := &memRepo{failUpsert: errors.New("disk full")}
		reg := NewCategoryRegistry(repo, nil)

		err := reg.Upsert(ctx, "food", model.CategoryInfo{Label: "Dining"})
		require.Error(t, err)
		assert.Equal(t, "Food & Drinks", reg.Get("food").Label)
	})
}

func TestCategoryRegistryListByGroup(t *testing.T) {
	ctx := context.Background()
	reg := NewCategoryRegistry(&memRepo{}, nil)
	require.NoError(t, reg.Upsert(ctx, "freelance-income", model.CategoryInfo{Label: "Freelance"}))
	require.NoError(t, reg.Upsert(ctx, "pets", model.CategoryInfo{Label: "Pets"}))

	income := reg.ListByGroup(model.TypeIncome)
	expense := reg.ListByGroup(model.TypeExpense)

	incomeKeys := make([]string, 0, len(income))
	for _, e := range income {
		incomeKeys = append(incomeKeys, e.Key)
	}
	assert.Equal(t, []string{"freelance-income", "gift", "investment", "other-income", "salary"}, incomeKeys)

	for _, e := range expense {
		assert.Equal(t, model.TypeExpense, model.GroupForKey(e.Key))
	}
	assert.Len(t, expense, 10)

	// Every entry lands in exactly one group.
	assert.Len(t, reg.List(), len(income)+len(expense))
}

func TestCategoryRegistryReload(t *testing.T) {
	ctx := context.Background()
	repo := &memRepo{cats: []model.Category{
		{Key: "food", Label: "Dining", Color: "red", Icon: "🍽️", Type: model.TypeExpense, IsDefault: true},
		{Key: "crypto", Label: "Crypto", Color: "amber", Icon: "🪙", Type: model.TypeExpense},
	}}

	reg := NewCategoryRegistry(repo, nil)
	require.NoError(t, reg.Reload(ctx))

	// Persisted edits win over the built-in seed.
	assert.Equal(t, "Dining", reg.Get("food").Label)
	assert.Equal(t, "Crypto", reg.Get("crypto").Label)
	// Untouched built-ins survive.
	assert.Equal(t, "Salary", reg.Get("salary").Label)
}
