package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dompet/dompet/internal/model"
)

// mapResolver is a minimal CategoryResolver for tests.
type mapResolver map[string]model.CategoryInfo

func (m mapResolver) Get(key string) model.CategoryInfo {
	if info, ok := m[key]; ok {
		return info
	}
	return model.FallbackInfo(key)
}

var testResolver = mapResolver{
	"salary": {Label: "Salary", Color: "green", Icon: "💼"},
	"food":   {Label: "Food & Drinks", Color: "amber", Icon: "🍔"},
}

func sampleTransactions() []model.Transaction {
	return []model.Transaction{
		{ID: "1", Description: "Salary", Amount: 5000, Date: "2025-05-10", Type: model.TypeIncome, Category: "salary"},
		{ID: "2", Description: "Groceries", Amount: 150, Date: "2025-05-12", Type: model.TypeExpense, Category: "food"},
		{ID: "3", Description: "Rent", Amount: 1200, Date: "2025-05-05", Type: model.TypeExpense, Category: "housing"},
		{ID: "4", Description: "Investment return", Amount: 300, Date: "2025-05-08", Type: model.TypeIncome, Category: "investment"},
	}
}

func ids(txns []model.Transaction) []string {
	out := make([]string, 0, len(txns))
	for _, txn := range txns {
		out = append(out, txn.ID)
	}
	return out
}

func TestApplyFilterIdentity(t *testing.T) {
	txns := sampleTransactions()

	t.Run("empty options return input unchanged", func(t *testing.T) {
		got := ApplyFilter(txns, model.FilterOptions{}, testResolver)
		assert.Equal(t, txns, got)
	})

	t.Run("all sentinels behave like unset fields", func(t *testing.T) {
		opts := model.FilterOptions{Type: model.FilterAll, Category: model.FilterAll}
		got := ApplyFilter(txns, opts, testResolver)
		assert.Equal(t, txns, got)
	})
}

func TestApplyFilterByType(t *testing.T) {
	txns := sampleTransactions()

	income := ApplyFilter(txns, model.FilterOptions{Type: model.TypeIncome}, testResolver)
	expense := ApplyFilter(txns, model.FilterOptions{Type: model.TypeExpense}, testResolver)

	assert.ElementsMatch(t, []string{"1", "4"}, ids(income))
	assert.ElementsMatch(t, []string{"2", "3"}, ids(expense))

	// The two views partition the input: disjoint, union equals original.
	assert.ElementsMatch(t, ids(txns), append(ids(income), ids(expense)...))
}

func TestApplyFilterByCategory(t *testing.T) {
	got := ApplyFilter(sampleTransactions(), model.FilterOptions{Category: "food"}, testResolver)
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}

func TestApplyFilterByDateRange(t *testing.T) {
	txns := sampleTransactions()

	t.Run("start date is inclusive", func(t *testing.T) {
		got := ApplyFilter(txns, model.FilterOptions{StartDate: "2025-05-08"}, testResolver)
		assert.ElementsMatch(t, []string{"1", "2", "4"}, ids(got))
	})

	t.Run("end date is inclusive", func(t *testing.T) {
		got := ApplyFilter(txns, model.FilterOptions{EndDate: "2025-05-08"}, testResolver)
		assert.ElementsMatch(t, []string{"3", "4"}, ids(got))
	})

	t.Run("both bounds", func(t *testing.T) {
		opts := model.FilterOptions{StartDate: "2025-05-08", EndDate: "2025-05-10"}
		got := ApplyFilter(txns, opts, testResolver)
		assert.ElementsMatch(t, []string{"1", "4"}, ids(got))
	})

	t.Run("unparseable transaction date is excluded from bounded results", func(t *testing.T) {
		bad := append(txns, model.Transaction{ID: "5", Description: "Mystery", Amount: 10, Date: "garbage", Type: model.TypeExpense, Category: "food"})

		got := ApplyFilter(bad, model.FilterOptions{StartDate: "2020-01-01"}, testResolver)
		assert.NotContains(t, ids(got), "5")

		// Without date bounds the record still shows up.
		got = ApplyFilter(bad, model.FilterOptions{Category: "food"}, testResolver)
		assert.Contains(t, ids(got), "5")
	})
}

func TestApplyFilterBySearchTerm(t *testing.T) {
	txns := sampleTransactions()

	t.Run("matches description", func(t *testing.T) {
		got := ApplyFilter(txns, model.FilterOptions{SearchTerm: "groc"}, testResolver)
		assert.Equal(t, []string{"2"}, ids(got))
	})

	t.Run("matches resolved category label", func(t *testing.T) {
		// "drink" only appears in the label "Food & Drinks".
		got := ApplyFilter(txns, model.FilterOptions{SearchTerm: "drink"}, testResolver)
		assert.Equal(t, []string{"2"}, ids(got))
	})

	t.Run("matches raw category key", func(t *testing.T) {
		// "housing" has no registry entry; the raw key still matches.
		got := ApplyFilter(txns, model.FilterOptions{SearchTerm: "housing"}, testResolver)
		assert.Equal(t, []string{"3"}, ids(got))
	})

	t.Run("case insensitive", func(t *testing.T) {
		got := ApplyFilter(txns, model.FilterOptions{SearchTerm: "SAL"}, testResolver)
		assert.Equal(t, []string{"1"}, ids(got))
	})

	t.Run("nil resolver falls back to the key", func(t *testing.T) {
		got := ApplyFilter(txns, model.FilterOptions{SearchTerm: "sal"}, nil)
		assert.Equal(t, []string{"1"}, ids(got))
	})
}

func TestApplyFilterConjunction(t *testing.T) {
	opts := model.FilterOptions{Type: model.TypeExpense, SearchTerm: "rent"}
	got := ApplyFilter(sampleTransactions(), opts, testResolver)
	assert.Equal(t, []string{"3"}, ids(got))
}
