package engine

import (
	"time"

	"github.com/dompet/dompet/internal/model"
)

// Totals is the headline summary of a transaction set. Sums are plain
// float64 additions and carry the usual IEEE 754 rounding behavior.
type Totals struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}

// MonthBucket holds per-category-label totals for one calendar month.
// Months with no matching transactions are present with an empty map
// so a time series chart has stable x-axis ticks.
type MonthBucket struct {
	ByCategory map[string]float64 `json:"by_category"`
	Label      string             `json:"label"`
	Month      time.Time          `json:"month"`
}

// ComputeTotals sums income and expense magnitudes and their
// difference. An empty input yields the zero value.
func ComputeTotals(txns []model.Transaction) Totals {
	var t Totals
	for _, txn := range txns {
		switch txn.Type {
		case model.TypeIncome:
			t.Income += txn.Amount
		case model.TypeExpense:
			t.Expense += txn.Amount
		}
	}
	t.Balance = t.Income - t.Expense
	return t
}

// ByCategory groups and sums amounts by category key, independent of
// type. Callers wanting a single-type breakdown pre-filter the input.
func ByCategory(txns []model.Transaction) map[string]float64 {
	totals := make(map[string]float64)
	for _, txn := range txns {
		totals[txn.Category] += txn.Amount
	}
	return totals
}

// MonthlyBuckets groups amounts by calendar month over the trailing
// window of `months` months ending at the month of `end`, one bucket
// per month in chronological order. Bucket totals are keyed by the
// resolved category label so they can feed a chart legend directly.
// Transactions outside the window or with unparseable dates are
// skipped.
func MonthlyBuckets(txns []model.Transaction, end time.Time, months int, categories CategoryResolver) []MonthBucket {
	if months <= 0 {
		return nil
	}

	first := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(months - 1), 0)

	buckets := make([]MonthBucket, months)
	index := make(map[string]int, months)
	for i := range buckets {
		month := first.AddDate(0, i, 0)
		buckets[i] = MonthBucket{
			Month:      month,
			Label:      month.Format("Jan 2006"),
			ByCategory: make(map[string]float64),
		}
		index[month.Format("2006-01")] = i
	}

	for _, txn := range txns {
		date, ok := model.ParseDate(txn.Date)
		if !ok {
			continue
		}
		i, ok := index[date.Format("2006-01")]
		if !ok {
			continue
		}
		label := txn.Category
		if categories != nil {
			label = categories.Get(txn.Category).Label
		}
		buckets[i].ByCategory[label] += txn.Amount
	}

	return buckets
}
