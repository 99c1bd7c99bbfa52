// Package engine derives filtered views and numeric summaries from a
// transaction set. Everything here is a pure function of its inputs:
// callers re-run the derivation whenever the store or the filter
// criteria change.
package engine

import (
	"strings"

	"github.com/dompet/dompet/internal/model"
)

// CategoryResolver resolves a category key to its display metadata.
// *ledger.CategoryRegistry satisfies this.
type CategoryResolver interface {
	Get(key string) model.CategoryInfo
}

// ApplyFilter returns the subset of txns matching every set field of
// opts. Empty options return the input unchanged. The result carries
// no ordering guarantee; consumers re-sort.
//
// Transactions whose date does not parse are excluded from
// date-bounded results rather than failing the whole derivation;
// callers that care can log them as a data-quality warning.
func ApplyFilter(txns []model.Transaction, opts model.FilterOptions, categories CategoryResolver) []model.Transaction {
	opts = opts.Normalized()
	if opts.IsEmpty() {
		return txns
	}

	term := strings.ToLower(opts.SearchTerm)

	result := make([]model.Transaction, 0, len(txns))
	for _, txn := range txns {
		if opts.Type != "" && txn.Type != opts.Type {
			continue
		}
		if opts.Category != "" && txn.Category != opts.Category {
			continue
		}
		if opts.StartDate != "" && !model.DateOnOrAfter(txn.Date, opts.StartDate) {
			continue
		}
		if opts.EndDate != "" && !model.DateOnOrBefore(txn.Date, opts.EndDate) {
			continue
		}
		if term != "" && !matchesSearch(txn, term, categories) {
			continue
		}
		result = append(result, txn)
	}
	return result
}

// matchesSearch matches term case-insensitively as a substring of the
// description, the resolved category label, or the raw category key.
func matchesSearch(txn model.Transaction, term string, categories CategoryResolver) bool {
	if strings.Contains(strings.ToLower(txn.Description), term) {
		return true
	}
	if strings.Contains(strings.ToLower(txn.Category), term) {
		return true
	}
	label := txn.Category
	if categories != nil {
		label = categories.Get(txn.Category).Label
	}
	return strings.Contains(strings.ToLower(label), term)
}
