package model

// FilterAll is the sentinel value pickers use for "no constraint".
// A field set to FilterAll behaves exactly like an unset field.
const FilterAll = "all"

// FilterOptions narrows a transaction view. Zero-valued fields place
// no constraint on their dimension.
type FilterOptions struct {
	Type       TransactionType `json:"type,omitempty"`
	Category   string          `json:"category,omitempty"`
	StartDate  string          `json:"startDate,omitempty"`
	EndDate    string          `json:"endDate,omitempty"`
	SearchTerm string          `json:"searchTerm,omitempty"`
}

// Normalized returns a copy with "all" sentinels cleared, so the
// filter engine only ever sees set-or-empty fields.
func (f FilterOptions) Normalized() FilterOptions {
	if string(f.Type) == FilterAll {
		f.Type = ""
	}
	if f.Category == FilterAll {
		f.Category = ""
	}
	return f
}

// IsEmpty reports whether the options place no constraints at all.
func (f FilterOptions) IsEmpty() bool {
	f = f.Normalized()
	return f.Type == "" && f.Category == "" && f.StartDate == "" && f.EndDate == "" && f.SearchTerm == ""
}
