package model

import (
	"errors"
	"strings"
	"time"
)

// CategoryInfo is the display metadata for a category key.
type CategoryInfo struct {
	Label string `json:"label"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// Category is the persisted category record. Key is the stable
// identifier used by transactions; Type mirrors the income/expense
// group derived from the key.
type Category struct {
	CreatedAt time.Time       `json:"created_at,omitempty"`
	UpdatedAt time.Time       `json:"updated_at,omitempty"`
	Key       string          `json:"key"`
	Label     string          `json:"label"`
	Color     string          `json:"color"`
	Icon      string          `json:"icon"`
	Type      TransactionType `json:"type"`
	ID        int64           `json:"id,omitempty"`
	IsDefault bool            `json:"is_default"`
}

// ErrEmptyLabel rejects category metadata without a display label.
var ErrEmptyLabel = errors.New("category label cannot be empty")

// Validate checks display metadata before it reaches persistence.
// Color and icon may be empty; readers fall back to neutral tokens.
func (i CategoryInfo) Validate() error {
	if strings.TrimSpace(i.Label) == "" {
		return ErrEmptyLabel
	}
	return nil
}

// Info returns the display metadata portion of the record.
func (c Category) Info() CategoryInfo {
	return CategoryInfo{Label: c.Label, Color: c.Color, Icon: c.Icon}
}

// incomeKeys are the fixed built-in keys that belong to the income
// group regardless of their spelling.
var incomeKeys = map[string]struct{}{
	"salary":     {},
	"investment": {},
	"gift":       {},
}

// GroupForKey partitions category keys into the income and expense
// groups. A key is income iff it is one of the fixed income keys or
// its text contains the substring "income"; everything else is
// expense. Transaction filtering and the category pickers both rely
// on this exact rule, so it lives in one place.
func GroupForKey(key string) TransactionType {
	if _, ok := incomeKeys[key]; ok {
		return TypeIncome
	}
	if strings.Contains(key, "income") {
		return TypeIncome
	}
	return TypeExpense
}

// FallbackInfo is the display metadata for keys absent from the
// registry: the raw key as label with neutral color and glyph.
func FallbackInfo(key string) CategoryInfo {
	return CategoryInfo{Label: key, Color: "slate", Icon: "🏷️"}
}

// DefaultCategories returns the built-in category seed. The order is
// stable so migrations and pickers list them consistently.
func DefaultCategories() []Category {
	defaults := []Category{
		{Key: "salary", Label: "Salary", Color: "green", Icon: "💼"},
		{Key: "investment", Label: "Investment", Color: "blue", Icon: "📈"},
		{Key: "gift", Label: "Gift", Color: "purple", Icon: "🎁"},
		{Key: "other-income", Label: "Other Income", Color: "teal", Icon: "💰"},
		{Key: "food", Label: "Food & Drinks", Color: "amber", Icon: "🍔"},
		{Key: "transportation", Label: "Transportation", Color: "indigo", Icon: "🚗"},
		{Key: "housing", Label: "Housing", Color: "pink", Icon: "🏠"},
		{Key: "utilities", Label: "Utilities", Color: "cyan", Icon: "💡"},
		{Key: "entertainment", Label: "Entertainment", Color: "violet", Icon: "🎬"},
		{Key: "shopping", Label: "Shopping", Color: "fuchsia", Icon: "🛍️"},
		{Key: "health", Label: "Health", Color: "rose", Icon: "🏥"},
		{Key: "education", Label: "Education", Color: "lime", Icon: "📚"},
		{Key: "other-expense", Label: "Other Expenses", Color: "slate", Icon: "📝"},
	}
	for i := range defaults {
		defaults[i].Type = GroupForKey(defaults[i].Key)
		defaults[i].IsDefault = true
	}
	return defaults
}
