// Package model defines the core domain types for the tracker.
package model

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// TransactionType classifies a transaction as money in or money out.
type TransactionType string

const (
	// TypeIncome represents money coming in.
	TypeIncome TransactionType = "income"
	// TypeExpense represents money going out.
	TypeExpense TransactionType = "expense"
)

// DateLayout is the calendar date format used throughout the tracker.
// Transactions carry a date only, never a time of day.
const DateLayout = "2006-01-02"

// Transaction represents a single recorded income or expense.
//
// Amount is a non-negative magnitude; the sign is implied by Type.
// Amounts are plain float64, so repeated additions carry the usual
// IEEE 754 rounding behavior.
type Transaction struct {
	CreatedAt   time.Time       `json:"created_at,omitempty"`
	UpdatedAt   time.Time       `json:"updated_at,omitempty"`
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	Amount      float64         `json:"amount"`
}

// Validation errors for transactions.
var (
	ErrEmptyDescription = errors.New("description cannot be empty")
	ErrInvalidAmount    = errors.New("amount must be a non-negative number")
	ErrInvalidDate      = errors.New("date must be a valid YYYY-MM-DD calendar date")
	ErrInvalidType      = errors.New("type must be income or expense")
	ErrEmptyCategory    = errors.New("category cannot be empty")
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Validate checks the transaction fields before they reach persistence.
// The ID is not checked here; stores assign it on creation.
func (t Transaction) Validate() error {
	if strings.TrimSpace(t.Description) == "" {
		return ErrEmptyDescription
	}
	if t.Amount < 0 || math.IsNaN(t.Amount) || math.IsInf(t.Amount, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidAmount, t.Amount)
	}
	if _, ok := ParseDate(t.Date); !ok {
		return fmt.Errorf("%w: %q", ErrInvalidDate, t.Date)
	}
	if !t.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidType, t.Type)
	}
	if strings.TrimSpace(t.Category) == "" {
		return ErrEmptyCategory
	}
	return nil
}

// ParseDate parses a YYYY-MM-DD string. It is total: any malformed
// input returns ok=false instead of an error, so filtering and
// aggregation can treat bad dates as non-matching without panicking.
func ParseDate(s string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// DateOnOrAfter reports whether date >= bound, comparing calendar days.
// If either side fails to parse it reports false.
func DateOnOrAfter(date, bound string) bool {
	d, ok := ParseDate(date)
	if !ok {
		return false
	}
	b, ok := ParseDate(bound)
	if !ok {
		return false
	}
	return !d.Before(b)
}

// DateOnOrBefore reports whether date <= bound, comparing calendar days.
// If either side fails to parse it reports false.
func DateOnOrBefore(date, bound string) bool {
	d, ok := ParseDate(date)
	if !ok {
		return false
	}
	b, ok := ParseDate(bound)
	if !ok {
		return false
	}
	return !d.After(b)
}
