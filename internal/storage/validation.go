package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dompet/dompet/internal/model"
)

// Validation errors.
var (
	ErrNilContext  = errors.New("context cannot be nil")
	ErrEmptyString = errors.New("string parameter cannot be empty")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateTransaction rejects malformed records before they touch the
// database; the id must already be assigned at this layer.
func validateTransaction(txn model.Transaction) error {
	if err := validateString(txn.ID, "transaction id"); err != nil {
		return err
	}
	return txn.Validate()
}

// validateCategory rejects malformed category records.
func validateCategory(cat model.Category) error {
	if err := validateString(cat.Key, "category key"); err != nil {
		return err
	}
	if err := validateString(cat.Label, "category label"); err != nil {
		return err
	}
	if !cat.Type.Valid() {
		return fmt.Errorf("invalid category type: %q", cat.Type)
	}
	return nil
}
