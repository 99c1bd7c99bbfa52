package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dompet/dompet/internal/common"
	"github.com/dompet/dompet/internal/model"
)

// ListTransactions returns every stored transaction, newest date
// first. Consumers re-sort as needed; the order here is a convenience
// for direct inspection.
func (s *SQLiteStorage) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, description, amount, date, type, category, created_at, updated_at
		FROM transactions
		ORDER BY date DESC, created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var txns []model.Transaction
	for rows.Next() {
		var txn model.Transaction
		if err := rows.Scan(&txn.ID, &txn.Description, &txn.Amount, &txn.Date,
			&txn.Type, &txn.Category, &txn.CreatedAt, &txn.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}

	slog.Debug("retrieved transactions", "count", len(txns))
	return txns, nil
}

// InsertTransaction stores a new transaction and returns the
// canonical record with its timestamps populated.
func (s *SQLiteStorage) InsertTransaction(ctx context.Context, txn model.Transaction) (model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return model.Transaction{}, err
	}
	if err := validateTransaction(txn); err != nil {
		return model.Transaction{}, err
	}

	now := time.Now().UTC()
	txn.CreatedAt = now
	txn.UpdatedAt = now

	query := `
		INSERT INTO transactions (id, description, amount, date, type, category, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	if _, err := s.db.ExecContext(ctx, query,
		txn.ID, txn.Description, txn.Amount, txn.Date,
		string(txn.Type), txn.Category, txn.CreatedAt, txn.UpdatedAt); err != nil {
		return model.Transaction{}, fmt.Errorf("failed to insert transaction %s: %w", txn.ID, err)
	}

	slog.Debug("inserted transaction", "id", txn.ID, "amount", txn.Amount)
	return txn, nil
}

// UpdateTransaction replaces the record matching txn.ID and returns
// the canonical stored record. Updating an id that does not exist
// returns common.ErrNotFound; the ledger treats that case as a no-op
// before it reaches this layer.
func (s *SQLiteStorage) UpdateTransaction(ctx context.Context, txn model.Transaction) (model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return model.Transaction{}, err
	}
	if err := validateTransaction(txn); err != nil {
		return model.Transaction{}, err
	}

	txn.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE transactions
		SET description = ?, amount = ?, date = ?, type = ?, category = ?, updated_at = ?
		WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query,
		txn.Description, txn.Amount, txn.Date, string(txn.Type), txn.Category, txn.UpdatedAt, txn.ID)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("failed to update transaction %s: %w", txn.ID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return model.Transaction{}, fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return model.Transaction{}, fmt.Errorf("transaction %s: %w", txn.ID, common.ErrNotFound)
	}

	// Preserve the original creation time in the returned record.
	if err := s.db.QueryRowContext(ctx,
		`SELECT created_at FROM transactions WHERE id = ?`, txn.ID).Scan(&txn.CreatedAt); err != nil {
		return model.Transaction{}, fmt.Errorf("failed to read back transaction %s: %w", txn.ID, err)
	}

	return txn, nil
}

// DeleteTransaction removes the record matching id. Deleting an id
// that does not exist is a no-op, not an error.
func (s *SQLiteStorage) DeleteTransaction(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", id, err)
	}
	return nil
}
