package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dompet/dompet/internal/model"
)

// ListCategories returns all stored categories ordered by key.
func (s *SQLiteStorage) ListCategories(ctx context.Context) ([]model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, key, label, color, icon, type, is_default, created_at, updated_at
		FROM categories
		ORDER BY key`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var cats []model.Category
	for rows.Next() {
		var cat model.Category
		if err := rows.Scan(&cat.ID, &cat.Key, &cat.Label, &cat.Color, &cat.Icon,
			&cat.Type, &cat.IsDefault, &cat.CreatedAt, &cat.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		cats = append(cats, cat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	slog.Debug("retrieved categories", "count", len(cats))
	return cats, nil
}

// UpsertCategory inserts or overwrites the record for cat.Key,
// replacing label, color and icon together, and returns the canonical
// stored record.
func (s *SQLiteStorage) UpsertCategory(ctx context.Context, cat model.Category) (model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return model.Category{}, err
	}
	if err := validateCategory(cat); err != nil {
		return model.Category{}, err
	}

	now := time.Now().UTC()

	query := `
		INSERT INTO categories (key, label, color, icon, type, is_default, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			label = excluded.label,
			color = excluded.color,
			icon = excluded.icon,
			type = excluded.type,
			updated_at = excluded.updated_at`

	if _, err := s.db.ExecContext(ctx, query,
		cat.Key, cat.Label, cat.Color, cat.Icon, string(cat.Type), cat.IsDefault, now, now); err != nil {
		return model.Category{}, fmt.Errorf("failed to upsert category %s: %w", cat.Key, err)
	}

	var stored model.Category
	err := s.db.QueryRowContext(ctx, `
		SELECT id, key, label, color, icon, type, is_default, created_at, updated_at
		FROM categories WHERE key = ?`, cat.Key).Scan(
		&stored.ID, &stored.Key, &stored.Label, &stored.Color, &stored.Icon,
		&stored.Type, &stored.IsDefault, &stored.CreatedAt, &stored.UpdatedAt)
	if err != nil {
		return model.Category{}, fmt.Errorf("failed to read back category %s: %w", cat.Key, err)
	}

	slog.Debug("upserted category", "key", stored.Key)
	return stored, nil
}

// DeleteCategory removes the record matching key. Transactions keep
// their category key; readers fall back to default display metadata
// for keys no longer registered. Deleting an unknown key is a no-op.
func (s *SQLiteStorage) DeleteCategory(ctx context.Context, key string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(key, "key"); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete category %s: %w", key, err)
	}
	return nil
}
