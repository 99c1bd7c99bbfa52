// Package service defines the boundary contracts between the tracker
// core and its collaborators: the persistence layer and the
// user-facing notification sink.
package service

import (
	"context"
	"log/slog"

	"github.com/dompet/dompet/internal/model"
)

// Repository is the persistence boundary. Implementations may be a
// local SQLite file or a remote database; the core only relies on
// these operations and on Insert/Upsert returning the canonical
// stored record (server-assigned fields included).
type Repository interface {
	// Transaction entity
	ListTransactions(ctx context.Context) ([]model.Transaction, error)
	InsertTransaction(ctx context.Context, txn model.Transaction) (model.Transaction, error)
	UpdateTransaction(ctx context.Context, txn model.Transaction) (model.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error

	// Category entity
	ListCategories(ctx context.Context) ([]model.Category, error)
	UpsertCategory(ctx context.Context, cat model.Category) (model.Category, error)
	DeleteCategory(ctx context.Context, key string) error

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

// Notifier receives the human-readable outcome of every mutation,
// mirroring the success and error toasts of a UI. Implementations
// must be safe to call from the goroutine performing the mutation.
type Notifier interface {
	Success(title, detail string)
	Failure(title, detail string)
}

// NopNotifier discards all notifications. Useful in tests and batch
// imports where per-record toasts would be noise.
type NopNotifier struct{}

// Success implements Notifier.
func (NopNotifier) Success(_, _ string) {}

// Failure implements Notifier.
func (NopNotifier) Failure(_, _ string) {}

// SlogNotifier routes notifications to the structured log. Used by
// the HTTP server, where there is no terminal to toast at.
type SlogNotifier struct{}

// Success implements Notifier.
func (SlogNotifier) Success(title, detail string) {
	slog.Info(title, "detail", detail)
}

// Failure implements Notifier.
func (SlogNotifier) Failure(title, detail string) {
	slog.Warn(title, "detail", detail)
}
