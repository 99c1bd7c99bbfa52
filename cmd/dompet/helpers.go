package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/dompet/dompet/internal/cli"
	"github.com/dompet/dompet/internal/common"
	"github.com/dompet/dompet/internal/ledger"
	"github.com/dompet/dompet/internal/service"
	"github.com/dompet/dompet/internal/storage"
)

// initStorage initializes the storage layer with proper path expansion.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	// Get database path from config
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/dompet/dompet.db"
	}

	// Expand tilde and environment variables
	dbPath = common.ExpandPath(dbPath)

	// Initialize storage
	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	// Run migrations
	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// initLedger wires the in-memory ledger on top of storage and loads
// its state. A nil notifier defaults to terminal output; the caller
// owns the returned storage handle.
func initLedger(ctx context.Context, notifier service.Notifier) (*ledger.TransactionStore, *ledger.CategoryRegistry, *storage.SQLiteStorage, error) {
	repo, err := initStorage(ctx)
	if err != nil {
		return nil, nil, nil, err
	}

	if notifier == nil {
		notifier = cli.NewNotifier(os.Stdout)
	}
	store := ledger.NewTransactionStore(repo, notifier)
	registry := ledger.NewCategoryRegistry(repo, notifier)

	if err := store.Reload(ctx); err != nil {
		_ = repo.Close()
		return nil, nil, nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	if err := registry.Reload(ctx); err != nil {
		_ = repo.Close()
		return nil, nil, nil, fmt.Errorf("failed to load categories: %w", err)
	}

	return store, registry, repo, nil
}
