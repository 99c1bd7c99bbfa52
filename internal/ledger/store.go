// Package ledger owns the session's in-memory transaction set and
// category registry, backed by a service.Repository. Reads are
// synchronous against the last-synced snapshot; mutations go to the
// repository first and only touch memory once persistence succeeds.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/dompet/dompet/internal/model"
	"github.com/dompet/dompet/internal/service"
)

// TransactionStore holds the authoritative transaction set for the
// current session. It assumes a single logical writer; the mutex only
// protects the snapshot against concurrent readers (the HTTP server
// shares one store across handler goroutines).
type TransactionStore struct {
	repo     service.Repository
	notifier service.Notifier
	txns     []model.Transaction
	onChange []func()
	mu       sync.RWMutex
}

// NewTransactionStore creates a store over the given repository. A nil
// notifier discards notifications.
func NewTransactionStore(repo service.Repository, notifier service.Notifier) *TransactionStore {
	if notifier == nil {
		notifier = service.NopNotifier{}
	}
	return &TransactionStore{repo: repo, notifier: notifier}
}

// Reload replaces the in-memory snapshot with the repository's
// current contents.
func (s *TransactionStore) Reload(ctx context.Context) error {
	txns, err := s.repo.ListTransactions(ctx)
	if err != nil {
		return fmt.Errorf("reload transactions: %w", err)
	}

	s.mu.Lock()
	s.txns = txns
	s.mu.Unlock()

	s.fireChange()
	return nil
}

// List returns a copy of the current snapshot. Order is not part of
// the contract; consumers re-sort.
func (s *TransactionStore) List() []model.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Transaction, len(s.txns))
	copy(out, s.txns)
	return out
}

// Get returns the transaction with the given id, if present.
func (s *TransactionStore) Get(id string) (model.Transaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, txn := range s.txns {
		if txn.ID == id {
			return txn, true
		}
	}
	return model.Transaction{}, false
}

// Add validates the transaction, assigns a fresh id, persists it and
// appends the canonical stored record to the snapshot. Any id on the
// input is ignored.
func (s *TransactionStore) Add(ctx context.Context, txn model.Transaction) (model.Transaction, error) {
	txn.ID = uuid.NewString()
	if err := txn.Validate(); err != nil {
		s.notifier.Failure("Transaction rejected", err.Error())
		return model.Transaction{}, err
	}

	stored, err := s.repo.InsertTransaction(ctx, txn)
	if err != nil {
		s.notifier.Failure("Transaction add failed", txn.Description)
		return model.Transaction{}, fmt.Errorf("insert transaction: %w", err)
	}

	s.mu.Lock()
	s.txns = append(s.txns, stored)
	s.mu.Unlock()

	s.notifier.Success("Transaction added",
		fmt.Sprintf("%s for %s added successfully.", stored.Description, formatAmount(stored.Amount)))
	s.fireChange()
	return stored, nil
}

// Update replaces the stored record matching txn.ID. Updating an id
// that is not in the store is a silent no-op returning the input
// unchanged: the record is gone, and dropping the edit matches the
// delete-wins convention of single-record CRUD.
func (s *TransactionStore) Update(ctx context.Context, txn model.Transaction) (model.Transaction, error) {
	if err := txn.Validate(); err != nil {
		s.notifier.Failure("Transaction rejected", err.Error())
		return model.Transaction{}, err
	}

	if _, ok := s.Get(txn.ID); !ok {
		slog.Warn("update for unknown transaction ignored", "id", txn.ID)
		return txn, nil
	}

	stored, err := s.repo.UpdateTransaction(ctx, txn)
	if err != nil {
		s.notifier.Failure("Transaction update failed", txn.Description)
		return model.Transaction{}, fmt.Errorf("update transaction %s: %w", txn.ID, err)
	}

	s.mu.Lock()
	for i := range s.txns {
		if s.txns[i].ID == stored.ID {
			s.txns[i] = stored
			break
		}
	}
	s.mu.Unlock()

	s.notifier.Success("Transaction updated",
		fmt.Sprintf("%s updated successfully.", stored.Description))
	s.fireChange()
	return stored, nil
}

// Remove deletes the record matching id. Removing an unknown id is a
// no-op, not an error, and leaves the snapshot untouched.
func (s *TransactionStore) Remove(ctx context.Context, id string) error {
	victim, ok := s.Get(id)
	if !ok {
		return nil
	}

	if err := s.repo.DeleteTransaction(ctx, id); err != nil {
		s.notifier.Failure("Transaction delete failed", victim.Description)
		return fmt.Errorf("delete transaction %s: %w", id, err)
	}

	s.mu.Lock()
	for i := range s.txns {
		if s.txns[i].ID == id {
			s.txns = append(s.txns[:i], s.txns[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	s.notifier.Success("Transaction deleted",
		fmt.Sprintf("%s deleted successfully.", victim.Description))
	s.fireChange()
	return nil
}

// Subscribe registers a callback invoked after every successful
// mutation or reload. This is the named recomputation step dependent
// views hook into instead of polling.
func (s *TransactionStore) Subscribe(fn func()) {
	s.mu.Lock()
	s.onChange = append(s.onChange, fn)
	s.mu.Unlock()
}

func (s *TransactionStore) fireChange() {
	s.mu.RLock()
	callbacks := make([]func(), len(s.onChange))
	copy(callbacks, s.onChange)
	s.mu.RUnlock()

	for _, fn := range callbacks {
		fn()
	}
}

func formatAmount(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}
