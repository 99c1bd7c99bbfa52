package ledger

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dompet/dompet/internal/model"
)

// memRepo is an in-memory service.Repository for exercising the
// ledger without SQLite. Error fields force failures per operation.
type memRepo struct {
	failInsert error
	failUpdate error
	failDelete error
	failUpsert error
	txns       []model.Transaction
	cats       []model.Category
	mu         sync.Mutex
}

func (m *memRepo) ListTransactions(_ context.Context) ([]model.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Transaction, len(m.txns))
	copy(out, m.txns)
	return out, nil
}

func (m *memRepo) InsertTransaction(_ context.Context, txn model.Transaction) (model.Transaction, error) {
	if m.failInsert != nil {
		return model.Transaction{}, m.failInsert
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	txn.CreatedAt = time.Now()
	txn.UpdatedAt = txn.CreatedAt
	m.txns = append(m.txns, txn)
	return txn, nil
}

func (m *memRepo) UpdateTransaction(_ context.Context, txn model.Transaction) (model.Transaction, error) {
	if m.failUpdate != nil {
		return model.Transaction{}, m.failUpdate
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.txns {
		if m.txns[i].ID == txn.ID {
			txn.CreatedAt = m.txns[i].CreatedAt
			txn.UpdatedAt = time.Now()
			m.txns[i] = txn
			return txn, nil
		}
	}
	return model.Transaction{}, errors.New("no such transaction")
}

func (m *memRepo) DeleteTransaction(_ context.Context, id string) error {
	if m.failDelete != nil {
		return m.failDelete
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.txns {
		if m.txns[i].ID == id {
			m.txns = append(m.txns[:i], m.txns[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *memRepo) ListCategories(_ context.Context) ([]model.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Category, len(m.cats))
	copy(out, m.cats)
	return out, nil
}

func (m *memRepo) UpsertCategory(_ context.Context, cat model.Category) (model.Category, error) {
	if m.failUpsert != nil {
		return model.Category{}, m.failUpsert
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.cats {
		if m.cats[i].Key == cat.Key {
			cat.ID = m.cats[i].ID
			cat.UpdatedAt = time.Now()
			m.cats[i] = cat
			return cat, nil
		}
	}
	cat.ID = int64(len(m.cats) + 1)
	cat.CreatedAt = time.Now()
	cat.UpdatedAt = cat.CreatedAt
	m.cats = append(m.cats, cat)
	return cat, nil
}

func (m *memRepo) DeleteCategory(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.cats {
		if m.cats[i].Key == key {
			m.cats = append(m.cats[:i], m.cats[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *memRepo) Migrate(_ context.Context) error { return nil }
func (m *memRepo) Close() error                    { return nil }

// recordingNotifier captures notifications for assertions.
type recordingNotifier struct {
	successes []string
	failures  []string
	mu        sync.Mutex
}

func (n *recordingNotifier) Success(title, _ string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, title)
}

func (n *recordingNotifier) Failure(title, _ string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.failures = append(n.failures, title)
}
