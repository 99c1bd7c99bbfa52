package ledger

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/dompet/dompet/internal/model"
	"github.com/dompet/dompet/internal/service"
)

// CategoryEntry pairs a category key with its display metadata.
type CategoryEntry struct {
	Key  string
	Info model.CategoryInfo
}

// CategoryRegistry maps category keys to display metadata. It is
// seeded with the built-in set and extended at runtime through
// Upsert; lookups never fail.
type CategoryRegistry struct {
	repo     service.Repository
	notifier service.Notifier
	entries  map[string]model.CategoryInfo
	defaults map[string]bool
	mu       sync.RWMutex
}

// NewCategoryRegistry creates a registry seeded with the built-in
// categories. A nil repository keeps the registry purely in-memory,
// which tests and the filter engine use; a nil notifier discards
// notifications.
func NewCategoryRegistry(repo service.Repository, notifier service.Notifier) *CategoryRegistry {
	if notifier == nil {
		notifier = service.NopNotifier{}
	}
	r := &CategoryRegistry{
		repo:     repo,
		notifier: notifier,
		entries:  make(map[string]model.CategoryInfo),
		defaults: make(map[string]bool),
	}
	for _, cat := range model.DefaultCategories() {
		r.entries[cat.Key] = cat.Info()
		r.defaults[cat.Key] = true
	}
	return r
}

// Reload merges the repository's categories over the built-in seed.
// Persisted entries win, so user edits to a built-in survive.
func (r *CategoryRegistry) Reload(ctx context.Context) error {
	if r.repo == nil {
		return nil
	}
	cats, err := r.repo.ListCategories(ctx)
	if err != nil {
		return fmt.Errorf("reload categories: %w", err)
	}

	r.mu.Lock()
	for _, cat := range cats {
		r.entries[cat.Key] = cat.Info()
		if cat.IsDefault {
			r.defaults[cat.Key] = true
		}
	}
	r.mu.Unlock()
	return nil
}

// Get returns the display metadata for key. Unknown keys get a
// deterministic fallback using the key itself as the label; Get
// never fails.
func (r *CategoryRegistry) Get(key string) model.CategoryInfo {
	r.mu.RLock()
	info, ok := r.entries[key]
	r.mu.RUnlock()
	if !ok {
		return model.FallbackInfo(key)
	}
	return info
}

// Upsert inserts or overwrites the entry for key. All three metadata
// fields are replaced together; readers never observe a partial
// update. The persisted record's type mirrors the group the key's
// name puts it in.
func (r *CategoryRegistry) Upsert(ctx context.Context, key string, info model.CategoryInfo) error {
	if err := info.Validate(); err != nil {
		r.notifier.Failure("Category rejected", err.Error())
		return err
	}

	if r.repo != nil {
		cat := model.Category{
			Key:       key,
			Label:     info.Label,
			Color:     info.Color,
			Icon:      info.Icon,
			Type:      model.GroupForKey(key),
			IsDefault: r.isDefault(key),
		}
		stored, err := r.repo.UpsertCategory(ctx, cat)
		if err != nil {
			r.notifier.Failure("Category update failed", info.Label)
			return fmt.Errorf("upsert category %s: %w", key, err)
		}
		info = stored.Info()
	}

	r.mu.Lock()
	r.entries[key] = info
	r.mu.Unlock()

	r.notifier.Success("Category updated",
		fmt.Sprintf("Category %s updated successfully.", info.Label))
	return nil
}

// ListByGroup returns the registered entries whose key falls in the
// given group, sorted by key for stable picker and report output.
func (r *CategoryRegistry) ListByGroup(group model.TransactionType) []CategoryEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]CategoryEntry, 0, len(r.entries))
	for key, info := range r.entries {
		if model.GroupForKey(key) != group {
			continue
		}
		entries = append(entries, CategoryEntry{Key: key, Info: info})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	return entries
}

// List returns every registered entry sorted by key.
func (r *CategoryRegistry) List() []CategoryEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]CategoryEntry, 0, len(r.entries))
	for key, info := range r.entries {
		entries = append(entries, CategoryEntry{Key: key, Info: info})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	return entries
}

func (r *CategoryRegistry) isDefault(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaults[key]
}
