// Package memory is the in-process store: four process-lifetime collections
// guarded by per-collection locks, empty at startup. It is the default
// store and the one unit tests run against.
package memory

import (
	"context"
	"sync"

	"github.com/kofiasare/playtill/internal/domain"
)

type MenuRepository struct {
	mu    sync.RWMutex
	items []domain.MenuItem
}

func NewMenuRepository() *MenuRepository {
	return &MenuRepository{}
}

func (r *MenuRepository) Add(ctx context.Context, item domain.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, item)
	return nil
}

func (r *MenuRepository) ReplaceAt(ctx context.Context, index int, item domain.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if index < 0 || index >= len(r.items) {
		return domain.NewIndexOutOfRangeError(index, len(r.items))
	}
	r.items[index] = item
	return nil
}

func (r *MenuRepository) RemoveAt(ctx context.Context, index int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if index < 0 || index >= len(r.items) {
		return domain.NewIndexOutOfRangeError(index, len(r.items))
	}
	r.items = append(r.items[:index], r.items[index+1:]...)
	return nil
}

func (r *MenuRepository) List(ctx context.Context) ([]domain.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.MenuItem, len(r.items))
	copy(out, r.items)
	return out, nil
}
