// Package services implements the operations the till exposes, one service
// per resource.
package services

import (
	"context"

	"github.com/kofiasare/playtill/internal/application"
	"github.com/kofiasare/playtill/internal/domain"
)

type MenuService struct {
	repo application.MenuRepository
}

func NewMenuService(repo application.MenuRepository) *MenuService {
	return &MenuService{repo: repo}
}

// AddItem appends a new item to the end of the catalog.
func (s *MenuService) AddItem(ctx context.Context, name string, priceCents int64, category *string) error {
	item, err := domain.NewMenuItem(name, priceCents, category)
	if err != nil {
		return err
	}
	return s.repo.Add(ctx, item)
}

// EditItem overwrites every field of the item at the given position.
func (s *MenuService) EditItem(ctx context.Context, index int, name string, priceCents int64, category *string) error {
	item, err := domain.NewMenuItem(name, priceCents, category)
	if err != nil {
		return err
	}
	return s.repo.ReplaceAt(ctx, index, item)
}

// RemoveItem deletes the item at the given position; later items shift down
// by one, so positions captured before the call are stale afterwards.
func (s *MenuService) RemoveItem(ctx context.Context, index int) error {
	return s.repo.RemoveAt(ctx, index)
}

// GetMenu returns the catalog in its current order.
func (s *MenuService) GetMenu(ctx context.Context) ([]domain.MenuItem, error) {
	return s.repo.List(ctx)
}

// GetMenuByCategory returns the catalog bucketed by category.
func (s *MenuService) GetMenuByCategory(ctx context.Context) ([]domain.MenuGroup, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.GroupByCategory(items), nil
}
