package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/kofiasare/playtill/internal/domain"
)

type MenuRepository struct {
	db *DB
}

func NewMenuRepository(db *DB) *MenuRepository {
	return &MenuRepository{db: db}
}

func (r *MenuRepository) Add(ctx context.Context, item domain.MenuItem) error {
	query := `
		INSERT INTO menu_items (position, name, price_cents, category)
		SELECT COALESCE(MAX(position) + 1, 0), $1, $2, $3 FROM menu_items
	`
	_, err := r.db.Pool.Exec(ctx, query, item.Name, item.PriceCents, item.Category)
	if err != nil {
		return fmt.Errorf("failed to add menu item: %w", err)
	}
	return nil
}

func (r *MenuRepository) ReplaceAt(ctx context.Context, index int, item domain.MenuItem) error {
	query := `
		UPDATE menu_items SET name = $2, price_cents = $3, category = $4
		WHERE position = $1
	`
	tag, err := r.db.Pool.Exec(ctx, query, index, item.Name, item.PriceCents, item.Category)
	if err != nil {
		return fmt.Errorf("failed to update menu item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return r.outOfRange(ctx, index)
	}
	return nil
}

// RemoveAt deletes one position and closes the gap so positions stay dense.
func (r *MenuRepository) RemoveAt(ctx context.Context, index int) error {
	return r.db.WithTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM menu_items WHERE position = $1`, index)
		if err != nil {
			return fmt.Errorf("failed to remove menu item: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return r.outOfRange(ctx, index)
		}
		_, err = tx.Exec(ctx, `UPDATE menu_items SET position = position - 1 WHERE position > $1`, index)
		if err != nil {
			return fmt.Errorf("failed to reindex menu items: %w", err)
		}
		return nil
	})
}

func (r *MenuRepository) List(ctx context.Context) ([]domain.MenuItem, error) {
	query := `
		SELECT position, name, price_cents, category
		FROM menu_items
		ORDER BY position
	`
	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query menu items: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.MenuItem, error) {
		var m menuItemModel
		err := row.Scan(&m.Position, &m.Name, &m.PriceCents, &m.Category)
		return toDomainMenuItem(m), err
	})
}

func (r *MenuRepository) outOfRange(ctx context.Context, index int) error {
	var length int
	if err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM menu_items`).Scan(&length); err != nil {
		return fmt.Errorf("count menu items: %w", err)
	}
	return domain.NewIndexOutOfRangeError(index, length)
}
