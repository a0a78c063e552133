package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kofiasare/playtill/internal/domain"
)

type TransactionRepository struct {
	db *DB
}

func NewTransactionRepository(db *DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Append(ctx context.Context, trx *domain.Transaction) error {
	items, err := json.Marshal(toItemModels(trx.Items))
	if err != nil {
		return fmt.Errorf("marshal transaction items: %w", err)
	}

	query := `
		INSERT INTO transactions (id, items, total_cents, payment_method, recorded_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err = r.db.Pool.Exec(ctx, query, trx.ID, items, trx.TotalCents, trx.PaymentMethod, trx.RecordedAt)
	if err != nil {
		return fmt.Errorf("failed to record transaction: %w", err)
	}
	return nil
}
