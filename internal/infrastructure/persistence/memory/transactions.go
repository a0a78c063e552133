package memory

import (
	"context"
	"sync"

	"github.com/kofiasare/playtill/internal/domain"
)

type TransactionRepository struct {
	mu  sync.Mutex
	log []*domain.Transaction
}

func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{}
}

func (r *TransactionRepository) Append(ctx context.Context, trx *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *trx
	stored.Items = make([]domain.TransactionItem, len(trx.Items))
	copy(stored.Items, trx.Items)
	r.log = append(r.log, &stored)
	return nil
}

// Count reports how many sales have been recorded.
func (r *TransactionRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.log)
}
