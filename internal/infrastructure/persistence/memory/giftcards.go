package memory

import (
	"context"
	"sync"

	"github.com/kofiasare/playtill/internal/domain"
)

type GiftCardRepository struct {
	mu    sync.RWMutex
	cards map[string]*domain.GiftCard
}

func NewGiftCardRepository() *GiftCardRepository {
	return &GiftCardRepository{cards: make(map[string]*domain.GiftCard)}
}

func (r *GiftCardRepository) Create(ctx context.Context, card *domain.GiftCard) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.cards[card.Code]; ok {
		return domain.NewDuplicateGiftCardError(card.Code)
	}
	stored := *card
	r.cards[card.Code] = &stored
	return nil
}

func (r *GiftCardRepository) FindByCode(ctx context.Context, code string) (*domain.GiftCard, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	card, ok := r.cards[code]
	if !ok {
		return nil, domain.NewGiftCardNotFoundError(code)
	}
	out := *card
	return &out, nil
}

// Debit holds the write lock across the balance check and the decrement, so
// two concurrent debits against one code cannot both observe the old balance.
func (r *GiftCardRepository) Debit(ctx context.Context, code string, amountCents int64) (*domain.GiftCard, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	card, ok := r.cards[code]
	if !ok {
		return nil, domain.NewGiftCardNotFoundError(code)
	}
	if err := card.Debit(amountCents); err != nil {
		return nil, err
	}
	out := *card
	return &out, nil
}
