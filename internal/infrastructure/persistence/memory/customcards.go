package memory

import (
	"context"
	"sync"

	"github.com/kofiasare/playtill/internal/domain"
)

type CustomCardRepository struct {
	mu          sync.RWMutex
	byPayload   map[string]domain.CustomCreditCard
	identifiers map[string]struct{}
}

func NewCustomCardRepository() *CustomCardRepository {
	return &CustomCardRepository{
		byPayload:   make(map[string]domain.CustomCreditCard),
		identifiers: make(map[string]struct{}),
	}
}

func (r *CustomCardRepository) Create(ctx context.Context, card *domain.CustomCreditCard) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.identifiers[card.Identifier]; ok {
		return domain.NewDuplicateCardError(card.Identifier)
	}
	if _, ok := r.byPayload[card.QRPayload]; ok {
		return domain.NewDuplicateCardTokenError()
	}
	r.byPayload[card.QRPayload] = *card
	r.identifiers[card.Identifier] = struct{}{}
	return nil
}

func (r *CustomCardRepository) FindByPayload(ctx context.Context, qrPayload string) (*domain.CustomCreditCard, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	card, ok := r.byPayload[qrPayload]
	if !ok {
		return nil, domain.NewInvalidTokenError()
	}
	out := card
	return &out, nil
}
