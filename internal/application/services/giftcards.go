package services

import (
	"context"
	"log/slog"

	"github.com/kofiasare/playtill/internal/application"
	"github.com/kofiasare/playtill/internal/domain"
)

type GiftCardService struct {
	repo   application.GiftCardRepository
	logger *slog.Logger
}

func NewGiftCardService(repo application.GiftCardRepository, logger *slog.Logger) *GiftCardService {
	return &GiftCardService{repo: repo, logger: logger}
}

// Issue creates a card with a starting balance. The code must be unused and
// the balance positive.
func (s *GiftCardService) Issue(ctx context.Context, code string, balanceCents int64) error {
	card, err := domain.NewGiftCard(code, balanceCents)
	if err != nil {
		return err
	}
	if err := s.repo.Create(ctx, card); err != nil {
		return err
	}
	s.logger.Info("gift card issued", "code", code, "balance_cents", balanceCents)
	return nil
}

// Get looks up a card by code.
func (s *GiftCardService) Get(ctx context.Context, code string) (*domain.GiftCard, error) {
	return s.repo.FindByCode(ctx, code)
}

// Use debits the card. The check and the decrement happen inside the store
// as one step, so two concurrent uses cannot both spend the same balance.
func (s *GiftCardService) Use(ctx context.Context, code string, amountCents int64) (*domain.GiftCard, error) {
	if amountCents <= 0 {
		return nil, domain.NewValidationError("debit amount must be positive")
	}
	card, err := s.repo.Debit(ctx, code, amountCents)
	if err != nil {
		return nil, err
	}
	s.logger.Info("gift card debited",
		"code", code,
		"amount_cents", amountCents,
		"remaining_cents", card.BalanceCents,
	)
	return card, nil
}
