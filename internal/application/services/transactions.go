package services

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/kofiasare/playtill/internal/application"
	"github.com/kofiasare/playtill/internal/domain"
)

type TransactionService struct {
	repo   application.TransactionRepository
	logger *slog.Logger
}

func NewTransactionService(repo application.TransactionRepository, logger *slog.Logger) *TransactionService {
	return &TransactionService{repo: repo, logger: logger}
}

// Record appends a completed sale and returns it with its generated
// identifier so the till can show the receipt right away.
func (s *TransactionService) Record(ctx context.Context, items []domain.TransactionItem, totalCents int64, paymentMethod string) (*domain.Transaction, error) {
	trx := domain.NewTransaction(uuid.New().String(), items, totalCents, paymentMethod)
	if err := s.repo.Append(ctx, trx); err != nil {
		return nil, err
	}
	s.logger.Info("transaction recorded",
		"id", trx.ID,
		"items", len(trx.Items),
		"total_cents", trx.TotalCents,
		"payment_method", trx.PaymentMethod,
	)
	return trx, nil
}
