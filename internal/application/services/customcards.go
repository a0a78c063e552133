package services

import (
	"context"
	"log/slog"

	"github.com/kofiasare/playtill/internal/application"
	"github.com/kofiasare/playtill/internal/domain"
)

type CustomCardService struct {
	repo   application.CustomCardRepository
	logger *slog.Logger
}

func NewCustomCardService(repo application.CustomCardRepository, logger *slog.Logger) *CustomCardService {
	return &CustomCardService{repo: repo, logger: logger}
}

// Register stores a new identifier/token pair. Both halves must be unique;
// a shared token would make validation ambiguous.
func (s *CustomCardService) Register(ctx context.Context, identifier, qrPayload string) error {
	card, err := domain.NewCustomCreditCard(identifier, qrPayload)
	if err != nil {
		return err
	}
	if err := s.repo.Create(ctx, card); err != nil {
		return err
	}
	s.logger.Info("custom card registered", "identifier", identifier)
	return nil
}

// Validate resolves a scanned token to the identifier it was registered
// under. The exact token string is the whole credential.
func (s *CustomCardService) Validate(ctx context.Context, qrPayload string) (string, error) {
	if qrPayload == "" {
		return "", domain.NewInvalidTokenError()
	}
	card, err := s.repo.FindByPayload(ctx, qrPayload)
	if err != nil {
		return "", err
	}
	return card.Identifier, nil
}
