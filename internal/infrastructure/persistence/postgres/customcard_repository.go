package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/kofiasare/playtill/internal/domain"
)

type CustomCardRepository struct {
	db *DB
}

func NewCustomCardRepository(db *DB) *CustomCardRepository {
	return &CustomCardRepository{db: db}
}

func (r *CustomCardRepository) Create(ctx context.Context, card *domain.CustomCreditCard) error {
	query := `INSERT INTO custom_cards (identifier, qr_payload) VALUES ($1, $2)`
	_, err := r.db.Pool.Exec(ctx, query, card.Identifier, card.QRPayload)
	if err != nil {
		if constraint, ok := uniqueViolationConstraint(err); ok {
			if constraint == "custom_cards_qr_payload_key" {
				return domain.NewDuplicateCardTokenError()
			}
			return domain.NewDuplicateCardError(card.Identifier)
		}
		return fmt.Errorf("failed to register custom card: %w", err)
	}
	return nil
}

func (r *CustomCardRepository) FindByPayload(ctx context.Context, qrPayload string) (*domain.CustomCreditCard, error) {
	query := `SELECT identifier, qr_payload FROM custom_cards WHERE qr_payload = $1`
	var m customCardModel
	err := r.db.Pool.QueryRow(ctx, query, qrPayload).Scan(&m.Identifier, &m.QRPayload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewInvalidTokenError()
		}
		return nil, fmt.Errorf("failed to scan custom card: %w", err)
	}
	return toDomainCustomCard(m), nil
}
