package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/kofiasare/playtill/internal/domain"
)

type GiftCardRepository struct {
	db *DB
}

func NewGiftCardRepository(db *DB) *GiftCardRepository {
	return &GiftCardRepository{db: db}
}

func (r *GiftCardRepository) Create(ctx context.Context, card *domain.GiftCard) error {
	query := `INSERT INTO gift_cards (code, balance_cents) VALUES ($1, $2)`
	_, err := r.db.Pool.Exec(ctx, query, card.Code, card.BalanceCents)
	if err != nil {
		if IsUniqueViolation(err) {
			return domain.NewDuplicateGiftCardError(card.Code)
		}
		return fmt.Errorf("failed to create gift card: %w", err)
	}
	return nil
}

func (r *GiftCardRepository) FindByCode(ctx context.Context, code string) (*domain.GiftCard, error) {
	query := `SELECT code, balance_cents FROM gift_cards WHERE code = $1`
	row := r.db.Pool.QueryRow(ctx, query, code)
	return scanGiftCard(row, code)
}

// Debit locks the card's row for the duration of the check-then-act, so
// concurrent debits serialize and none observes a stale balance.
func (r *GiftCardRepository) Debit(ctx context.Context, code string, amountCents int64) (*domain.GiftCard, error) {
	var card *domain.GiftCard
	err := r.db.WithTx(ctx, func(tx pgx.Tx) error {
		query := `SELECT code, balance_cents FROM gift_cards WHERE code = $1 FOR UPDATE`
		row := tx.QueryRow(ctx, query, code)

		var txErr error
		card, txErr = scanGiftCard(row, code)
		if txErr != nil {
			return txErr
		}
		if txErr := card.Debit(amountCents); txErr != nil {
			return txErr
		}

		_, txErr = tx.Exec(ctx, `UPDATE gift_cards SET balance_cents = $2 WHERE code = $1`, code, card.BalanceCents)
		if txErr != nil {
			return fmt.Errorf("failed to update gift card balance: %w", txErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return card, nil
}

func scanGiftCard(row pgx.Row, code string) (*domain.GiftCard, error) {
	var m giftCardModel
	if err := row.Scan(&m.Code, &m.BalanceCents); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewGiftCardNotFoundError(code)
		}
		return nil, fmt.Errorf("failed to scan gift card: %w", err)
	}
	return toDomainGiftCard(m), nil
}
