// Package application holds the ports and services that sit between the
// HTTP surface and the stores.
package application

import (
	"context"

	"github.com/kofiasare/playtill/internal/domain"
)

// MenuRepository is the port for the ordered catalog. Positional operations
// report OUT_OF_RANGE for positions that do not currently exist.
type MenuRepository interface {
	Add(ctx context.Context, item domain.MenuItem) error
	ReplaceAt(ctx context.Context, index int, item domain.MenuItem) error
	RemoveAt(ctx context.Context, index int) error
	List(ctx context.Context) ([]domain.MenuItem, error)
}

// GiftCardRepository is the port for the gift card ledger. Create reports
// ALREADY_EXISTS for duplicate codes. Debit must perform the balance check
// and the decrement as one indivisible step per card.
type GiftCardRepository interface {
	Create(ctx context.Context, card *domain.GiftCard) error
	FindByCode(ctx context.Context, code string) (*domain.GiftCard, error)
	Debit(ctx context.Context, code string, amountCents int64) (*domain.GiftCard, error)
}

// CustomCardRepository is the port for the card registry. Create reports
// ALREADY_EXISTS when either the identifier or the token is taken; the
// existence check and insert are one atomic step.
type CustomCardRepository interface {
	Create(ctx context.Context, card *domain.CustomCreditCard) error
	FindByPayload(ctx context.Context, qrPayload string) (*domain.CustomCreditCard, error)
}

// TransactionRepository is the port for the append-only sales log. The core
// only ever writes; receipt playback is a client concern.
type TransactionRepository interface {
	Append(ctx context.Context, trx *domain.Transaction) error
}
