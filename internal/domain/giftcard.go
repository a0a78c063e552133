package domain

// GiftCard is a prepaid balance identified by a unique code. The balance
// only ever decreases and never goes below zero.
type GiftCard struct {
	Code         string
	BalanceCents int64
}

// NewGiftCard validates and builds a card for issuance. A card must start
// with a positive balance or the non-negative invariant carries no meaning.
func NewGiftCard(code string, balanceCents int64) (*GiftCard, error) {
	if code == "" {
		return nil, NewValidationError("gift card code is required")
	}
	if balanceCents <= 0 {
		return nil, NewValidationError("gift card balance must be positive")
	}
	return &GiftCard{
		Code:         code,
		BalanceCents: balanceCents,
	}, nil
}

// Debit reduces the balance by amountCents. The card is left untouched when
// the debit would overdraw it.
func (g *GiftCard) Debit(amountCents int64) error {
	if amountCents <= 0 {
		return NewValidationError("debit amount must be positive")
	}
	if amountCents > g.BalanceCents {
		return NewInsufficientBalanceError(g.Code, g.BalanceCents, amountCents)
	}
	g.BalanceCents -= amountCents
	return nil
}
