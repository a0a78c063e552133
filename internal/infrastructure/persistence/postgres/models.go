package postgres

type menuItemModel struct {
	Position   int
	Name       string
	PriceCents int64
	Category   *string
}

type giftCardModel struct {
	Code         string
	BalanceCents int64
}

type customCardModel struct {
	Identifier string
	QRPayload  string
}

// transactionItemModel is the JSONB shape of one receipt line.
type transactionItemModel struct {
	Name       string  `json:"name"`
	PriceCents int64   `json:"price_cents"`
	Category   *string `json:"category,omitempty"`
}
