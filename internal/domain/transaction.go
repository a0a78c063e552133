package domain

import "time"

// TransactionItem is a line on the receipt. It copies the menu fields at
// sale time so later catalog edits do not rewrite history.
type TransactionItem struct {
	Name       string
	PriceCents int64
	Category   *string
}

// Transaction is an immutable record of one completed sale. PaymentMethod
// is free text supplied by the till ("Fake Cash", "Gift Card (GC100)", ...)
// and is stored for display only, never parsed.
type Transaction struct {
	ID            string
	Items         []TransactionItem
	TotalCents    int64
	PaymentMethod string
	RecordedAt    time.Time
}

// NewTransaction builds a sale record with the given generated identifier
// and stamps it with the capture time.
func NewTransaction(id string, items []TransactionItem, totalCents int64, paymentMethod string) *Transaction {
	return &Transaction{
		ID:            id,
		Items:         items,
		TotalCents:    totalCents,
		PaymentMethod: paymentMethod,
		RecordedAt:    time.Now(),
	}
}
