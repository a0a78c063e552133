package domain

// CustomCreditCard is a locally issued credential: a human-chosen name tied
// to an opaque QR token. Possession of the exact token string is the only
// thing checked at the till. Cards are immutable once registered.
type CustomCreditCard struct {
	Identifier string
	QRPayload  string
}

func NewCustomCreditCard(identifier, qrPayload string) (*CustomCreditCard, error) {
	if identifier == "" {
		return nil, NewValidationError("card identifier is required")
	}
	if qrPayload == "" {
		return nil, NewValidationError("card token is required")
	}
	return &CustomCreditCard{
		Identifier: identifier,
		QRPayload:  qrPayload,
	}, nil
}
