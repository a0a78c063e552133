package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/kofiasare/playtill/internal/domain"
	"github.com/kofiasare/playtill/internal/interfaces/rest"
)

type TransactionItemRequest struct {
	Name       string  `json:"name"`
	PriceCents int64   `json:"price_cents"`
	Category   *string `json:"category"`
}

// CompleteTransactionRequest is accepted as-is beyond its shape: the
// recorder never rejects a sale.
type CompleteTransactionRequest struct {
	Items         []TransactionItemRequest `json:"items"`
	TotalCents    int64                    `json:"total_cents"`
	PaymentMethod string                   `json:"payment_method"`
}

type CompleteTransactionResponse struct {
	ID         string    `json:"id"`
	RecordedAt time.Time `json:"recorded_at"`
}

func (h *Handler) HandleCompleteTransaction(w http.ResponseWriter, r *http.Request) {
	var req CompleteTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.WriteError(w, domain.NewValidationError("invalid request body"), h.logger)
		return
	}

	items := make([]domain.TransactionItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = domain.TransactionItem{
			Name:       item.Name,
			PriceCents: item.PriceCents,
			Category:   item.Category,
		}
	}

	trx, err := h.transactions.Record(r.Context(), items, req.TotalCents, req.PaymentMethod)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}
	rest.WriteJSON(w, http.StatusCreated, CompleteTransactionResponse{
		ID:         trx.ID,
		RecordedAt: trx.RecordedAt,
	})
}
