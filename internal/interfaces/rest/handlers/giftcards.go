package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/kofiasare/playtill/internal/domain"
	"github.com/kofiasare/playtill/internal/interfaces/rest"
)

type IssueGiftCardRequest struct {
	Code         string `json:"code" validate:"required"`
	BalanceCents int64  `json:"balance_cents" validate:"required,gt=0"`
}

type UseGiftCardRequest struct {
	AmountCents int64 `json:"amount_cents" validate:"required,gt=0"`
}

type GiftCardResponse struct {
	Code         string `json:"code"`
	BalanceCents int64  `json:"balance_cents"`
}

func (h *Handler) HandleIssueGiftCard(w http.ResponseWriter, r *http.Request) {
	var req IssueGiftCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.WriteError(w, domain.NewValidationError("invalid request body"), h.logger)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		rest.WriteError(w, domain.NewValidationError(err.Error()), h.logger)
		return
	}

	if err := h.giftCards.Issue(r.Context(), req.Code, req.BalanceCents); err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}
	rest.WriteJSON(w, http.StatusCreated, nil)
}

func (h *Handler) HandleGetGiftCard(w http.ResponseWriter, r *http.Request) {
	card, err := h.giftCards.Get(r.Context(), r.PathValue("code"))
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}
	rest.WriteJSON(w, http.StatusOK, GiftCardResponse{
		Code:         card.Code,
		BalanceCents: card.BalanceCents,
	})
}

func (h *Handler) HandleUseGiftCard(w http.ResponseWriter, r *http.Request) {
	var req UseGiftCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.WriteError(w, domain.NewValidationError("invalid request body"), h.logger)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		rest.WriteError(w, domain.NewValidationError(err.Error()), h.logger)
		return
	}

	card, err := h.giftCards.Use(r.Context(), r.PathValue("code"), req.AmountCents)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}
	rest.WriteJSON(w, http.StatusOK, GiftCardResponse{
		Code:         card.Code,
		BalanceCents: card.BalanceCents,
	})
}
