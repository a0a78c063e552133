package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/kofiasare/playtill/internal/domain"
	"github.com/kofiasare/playtill/internal/interfaces/rest"
)

type AddCustomCardRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	QRPayload  string `json:"qr_payload" validate:"required"`
}

// ValidateCardRequest carries the decoded QR string. Where it came from
// (camera scan or manual entry) is the client's business.
type ValidateCardRequest struct {
	QRPayload string `json:"qr_payload" validate:"required"`
}

type ValidateCardResponse struct {
	Identifier string `json:"identifier"`
}

func (h *Handler) HandleAddCustomCard(w http.ResponseWriter, r *http.Request) {
	var req AddCustomCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.WriteError(w, domain.NewValidationError("invalid request body"), h.logger)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		rest.WriteError(w, domain.NewValidationError(err.Error()), h.logger)
		return
	}

	if err := h.customCards.Register(r.Context(), req.Identifier, req.QRPayload); err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}
	rest.WriteJSON(w, http.StatusCreated, nil)
}

func (h *Handler) HandleValidateCustomCard(w http.ResponseWriter, r *http.Request) {
	var req ValidateCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.WriteError(w, domain.NewValidationError("invalid request body"), h.logger)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		rest.WriteError(w, domain.NewValidationError(err.Error()), h.logger)
		return
	}

	identifier, err := h.customCards.Validate(r.Context(), req.QRPayload)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}
	rest.WriteJSON(w, http.StatusOK, ValidateCardResponse{Identifier: identifier})
}
