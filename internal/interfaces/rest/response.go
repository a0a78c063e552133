// Package rest carries the JSON envelope and the mapping from domain error
// codes to HTTP statuses.
package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/kofiasare/playtill/internal/domain"
)

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := APIResponse{
		Success: status >= 200 && status < 300,
	}

	if response.Success {
		response.Data = data
	} else if apiErr, ok := data.(*APIError); ok {
		response.Error = apiErr
	}

	_ = json.NewEncoder(w).Encode(response)
}

// WriteError maps domain errors to HTTP responses. Anything that is not a
// DomainError is an internal fault and is logged rather than echoed.
func WriteError(w http.ResponseWriter, err error, logger *slog.Logger) {
	var domainErr *domain.DomainError
	if !errors.As(err, &domainErr) {
		logger.Error("internal error", "error", err)
		WriteJSON(w, http.StatusInternalServerError, &APIError{
			Code:    "INTERNAL_ERROR",
			Message: "An internal error occurred",
		})
		return
	}

	status := http.StatusBadRequest
	switch domainErr.Code {
	case domain.ErrCodeNotFound, domain.ErrCodeInvalidToken, domain.ErrCodeOutOfRange:
		status = http.StatusNotFound
	case domain.ErrCodeAlreadyExists, domain.ErrCodeInsufficientBalance:
		status = http.StatusConflict
	case domain.ErrCodeValidation:
		status = http.StatusBadRequest
	}

	WriteJSON(w, status, &APIError{
		Code:    domainErr.Code,
		Message: domainErr.Message,
	})
}
