package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/kofiasare/playtill/internal/domain"
	"github.com/kofiasare/playtill/internal/interfaces/rest"
)

type MenuItemRequest struct {
	Name       string  `json:"name" validate:"required"`
	PriceCents int64   `json:"price_cents" validate:"gte=0"`
	Category   *string `json:"category"`
}

type MenuItemResponse struct {
	Name       string  `json:"name"`
	PriceCents int64   `json:"price_cents"`
	Category   *string `json:"category,omitempty"`
}

type MenuGroupResponse struct {
	Category *string            `json:"category"`
	Items    []MenuItemResponse `json:"items"`
}

func (h *Handler) HandleAddMenuItem(w http.ResponseWriter, r *http.Request) {
	var req MenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.WriteError(w, domain.NewValidationError("invalid request body"), h.logger)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		rest.WriteError(w, domain.NewValidationError(err.Error()), h.logger)
		return
	}

	if err := h.menu.AddItem(r.Context(), req.Name, req.PriceCents, req.Category); err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}
	rest.WriteJSON(w, http.StatusCreated, nil)
}

func (h *Handler) HandleEditMenuItem(w http.ResponseWriter, r *http.Request) {
	index, ok := h.pathIndex(w, r)
	if !ok {
		return
	}

	var req MenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.WriteError(w, domain.NewValidationError("invalid request body"), h.logger)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		rest.WriteError(w, domain.NewValidationError(err.Error()), h.logger)
		return
	}

	if err := h.menu.EditItem(r.Context(), index, req.Name, req.PriceCents, req.Category); err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}
	rest.WriteJSON(w, http.StatusOK, nil)
}

func (h *Handler) HandleRemoveMenuItem(w http.ResponseWriter, r *http.Request) {
	index, ok := h.pathIndex(w, r)
	if !ok {
		return
	}

	if err := h.menu.RemoveItem(r.Context(), index); err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}
	rest.WriteJSON(w, http.StatusOK, nil)
}

func (h *Handler) HandleGetMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.menu.GetMenu(r.Context())
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}
	rest.WriteJSON(w, http.StatusOK, toAPIMenuItems(items))
}

func (h *Handler) HandleGetMenuByCategory(w http.ResponseWriter, r *http.Request) {
	groups, err := h.menu.GetMenuByCategory(r.Context())
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	out := make([]MenuGroupResponse, len(groups))
	for i, g := range groups {
		out[i] = MenuGroupResponse{
			Category: g.Category,
			Items:    toAPIMenuItems(g.Items),
		}
	}
	rest.WriteJSON(w, http.StatusOK, out)
}

func (h *Handler) pathIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		rest.WriteError(w, domain.NewValidationError("index must be an integer"), h.logger)
		return 0, false
	}
	return index, true
}

func toAPIMenuItems(items []domain.MenuItem) []MenuItemResponse {
	out := make([]MenuItemResponse, len(items))
	for i, item := range items {
		out[i] = MenuItemResponse{
			Name:       item.Name,
			PriceCents: item.PriceCents,
			Category:   item.Category,
		}
	}
	return out
}
