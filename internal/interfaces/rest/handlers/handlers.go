// Package handlers exposes the till's operations over HTTP.
package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator"
	"github.com/kofiasare/playtill/internal/domain"
)

type MenuService interface {
	AddItem(ctx context.Context, name string, priceCents int64, category *string) error
	EditItem(ctx context.Context, index int, name string, priceCents int64, category *string) error
	RemoveItem(ctx context.Context, index int) error
	GetMenu(ctx context.Context) ([]domain.MenuItem, error)
	GetMenuByCategory(ctx context.Context) ([]domain.MenuGroup, error)
}

type GiftCardService interface {
	Issue(ctx context.Context, code string, balanceCents int64) error
	Get(ctx context.Context, code string) (*domain.GiftCard, error)
	Use(ctx context.Context, code string, amountCents int64) (*domain.GiftCard, error)
}

type CustomCardService interface {
	Register(ctx context.Context, identifier, qrPayload string) error
	Validate(ctx context.Context, qrPayload string) (string, error)
}

type TransactionService interface {
	Record(ctx context.Context, items []domain.TransactionItem, totalCents int64, paymentMethod string) (*domain.Transaction, error)
}

type Handler struct {
	menu         MenuService
	giftCards    GiftCardService
	customCards  CustomCardService
	transactions TransactionService
	validate     *validator.Validate
	logger       *slog.Logger
}

func NewHandler(
	menu MenuService,
	giftCards GiftCardService,
	customCards CustomCardService,
	transactions TransactionService,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		menu:         menu,
		giftCards:    giftCards,
		customCards:  customCards,
		transactions: transactions,
		validate:     validator.New(),
		logger:       logger,
	}
}

func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /menu/items", h.HandleAddMenuItem)
	mux.HandleFunc("PUT /menu/items/{index}", h.HandleEditMenuItem)
	mux.HandleFunc("DELETE /menu/items/{index}", h.HandleRemoveMenuItem)
	mux.HandleFunc("GET /menu", h.HandleGetMenu)
	mux.HandleFunc("GET /menu/by-category", h.HandleGetMenuByCategory)

	mux.HandleFunc("POST /giftcards", h.HandleIssueGiftCard)
	mux.HandleFunc("GET /giftcards/{code}", h.HandleGetGiftCard)
	mux.HandleFunc("POST /giftcards/{code}/use", h.HandleUseGiftCard)

	mux.HandleFunc("POST /cards", h.HandleAddCustomCard)
	mux.HandleFunc("POST /cards/validate", h.HandleValidateCustomCard)

	mux.HandleFunc("POST /transactions", h.HandleCompleteTransaction)

	mux.HandleFunc("GET /healthz", h.HandleHealth)
}

func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
