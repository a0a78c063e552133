package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kofiasare/playtill/internal/application"
	"github.com/kofiasare/playtill/internal/application/services"
	"github.com/kofiasare/playtill/internal/config"
	"github.com/kofiasare/playtill/internal/infrastructure/persistence/memory"
	"github.com/kofiasare/playtill/internal/infrastructure/persistence/postgres"
	"github.com/kofiasare/playtill/internal/interfaces/rest/handlers"
	"github.com/kofiasare/playtill/internal/interfaces/rest/middleware"
)

type repositories struct {
	menu         application.MenuRepository
	giftCards    application.GiftCardRepository
	customCards  application.CustomCardRepository
	transactions application.TransactionRepository
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting playtill service",
		"port", cfg.Server.Port,
		"store", cfg.Store.Driver,
		"log_level", cfg.Logger.Level,
	)

	ctx := context.Background()
	repos, cleanup, err := buildRepositories(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize store", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	menuService := services.NewMenuService(repos.menu)
	giftCardService := services.NewGiftCardService(repos.giftCards, logger)
	customCardService := services.NewCustomCardService(repos.customCards, logger)
	transactionService := services.NewTransactionService(repos.transactions, logger)

	h := handlers.NewHandler(
		menuService,
		giftCardService,
		customCardService,
		transactionService,
		logger,
	)

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)

	handler := middleware.Recovery(logger)(mux)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Timeout(cfg.Server.ReadTimeout)(handler)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}

func buildRepositories(ctx context.Context, cfg *config.Config, logger *slog.Logger) (repositories, func(), error) {
	if cfg.Store.Driver == config.StorePostgres {
		db, err := postgres.Connect(ctx, &cfg.Database, logger)
		if err != nil {
			return repositories{}, nil, err
		}
		if err := db.Migrate(ctx); err != nil {
			db.Close()
			return repositories{}, nil, err
		}
		return repositories{
			menu:         postgres.NewMenuRepository(db),
			giftCards:    postgres.NewGiftCardRepository(db),
			customCards:  postgres.NewCustomCardRepository(db),
			transactions: postgres.NewTransactionRepository(db),
		}, db.Close, nil
	}

	return repositories{
		menu:         memory.NewMenuRepository(),
		giftCards:    memory.NewGiftCardRepository(),
		customCards:  memory.NewCustomCardRepository(),
		transactions: memory.NewTransactionRepository(),
	}, func() {}, nil
}
