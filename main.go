package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mgirard/hbnb/internal/config"
	"github.com/mgirard/hbnb/internal/domain"
	"github.com/mgirard/hbnb/internal/handler"
	"github.com/mgirard/hbnb/internal/repository/memory"
	"github.com/mgirard/hbnb/internal/repository/sqlite"
	"github.com/mgirard/hbnb/internal/service"
	"github.com/mgirard/hbnb/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Setup("info")
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel)

	store, err := openStore(cfg)
	if err != nil {
		slog.Error("failed to open storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.Migrate(context.Background()); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("storage ready", "backend", cfg.Storage)

	facade := service.NewFacade(store, cfg.BcryptCost)
	auth := service.NewAuthService(store.Users(), cfg.JWTSecret, time.Duration(cfg.TokenTTLHr)*time.Hour)

	if err := seedAdmin(context.Background(), facade, cfg); err != nil {
		slog.Error("failed to seed admin user", "error", err)
		os.Exit(1)
	}

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, auth, facade)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler.RequestLogger(handler.Metrics(mux)),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

func openStore(cfg config.App) (domain.Store, error) {
	if cfg.Storage == "memory" {
		return memory.New(), nil
	}
	return sqlite.New(cfg.DatabasePath)
}

// seedAdmin creates the bootstrap admin account when ADMIN_EMAIL and
// ADMIN_PASSWORD are configured and no user with that email exists yet.
func seedAdmin(ctx context.Context, facade *service.Facade, cfg config.App) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil
	}

	if _, err := facade.GetUserByEmail(ctx, cfg.AdminEmail); err == nil {
		return nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	_, err := facade.CreateUser(ctx, service.CreateUserInput{
		FirstName: "Admin",
		LastName:  "HBnB",
		Email:     cfg.AdminEmail,
		Password:  cfg.AdminPassword,
		IsAdmin:   true,
	})
	if err != nil {
		return err
	}
	slog.Info("admin user seeded", "email", cfg.AdminEmail)
	return nil
}
