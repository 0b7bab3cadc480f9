package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	authService "gotodo/internal/application/auth"
	todoService "gotodo/internal/application/todo"
	"gotodo/internal/delivery/http/handler"
	"gotodo/internal/delivery/http/router"
	"gotodo/internal/infrastructure/config"
	"gotodo/internal/infrastructure/database"
	"gotodo/internal/infrastructure/ratelimit"
	"gotodo/internal/infrastructure/repository"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := run(logger); err != nil {
		logger.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	todoRepo := repository.NewTodoRepository(db)

	// Services
	tokens := authService.NewTokenService([]byte(cfg.JWTSecret), cfg.TokenTTL)
	authSvc := authService.NewService(userRepo, tokens)
	todoSvc := todoService.NewService(todoRepo)

	// Handlers
	handlers := router.Handlers{
		Auth: handler.NewAuthHandler(authSvc, cfg.SecureCookies),
		Todo: handler.NewTodoHandler(todoSvc),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	limiter := ratelimit.NewMemory(cfg.RateLimitMax, cfg.RateLimitWindow)
	go limiter.Start(ctx, cfg.RateLimitWindow)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router.Setup(handlers, authSvc, limiter, cfg.AllowedOrigins, logger),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "database", cfg.DatabasePath)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
