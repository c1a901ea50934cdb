package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/statusfeed/statusfeed-go/internal/config"
	"github.com/statusfeed/statusfeed-go/internal/repository"
	"github.com/statusfeed/statusfeed-go/internal/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	var users repository.UserRepository
	var statuses repository.StatusRepository

	db, err := repository.NewDB(context.Background(), cfg.DatabaseDSN)
	if err != nil {
		if cfg.Env == "production" {
			slog.Error("database connection failed", "error", err)
			os.Exit(1)
		}
		slog.Warn("database unavailable, serving from in-memory storage; data will not survive a restart", "error", err)
		users = repository.NewMemoryUserRepository()
		statuses = repository.NewMemoryStatusRepository()
	} else {
		defer db.Close()
		users = repository.NewMySQLUserRepository(db)
		statuses = repository.NewMySQLStatusRepository(db)
	}

	r := server.New(server.Config{
		JWTSecret: cfg.JWTSecret,
		JWTExpiry: cfg.JWTExpiry,
		Users:     users,
		Statuses:  statuses,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
