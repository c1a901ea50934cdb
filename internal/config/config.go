package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/statusfeed/statusfeed-go/internal/crypto"
)

type Config struct {
	Port        string
	Env         string
	DatabaseDSN string
	JWTSecret   string
	JWTExpiry   time.Duration
}

func Load() Config {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		DatabaseDSN: getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/statusfeed?parseTime=true"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		JWTExpiry:   24 * time.Hour,
	}

	if cfg.JWTSecret == "" {
		if cfg.Env == "production" {
			slog.Error("JWT_SECRET must be set in production environment")
			os.Exit(1)
		}

		secret, err := crypto.NewSigningSecret()
		if err != nil {
			slog.Error("failed to generate signing secret", "error", err)
			os.Exit(1)
		}
		cfg.JWTSecret = secret
		slog.Warn("JWT_SECRET not set, generated an ephemeral secret; sessions will not survive a restart")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
