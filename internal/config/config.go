package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"homeservices/internal/domain"
)

const (
	defaultListenAddr  = ":8080"
	defaultDatabaseDSN = "homeservices.db"
	defaultJWTSecret   = "change-me-jwt-secret"
	defaultTokenTTL    = "60m"
)

type Config struct {
	ListenAddr  string
	DatabaseDSN string
	JWTSecret   string
	TokenTTL    time.Duration
	Roles       *domain.RoleRegistry
}

// Load reads the runtime configuration from the environment, applying
// defaults suitable for local development.
func Load() (*Config, error) {
	cfg := &Config{
		ListenAddr:  getEnv("LISTEN_ADDR", defaultListenAddr),
		DatabaseDSN: getEnv("DATABASE_URL", defaultDatabaseDSN),
		JWTSecret:   strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret)),
		Roles:       DefaultRoleRegistry(),
	}

	ttl, err := parseDurationEnv("TOKEN_TTL", defaultTokenTTL)
	if err != nil {
		return nil, err
	}
	cfg.TokenTTL = ttl

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is empty")
	}
	return cfg, nil
}

// DefaultRoleRegistry enumerates the fixed role set per user type. The
// registry is explicit injected configuration, not a mutable global.
func DefaultRoleRegistry() *domain.RoleRegistry {
	return domain.NewRoleRegistry(map[domain.UserType][]string{
		domain.TypeEndUser:          {"Head of House", "Family member"},
		domain.TypeServiceProvider:  {"Admin", "Employee", "Supervisor"},
		domain.TypePlatformProvider: {"Admin", "Employee", "Service Desk"},
	})
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseDurationEnv(key, fallback string) (time.Duration, error) {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be positive", key, raw)
	}
	return d, nil
}
