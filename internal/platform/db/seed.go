package db

import (
	"context"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"hrmdash/internal/domain/auth"
	"hrmdash/internal/platform/config"
)

// Seed ensures the bootstrap admin account exists. There is no
// self-registration, so a fresh database is unusable without it.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	username := strings.TrimSpace(cfg.SeedAdminUsername)
	password := cfg.SeedAdminPassword
	if username == "" || password == "" {
		slog.Warn("admin seed skipped: SEED_ADMIN_USERNAME/SEED_ADMIN_PASSWORD not set")
		return nil
	}

	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM accounts WHERE username = $1", username).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
    INSERT INTO accounts (username, email, password_hash, role)
    VALUES ($1, NULLIF($2, ''), $3, $4)
    ON CONFLICT (username) DO NOTHING
  `, username, strings.TrimSpace(cfg.SeedAdminEmail), hash, auth.RoleAdmin)
	if err != nil {
		return err
	}
	slog.Info("seeded admin account", "username", username)
	return nil
}
