package settings

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("settings not found")

const (
	DefaultTheme    = "Dark"
	DefaultCurrency = "USD"
)

// Record is the system-wide singleton settings document.
type Record struct {
	Theme         string `json:"theme"`
	Notifications bool   `json:"notifications"`
	Currency      string `json:"currency"`
}

func Defaults() Record {
	return Record{Theme: DefaultTheme, Notifications: true, Currency: DefaultCurrency}
}

// The singleton row is pinned to id = 1 by a CHECK constraint, which lets
// every mutation be a single ON CONFLICT statement instead of the racy
// read-then-write the dashboard originally did.
type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

// Get returns the settings record, creating it with defaults on first read.
// Concurrent first reads are safe: the insert is ON CONFLICT DO NOTHING and
// the value is then re-read.
func (s *Store) Get(ctx context.Context) (Record, error) {
	if _, err := s.DB.Exec(ctx, "INSERT INTO settings (id) VALUES (1) ON CONFLICT (id) DO NOTHING"); err != nil {
		return Record{}, err
	}
	var rec Record
	err := s.DB.QueryRow(ctx, "SELECT theme, notifications, currency FROM settings WHERE id = 1").
		Scan(&rec.Theme, &rec.Notifications, &rec.Currency)
	return rec, err
}

// Upsert atomically applies the given fields, leaving nil fields at their
// prior value (or the default when the row does not exist yet).
func (s *Store) Upsert(ctx context.Context, theme *string, notifications *bool, currency *string) (Record, error) {
	var rec Record
	err := s.DB.QueryRow(ctx, `
    INSERT INTO settings (id, theme, notifications, currency)
    VALUES (1, COALESCE($1, $4), COALESCE($2, true), COALESCE($3, $5))
    ON CONFLICT (id) DO UPDATE SET
      theme = COALESCE($1, settings.theme),
      notifications = COALESCE($2, settings.notifications),
      currency = COALESCE($3, settings.currency)
    RETURNING theme, notifications, currency
  `, theme, notifications, currency, DefaultTheme, DefaultCurrency).
		Scan(&rec.Theme, &rec.Notifications, &rec.Currency)
	return rec, err
}

// Delete removes the singleton, resetting the system to defaults on the
// next read.
func (s *Store) Delete(ctx context.Context) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM settings WHERE id = 1")
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
