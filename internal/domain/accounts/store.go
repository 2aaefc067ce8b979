package accounts

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) List(ctx context.Context) ([]Account, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, username, COALESCE(email, ''), role, created_at
    FROM accounts
    ORDER BY created_at
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Account, 0)
	for rows.Next() {
		var acc Account
		if err := rows.Scan(&acc.ID, &acc.Username, &acc.Email, &acc.Role, &acc.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, acc)
	}
	return out, rows.Err()
}

func (s *Store) GetByID(ctx context.Context, id string) (Account, error) {
	// Path ids arrive unvalidated; a malformed one cannot match any row.
	if uuid.Validate(id) != nil {
		return Account{}, ErrNotFound
	}
	var acc Account
	err := s.DB.QueryRow(ctx, `
    SELECT id, username, COALESCE(email, ''), role, created_at
    FROM accounts
    WHERE id = $1
  `, id).Scan(&acc.ID, &acc.Username, &acc.Email, &acc.Role, &acc.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Account{}, ErrNotFound
	}
	return acc, err
}

func (s *Store) FindByUsername(ctx context.Context, username string) (AuthRecord, error) {
	var rec AuthRecord
	err := s.DB.QueryRow(ctx, `
    SELECT id, username, COALESCE(email, ''), role, created_at, password_hash
    FROM accounts
    WHERE username = $1
  `, username).Scan(&rec.ID, &rec.Username, &rec.Email, &rec.Role, &rec.CreatedAt, &rec.PasswordHash)
	if errors.Is(err, pgx.ErrNoRows) {
		return AuthRecord{}, ErrNotFound
	}
	return rec, err
}

func (s *Store) PasswordHash(ctx context.Context, id string) (string, error) {
	var hash string
	err := s.DB.QueryRow(ctx, "SELECT password_hash FROM accounts WHERE id = $1", id).Scan(&hash)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrNotFound
	}
	return hash, err
}

func (s *Store) Create(ctx context.Context, username, email, passwordHash, role string) (Account, error) {
	var acc Account
	err := s.DB.QueryRow(ctx, `
    INSERT INTO accounts (username, email, password_hash, role)
    VALUES ($1, NULLIF($2, ''), $3, $4)
    RETURNING id, username, COALESCE(email, ''), role, created_at
  `, username, email, passwordHash, role).Scan(&acc.ID, &acc.Username, &acc.Email, &acc.Role, &acc.CreatedAt)
	if isUniqueViolation(err) {
		return Account{}, ErrDuplicate
	}
	return acc, err
}

func (s *Store) UpdateRole(ctx context.Context, id, role string) (Account, error) {
	var acc Account
	err := s.DB.QueryRow(ctx, `
    UPDATE accounts SET role = $1 WHERE id = $2
    RETURNING id, username, COALESCE(email, ''), role, created_at
  `, role, id).Scan(&acc.ID, &acc.Username, &acc.Email, &acc.Role, &acc.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Account{}, ErrNotFound
	}
	return acc, err
}

// UpdateProfile changes username and/or email; blank arguments leave the
// current value in place.
func (s *Store) UpdateProfile(ctx context.Context, id, username, email string) (Account, error) {
	var acc Account
	err := s.DB.QueryRow(ctx, `
    UPDATE accounts
    SET username = COALESCE(NULLIF($1, ''), username),
        email = COALESCE(NULLIF($2, ''), email)
    WHERE id = $3
    RETURNING id, username, COALESCE(email, ''), role, created_at
  `, username, email, id).Scan(&acc.ID, &acc.Username, &acc.Email, &acc.Role, &acc.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Account{}, ErrNotFound
	}
	if isUniqueViolation(err) {
		return Account{}, ErrDuplicate
	}
	return acc, err
}

func (s *Store) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	tag, err := s.DB.Exec(ctx, "UPDATE accounts SET password_hash = $1 WHERE id = $2", passwordHash, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM accounts WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
