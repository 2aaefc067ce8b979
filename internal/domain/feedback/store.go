package feedback

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("feedback not found")

type Item struct {
	ID      string    `json:"id"`
	Message string    `json:"message"`
	Email   string    `json:"email,omitempty"`
	Date    time.Time `json:"date"`
}

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) Create(ctx context.Context, message, email string) (Item, error) {
	var item Item
	err := s.DB.QueryRow(ctx, `
    INSERT INTO feedback (message, email)
    VALUES ($1, NULLIF($2, ''))
    RETURNING id, message, COALESCE(email, ''), submitted_at
  `, message, email).Scan(&item.ID, &item.Message, &item.Email, &item.Date)
	return item, err
}

func (s *Store) Delete(ctx context.Context, id string) error {
	if uuid.Validate(id) != nil {
		return ErrNotFound
	}
	tag, err := s.DB.Exec(ctx, "DELETE FROM feedback WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
