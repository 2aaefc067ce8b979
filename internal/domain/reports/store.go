package reports

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("report not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) List(ctx context.Context) ([]Report, error) {
	rows, err := s.DB.Query(ctx, "SELECT id, type, details, report_date FROM reports ORDER BY report_date DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Report, 0)
	for rows.Next() {
		var rep Report
		if err := rows.Scan(&rep.ID, &rep.Type, &rep.Details, &rep.Date); err != nil {
			return nil, err
		}
		out = append(out, rep)
	}
	return out, rows.Err()
}

func (s *Store) Get(ctx context.Context, id string) (Report, error) {
	if uuid.Validate(id) != nil {
		return Report{}, ErrNotFound
	}
	var rep Report
	err := s.DB.QueryRow(ctx, "SELECT id, type, details, report_date FROM reports WHERE id = $1", id).
		Scan(&rep.ID, &rep.Type, &rep.Details, &rep.Date)
	if errors.Is(err, pgx.ErrNoRows) {
		return Report{}, ErrNotFound
	}
	return rep, err
}

func (s *Store) Create(ctx context.Context, reportType, details string) (Report, error) {
	var rep Report
	err := s.DB.QueryRow(ctx, `
    INSERT INTO reports (type, details)
    VALUES ($1, $2)
    RETURNING id, type, details, report_date
  `, reportType, details).Scan(&rep.ID, &rep.Type, &rep.Details, &rep.Date)
	return rep, err
}

func (s *Store) Delete(ctx context.Context, id string) error {
	if uuid.Validate(id) != nil {
		return ErrNotFound
	}
	tag, err := s.DB.Exec(ctx, "DELETE FROM reports WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
