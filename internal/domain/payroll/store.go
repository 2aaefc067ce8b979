package payroll

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("payroll entry not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

// List returns entries newest first, optionally restricted to one period.
// An empty period means no filter.
func (s *Store) List(ctx context.Context, period string) ([]Entry, error) {
	query := "SELECT id, employee_id, amount, period, entry_date FROM payroll_entries"
	args := []any{}
	if period != "" {
		query += " WHERE period = $1"
		args = append(args, period)
	}
	query += " ORDER BY entry_date DESC"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Entry, 0)
	for rows.Next() {
		var entry Entry
		if err := rows.Scan(&entry.ID, &entry.EmployeeID, &entry.Amount, &entry.Period, &entry.Date); err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, rows.Err()
}

func (s *Store) Create(ctx context.Context, employeeID string, amount float64, period string) (Entry, error) {
	var entry Entry
	err := s.DB.QueryRow(ctx, `
    INSERT INTO payroll_entries (employee_id, amount, period)
    VALUES ($1, $2, $3)
    RETURNING id, employee_id, amount, period, entry_date
  `, employeeID, amount, period).Scan(&entry.ID, &entry.EmployeeID, &entry.Amount, &entry.Period, &entry.Date)
	return entry, err
}

func (s *Store) Delete(ctx context.Context, id string) error {
	if uuid.Validate(id) != nil {
		return ErrNotFound
	}
	tag, err := s.DB.Exec(ctx, "DELETE FROM payroll_entries WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
