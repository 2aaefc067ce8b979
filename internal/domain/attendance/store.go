package attendance

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("attendance record not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

// todayStart is local midnight for the given instant. The boundary follows
// the app server's clock, not the database session's timezone.
func todayStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// List returns records newest first. With todayOnly set, only records since
// the server's local midnight are returned.
func (s *Store) List(ctx context.Context, todayOnly bool) ([]Record, error) {
	query := "SELECT id, employee_id, action, recorded_at FROM attendance_records"
	args := []any{}
	if todayOnly {
		query += " WHERE recorded_at >= $1"
		args = append(args, todayStart(time.Now()))
	}
	query += " ORDER BY recorded_at DESC"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Record, 0)
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.EmployeeID, &rec.Action, &rec.Timestamp); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *Store) Create(ctx context.Context, employeeID, action string) (Record, error) {
	var rec Record
	err := s.DB.QueryRow(ctx, `
    INSERT INTO attendance_records (employee_id, action)
    VALUES ($1, $2)
    RETURNING id, employee_id, action, recorded_at
  `, employeeID, action).Scan(&rec.ID, &rec.EmployeeID, &rec.Action, &rec.Timestamp)
	return rec, err
}

func (s *Store) Delete(ctx context.Context, id string) error {
	// A malformed id cannot match any row; skip the round trip that would
	// otherwise fail on the uuid cast.
	if uuid.Validate(id) != nil {
		return ErrNotFound
	}
	tag, err := s.DB.Exec(ctx, "DELETE FROM attendance_records WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
