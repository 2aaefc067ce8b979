package employees

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound       = errors.New("employee not found")
	ErrDuplicateEmail = errors.New("employee email already exists")
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) List(ctx context.Context) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, "SELECT id, name, email, role, department FROM employees ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Employee, 0)
	for rows.Next() {
		var emp Employee
		if err := rows.Scan(&emp.ID, &emp.Name, &emp.Email, &emp.Role, &emp.Department); err != nil {
			return nil, err
		}
		out = append(out, emp)
	}
	return out, rows.Err()
}

func (s *Store) Create(ctx context.Context, name, email, role, department string) (Employee, error) {
	var emp Employee
	err := s.DB.QueryRow(ctx, `
    INSERT INTO employees (name, email, role, department)
    VALUES ($1, $2, $3, $4)
    RETURNING id, name, email, role, department
  `, name, email, role, department).Scan(&emp.ID, &emp.Name, &emp.Email, &emp.Role, &emp.Department)
	if isUniqueViolation(err) {
		return Employee{}, ErrDuplicateEmail
	}
	return emp, err
}

func (s *Store) Update(ctx context.Context, id, name, email, role, department string) (Employee, error) {
	if uuid.Validate(id) != nil {
		return Employee{}, ErrNotFound
	}
	var emp Employee
	err := s.DB.QueryRow(ctx, `
    UPDATE employees
    SET name = $1, email = $2, role = $3, department = $4
    WHERE id = $5
    RETURNING id, name, email, role, department
  `, name, email, role, department, id).Scan(&emp.ID, &emp.Name, &emp.Email, &emp.Role, &emp.Department)
	if errors.Is(err, pgx.ErrNoRows) {
		return Employee{}, ErrNotFound
	}
	if isUniqueViolation(err) {
		return Employee{}, ErrDuplicateEmail
	}
	return emp, err
}

func (s *Store) Delete(ctx context.Context, id string) error {
	// A malformed id cannot match any row; skip the round trip that would
	// otherwise fail on the uuid cast.
	if uuid.Validate(id) != nil {
		return ErrNotFound
	}
	tag, err := s.DB.Exec(ctx, "DELETE FROM employees WHERE id = $1", id)
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
