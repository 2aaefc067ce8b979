package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

const perTypeLimit = 5

type Result struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Title string `json:"title,omitempty"`
}

type Service struct {
	DB *pgxpool.Pool
}

func New(db *pgxpool.Pool) *Service {
	return &Service{DB: db}
}

// Query runs a case-insensitive substring search over employees, attendance
// and payroll, capped at five matches per entity type. An empty query yields
// an empty result set.
func (s *Service) Query(ctx context.Context, q string) ([]Result, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return []Result{}, nil
	}
	pattern := "%" + escapeLike(q) + "%"

	results := make([]Result, 0, 3*perTypeLimit)

	rows, err := s.DB.Query(ctx, `
    SELECT id, name FROM employees
    WHERE name ILIKE $1 OR email ILIKE $1 OR role ILIKE $1 OR department ILIKE $1
    ORDER BY name
    LIMIT $2
  `, pattern, perTypeLimit)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			rows.Close()
			return nil, err
		}
		results = append(results, Result{ID: id, Name: name, Type: "Employee"})
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = s.DB.Query(ctx, `
    SELECT id, employee_id FROM attendance_records
    WHERE employee_id ILIKE $1
    ORDER BY recorded_at DESC
    LIMIT $2
  `, pattern, perTypeLimit)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var id, employeeID string
		if err := rows.Scan(&id, &employeeID); err != nil {
			rows.Close()
			return nil, err
		}
		results = append(results, Result{ID: id, Name: employeeID, Type: "Attendance"})
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = s.DB.Query(ctx, `
    SELECT id, employee_id, amount FROM payroll_entries
    WHERE employee_id ILIKE $1
    ORDER BY entry_date DESC
    LIMIT $2
  `, pattern, perTypeLimit)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var id, employeeID string
		var amount float64
		if err := rows.Scan(&id, &employeeID, &amount); err != nil {
			rows.Close()
			return nil, err
		}
		results = append(results, Result{
			ID:    id,
			Name:  employeeID,
			Type:  "Payroll",
			Title: payrollTitle(amount),
		})
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

func payrollTitle(amount float64) string {
	return fmt.Sprintf("Payroll $%.2f", amount)
}

// escapeLike neutralizes LIKE wildcards so the query text is matched
// literally.
func escapeLike(q string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(q)
}
