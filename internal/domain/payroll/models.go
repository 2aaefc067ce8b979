package payroll

import "time"

const (
	PeriodMonthly   = "Monthly"
	PeriodQuarterly = "Quarterly"
)

var Periods = []string{PeriodMonthly, PeriodQuarterly}

type Entry struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employeeId"`
	Amount     float64   `json:"amount"`
	Period     string    `json:"period"`
	Date       time.Time `json:"date"`
}
