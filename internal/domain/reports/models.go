package reports

import "time"

const (
	TypeEmployee   = "Employee"
	TypeAttendance = "Attendance"
	TypePayroll    = "Payroll"
)

var Types = []string{TypeEmployee, TypeAttendance, TypePayroll}

type Report struct {
	ID      string    `json:"id"`
	Type    string    `json:"type"`
	Details string    `json:"details"`
	Date    time.Time `json:"date"`
}
