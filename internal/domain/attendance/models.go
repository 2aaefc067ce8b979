package attendance

import "time"

const (
	ActionCheckIn  = "check-in"
	ActionCheckOut = "check-out"
)

var Actions = []string{ActionCheckIn, ActionCheckOut}

type Record struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employeeId"`
	Action     string    `json:"action"`
	Timestamp  time.Time `json:"timestamp"`
}
