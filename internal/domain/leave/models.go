package leave

import "time"

type Leave struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employeeId"`
	Name       string    `json:"name"`
	LeaveDate  time.Time `json:"leaveDate"`
	LeaveType  string    `json:"leaveType"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

type FileInput struct {
	EmployeeID string    `json:"employeeId"`
	LeaveDate  time.Time `json:"leaveDate"`
	LeaveType  string    `json:"leaveType"`
}

const (
	TypeSick      = "Sick"
	TypeVacation  = "Vacation"
	TypeEmergency = "Emergency"

	// Filings go straight to Approved; there is no approval queue.
	StatusApproved = "Approved"
)

var Types = []string{TypeSick, TypeVacation, TypeEmergency}

func ValidType(leaveType string) bool {
	for _, t := range Types {
		if t == leaveType {
			return true
		}
	}
	return false
}
