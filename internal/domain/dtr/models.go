package dtr

import "time"

// TimeEntry is one clock-in/clock-out record. TimeIn and TimeOut are
// wall-clock values on the entry date; overnight shifts are not a
// thing here. RegHours and OTHours are derived at write time and
// stored with the row, the same way the timesheets always carried
// them.
type TimeEntry struct {
	ID         string    `json:"id"`
	Date       time.Time `json:"date"`
	EmployeeID string    `json:"employeeId"`
	Name       string    `json:"name"`
	TimeIn     string    `json:"timeIn"`
	TimeOut    string    `json:"timeOut"`
	RegHours   float64   `json:"regHours"`
	OTHours    float64   `json:"otHours"`
	IsHoliday  bool      `json:"isHoliday"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"createdAt"`
}

type LogInput struct {
	Date       time.Time
	EmployeeID string
	TimeIn     string
	TimeOut    string
	IsHoliday  bool
	Notes      string
}
