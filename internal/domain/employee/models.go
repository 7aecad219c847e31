package employee

import "time"

type Employee struct {
	EmployeeID  string    `json:"employeeId"`
	Name        string    `json:"name"`
	Position    string    `json:"position"`
	StartDate   time.Time `json:"startDate"`
	Status      string    `json:"status"`
	DailyRate   float64   `json:"dailyRate"`
	HourlyRate  float64   `json:"hourlyRate"`
	OTRate      float64   `json:"otRate"`
	HolidayRate float64   `json:"holidayRate"`
	Tenure      string    `json:"tenure,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// RateCard is the slice of an employee the payroll computation needs.
type RateCard struct {
	HourlyRate  float64
	OTRate      float64
	HolidayRate float64
}

func (e Employee) RateCard() RateCard {
	return RateCard{HourlyRate: e.HourlyRate, OTRate: e.OTRate, HolidayRate: e.HolidayRate}
}
