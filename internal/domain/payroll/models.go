package payroll

import (
	"time"

	"koala/internal/domain/employee"
)

// JoinedEntry is one time-entry row joined with its employee's rate
// card. RateMissing marks rows whose employee id had no match in the
// registry; their rates are zero-filled and reported as warnings
// instead of failing the whole run.
type JoinedEntry struct {
	Date        time.Time
	EmployeeID  string
	Name        string
	RegHours    float64
	OTHours     float64
	IsHoliday   bool
	Rates       employee.RateCard
	RateMissing bool
}

type EntryPay struct {
	BasePay        float64
	OTPay          float64
	HolidayPremium float64
	Total          float64
}

// Summary is one output row per employee over the requested period.
type Summary struct {
	EmployeeID      string  `json:"employeeId"`
	Name            string  `json:"name"`
	TotalRegHours   float64 `json:"totalRegHours"`
	TotalOTHours    float64 `json:"totalOtHours"`
	TotalBasePay    float64 `json:"totalBasePay"`
	TotalOTPay      float64 `json:"totalOtPay"`
	TotalHolidayPay float64 `json:"totalHolidayPay"`
	GrandTotal      float64 `json:"grandTotal"`
}

type Warning struct {
	Code       string `json:"code"`
	EmployeeID string `json:"employeeId"`
	Entries    int    `json:"entries"`
}

type Result struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Rows     []Summary `json:"rows"`
	Warnings []Warning `json:"warnings,omitempty"`
}

const WarningMissingRateCard = "missing_rate_card"
