package employee

import (
	"fmt"
	"time"
)

// Tenure formats the elapsed service time as "N yrs, M mos". Months are
// approximated the same way the payroll sheets always did: 365-day
// years, 30-day months.
func Tenure(startDate, today time.Time) string {
	if startDate.IsZero() || today.Before(startDate) {
		return "N/A"
	}
	days := int(today.Sub(startDate).Hours() / 24)
	years := days / 365
	months := (days % 365) / 30
	return fmt.Sprintf("%d yrs, %d mos", years, months)
}
