package payroll

import (
	"sort"
	"time"
)

// Aggregate filters entries to the closed interval [start, end],
// groups by employee and sums hours and pay. Employees without
// entries in the window are omitted. Output ordering is by employee
// id, so regenerating over the same snapshot is byte-identical.
func Aggregate(entries []JoinedEntry, start, end time.Time) Result {
	result := Result{Start: start, End: end}

	groups := make(map[string]*Summary)
	missing := make(map[string]int)
	var order []string

	for _, entry := range entries {
		if entry.Date.Before(start) || entry.Date.After(end) {
			continue
		}
		if entry.RateMissing {
			missing[entry.EmployeeID]++
		}

		row, ok := groups[entry.EmployeeID]
		if !ok {
			row = &Summary{EmployeeID: entry.EmployeeID, Name: entry.Name}
			groups[entry.EmployeeID] = row
			order = append(order, entry.EmployeeID)
		}

		pay := ComputeEntryPay(entry.RegHours, entry.OTHours, entry.IsHoliday, entry.Rates)
		row.TotalRegHours += entry.RegHours
		row.TotalOTHours += entry.OTHours
		row.TotalBasePay += pay.BasePay
		row.TotalOTPay += pay.OTPay
		row.TotalHolidayPay += pay.HolidayPremium
		row.GrandTotal += pay.Total
	}

	sort.Strings(order)
	for _, id := range order {
		result.Rows = append(result.Rows, *groups[id])
	}

	for _, id := range order {
		if count, ok := missing[id]; ok {
			result.Warnings = append(result.Warnings, Warning{
				Code:       WarningMissingRateCard,
				EmployeeID: id,
				Entries:    count,
			})
		}
	}
	return result
}
