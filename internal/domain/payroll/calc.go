package payroll

import "koala/internal/domain/employee"

// ComputeEntryPay prices a single day. The holiday premium applies to
// regular hours only: overtime on a holiday earns the OT multiplier
// alone, never stacked with the holiday multiplier.
func ComputeEntryPay(regHours, otHours float64, isHoliday bool, rates employee.RateCard) EntryPay {
	pay := EntryPay{
		BasePay: regHours * rates.HourlyRate,
		OTPay:   otHours * rates.HourlyRate * rates.OTRate,
	}
	if isHoliday {
		pay.HolidayPremium = regHours * rates.HourlyRate * (rates.HolidayRate - 1.0)
	}
	pay.Total = pay.BasePay + pay.OTPay + pay.HolidayPremium
	return pay
}
