package dtr

import "time"

const regularDayHours = 8.0

// BreakRule controls the automatic break deduction: shifts longer than
// Threshold hours lose Deduction hours. The sheets disagreed between a
// half-hour and a full hour; the full hour won and is the default.
type BreakRule struct {
	Threshold float64
	Deduction float64
}

func DefaultBreakRule() BreakRule {
	return BreakRule{Threshold: 5.0, Deduction: 1.0}
}

// ParseClock parses a wall-clock "HH:MM" or "HH:MM:SS" value.
func ParseClock(value string) (time.Time, error) {
	if parsed, err := time.Parse("15:04", value); err == nil {
		return parsed, nil
	}
	parsed, err := time.Parse("15:04:05", value)
	if err != nil {
		return time.Time{}, ErrInvalidClock
	}
	return parsed, nil
}

// SplitHours turns a same-day clock pair into regular and overtime
// hours. Raw duration first loses the break deduction when it crosses
// the threshold, then caps regular hours at eight; everything past
// eight is overtime, uncapped.
func SplitHours(timeIn, timeOut time.Time, rule BreakRule) (reg, ot float64) {
	raw := timeOut.Sub(timeIn).Seconds() / 3600
	adjusted := raw
	if raw > rule.Threshold {
		adjusted = raw - rule.Deduction
	}
	reg = adjusted
	if reg > regularDayHours {
		reg = regularDayHours
	}
	if reg < 0 {
		reg = 0
	}
	ot = adjusted - regularDayHours
	if ot < 0 {
		ot = 0
	}
	return reg, ot
}
