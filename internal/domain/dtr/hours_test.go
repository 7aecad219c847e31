package dtr

import (
	"math"
	"testing"
	"time"
)

func clock(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := ParseClock(value)
	if err != nil {
		t.Fatalf("parse clock %q: %v", value, err)
	}
	return parsed
}

func TestSplitHoursStandardDay(t *testing.T) {
	// 08:00-17:00 is nine raw hours; the lunch break brings it to a
	// full eight-hour day with no overtime.
	reg, ot := SplitHours(clock(t, "08:00"), clock(t, "17:00"), DefaultBreakRule())
	if reg != 8.0 {
		t.Fatalf("expected reg 8.0, got %v", reg)
	}
	if ot != 0.0 {
		t.Fatalf("expected ot 0.0, got %v", ot)
	}
}

func TestSplitHoursLongShift(t *testing.T) {
	// 08:00-20:00 is twelve raw hours, eleven after the break: eight
	// regular plus three overtime.
	reg, ot := SplitHours(clock(t, "08:00"), clock(t, "20:00"), DefaultBreakRule())
	if reg != 8.0 {
		t.Fatalf("expected reg 8.0, got %v", reg)
	}
	if ot != 3.0 {
		t.Fatalf("expected ot 3.0, got %v", ot)
	}
}

func TestSplitHoursShortShiftNoBreak(t *testing.T) {
	reg, ot := SplitHours(clock(t, "08:00"), clock(t, "12:30"), DefaultBreakRule())
	if reg != 4.5 {
		t.Fatalf("expected reg 4.5, got %v", reg)
	}
	if ot != 0.0 {
		t.Fatalf("expected ot 0.0, got %v", ot)
	}
}

func TestSplitHoursHalfHourRule(t *testing.T) {
	rule := BreakRule{Threshold: 5.0, Deduction: 0.5}
	reg, ot := SplitHours(clock(t, "08:00"), clock(t, "17:00"), rule)
	if reg != 8.0 {
		t.Fatalf("expected reg 8.0, got %v", reg)
	}
	if math.Abs(ot-0.5) > 1e-9 {
		t.Fatalf("expected ot 0.5, got %v", ot)
	}
}

func TestSplitHoursConservation(t *testing.T) {
	rule := DefaultBreakRule()
	cases := []struct {
		in, out string
	}{
		{"09:00", "12:00"},
		{"08:00", "13:00"},
		{"08:00", "13:01"},
		{"06:00", "22:00"},
		{"07:15", "19:45"},
	}
	for _, tc := range cases {
		timeIn := clock(t, tc.in)
		timeOut := clock(t, tc.out)
		raw := timeOut.Sub(timeIn).Seconds() / 3600
		adjusted := raw
		if raw > rule.Threshold {
			adjusted = raw - rule.Deduction
		}
		reg, ot := SplitHours(timeIn, timeOut, rule)
		if reg < 0 || reg > 8 {
			t.Fatalf("%s-%s: reg %v out of [0,8]", tc.in, tc.out, reg)
		}
		if ot < 0 {
			t.Fatalf("%s-%s: negative ot %v", tc.in, tc.out, ot)
		}
		if math.Abs((reg+ot)-adjusted) > 1e-9 {
			t.Fatalf("%s-%s: reg+ot = %v, expected %v", tc.in, tc.out, reg+ot, adjusted)
		}
	}
}

func TestSplitHoursNoOvertimeCap(t *testing.T) {
	// A 20-hour shift yields 11 overtime hours after the break, with
	// no upper bound applied.
	reg, ot := SplitHours(clock(t, "02:00"), clock(t, "22:00"), DefaultBreakRule())
	if reg != 8.0 {
		t.Fatalf("expected reg 8.0, got %v", reg)
	}
	if ot != 11.0 {
		t.Fatalf("expected ot 11.0, got %v", ot)
	}
}

func TestParseClockRejectsGarbage(t *testing.T) {
	if _, err := ParseClock("8 am"); err != ErrInvalidClock {
		t.Fatalf("expected ErrInvalidClock, got %v", err)
	}
	if _, err := ParseClock("25:00"); err != ErrInvalidClock {
		t.Fatalf("expected ErrInvalidClock, got %v", err)
	}
}
