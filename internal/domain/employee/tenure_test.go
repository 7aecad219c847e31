package employee

import (
	"testing"
	"time"
)

func TestTenure(t *testing.T) {
	today := time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		start time.Time
		want  string
	}{
		{"same day", today, "0 yrs, 0 mos"},
		{"two months", time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC), "0 yrs, 2 mos"},
		{"over a year", time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), "1 yrs, 3 mos"},
		{"future start", time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), "N/A"},
		{"zero start", time.Time{}, "N/A"},
	}

	for _, tc := range cases {
		if got := Tenure(tc.start, today); got != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}
