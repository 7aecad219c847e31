package tracker

import (
	"sort"
	"time"
)

// SessionHours converts a start/end pair to decimal hours.
func SessionHours(start, end time.Time) float64 {
	return end.Sub(start).Hours()
}

// SessionAmount bills hours at the global rate; non-billable sessions
// earn nothing.
func SessionAmount(hours float64, billable bool, rate float64) float64 {
	if !billable {
		return 0
	}
	return hours * rate
}

// WeekStart returns midnight of the Monday on or before t.
func WeekStart(t time.Time) time.Time {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(midnight.Weekday()) + 6) % 7
	return midnight.AddDate(0, 0, -offset)
}

// BuildOverview assembles the dashboard from finished sessions. The
// sessions slice may be in any order; active sessions (nil end) are
// excluded from the totals but can appear in Recent.
func BuildOverview(sessions []Session, now time.Time, rate float64) Overview {
	overview := Overview{HourlyRate: rate}

	sevenDaysAgo := now.AddDate(0, 0, -7)
	weekStart := WeekStart(now)
	perProject := map[string]*ProjectTotal{}

	for _, s := range sessions {
		if s.Active() {
			continue
		}
		if s.EndedAt.After(sevenDaysAgo) {
			overview.Last7DaysHours += s.Hours
			overview.Last7DaysAmount += s.Amount
		}
		if !s.EndedAt.Before(weekStart) {
			total, ok := perProject[s.Project]
			if !ok {
				total = &ProjectTotal{Project: s.Project}
				perProject[s.Project] = total
			}
			total.Hours += s.Hours
			total.Amount += s.Amount
		}
	}

	for _, total := range perProject {
		overview.ThisWeek = append(overview.ThisWeek, *total)
	}
	sort.Slice(overview.ThisWeek, func(i, j int) bool {
		return overview.ThisWeek[i].Project < overview.ThisWeek[j].Project
	})

	sorted := make([]Session, len(sessions))
	copy(sorted, sessions)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].StartedAt.After(sorted[j].StartedAt)
	})
	if len(sorted) > 10 {
		sorted = sorted[:10]
	}
	overview.Recent = sorted

	return overview
}
