package tracker

import "time"

// Session is one tracked block of work. Hours and amount are derived
// when the session is stopped or edited; amount stays zero for
// non-billable sessions.
type Session struct {
	ID        string     `json:"id"`
	Project   string     `json:"project"`
	Task      string     `json:"task"`
	StartedAt time.Time  `json:"startedAt"`
	EndedAt   *time.Time `json:"endedAt,omitempty"`
	Billable  bool       `json:"billable"`
	Hours     float64    `json:"hours"`
	Amount    float64    `json:"amount"`
}

func (s Session) Active() bool {
	return s.EndedAt == nil
}

type StartInput struct {
	Project  string `json:"project"`
	Task     string `json:"task"`
	Billable bool   `json:"billable"`
}

type EditInput struct {
	Project   string    `json:"project"`
	Task      string    `json:"task"`
	StartedAt time.Time `json:"startedAt"`
	EndedAt   time.Time `json:"endedAt"`
	Billable  bool      `json:"billable"`
}

// ProjectTotal is one row of the per-project weekly rollup.
type ProjectTotal struct {
	Project string  `json:"project"`
	Hours   float64 `json:"hours"`
	Amount  float64 `json:"amount"`
}

// Overview is the tracker dashboard payload.
type Overview struct {
	Last7DaysHours  float64        `json:"last7DaysHours"`
	Last7DaysAmount float64        `json:"last7DaysAmount"`
	ThisWeek        []ProjectTotal `json:"thisWeek"`
	Recent          []Session      `json:"recent"`
	HourlyRate      float64        `json:"hourlyRate"`
}
