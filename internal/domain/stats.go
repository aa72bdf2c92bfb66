// Package domain contains the core data structures and domain logic for the application.
package domain

import "fmt"

// DaysPerWeek is the number of per-day counts carried by every WeeklyActivity.
const DaysPerWeek = 7

// WeeklyActivity holds one week of commit counts as returned by the
// commit-activity statistics endpoint. Days is ordered Sunday first.
type WeeklyActivity struct {
	Week  int64 `json:"week"`
	Total int   `json:"total"`
	Days  []int `json:"days"`
}

// WeekdayTotals accumulates commit counts per API weekday index (0 = Sunday).
type WeekdayTotals [DaysPerWeek]int

// Add sums the days of a single week into the totals.
func (t *WeekdayTotals) Add(week WeeklyActivity) {
	for i := 0; i < DaysPerWeek && i < len(week.Days); i++ {
		t[i] += week.Days[i]
	}
}

// Sum returns the total across all seven weekdays.
func (t WeekdayTotals) Sum() int {
	sum := 0
	for _, v := range t {
		sum += v
	}
	return sum
}

// WeekdayAverage is a single line of a weekday report.
type WeekdayAverage struct {
	Name    string `json:"weekday"`
	Index   int    `json:"index"`
	Total   int    `json:"total"`
	Average int    `json:"average"`
}

// String renders the "<Weekday> <average>" report line.
func (a WeekdayAverage) String() string {
	return fmt.Sprintf("%s %d", a.Name, a.Average)
}

// WeekdaySummary holds the distribution of daily commit counts for one weekday
// across the selected window.
type WeekdaySummary struct {
	Name   string  `json:"weekday"`
	Total  int     `json:"total"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	Max    float64 `json:"max"`
}

// Report is the full result of one invocation, used by the table and JSON renderers.
type Report struct {
	Owner     string           `json:"owner"`
	Repo      string           `json:"repo"`
	Weeks     int              `json:"weeks"`
	SortOrder SortOrder        `json:"sort"`
	Best      WeekdayAverage   `json:"best"`
	Ranked    []WeekdayAverage `json:"ranked,omitempty"`
	Summary   []WeekdaySummary `json:"summary,omitempty"`
}
