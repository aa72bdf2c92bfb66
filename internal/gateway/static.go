package gateway

import (
	"context"

	"github.com/naka-gawa/commit-weekday/internal/domain"
)

// StaticFetcher is an in-memory Fetcher that always answers with the same weeks
// (or the same error). It backs the built-in scenario suite and tests.
type StaticFetcher struct {
	Weeks []domain.WeeklyActivity
	Err   error
}

// FetchWeeklyActivity returns a deep copy of the configured weeks.
func (s StaticFetcher) FetchWeeklyActivity(_ context.Context, _, _ string) ([]domain.WeeklyActivity, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]domain.WeeklyActivity, len(s.Weeks))
	for i, w := range s.Weeks {
		out[i] = w
		out[i].Days = append([]int(nil), w.Days...)
	}
	return out, nil
}

// RepeatWeek builds n copies of a week with the given day counts.
func RepeatWeek(n int, days ...int) []domain.WeeklyActivity {
	weeks := make([]domain.WeeklyActivity, n)
	for i := range weeks {
		total := 0
		for _, d := range days {
			total += d
		}
		weeks[i] = domain.WeeklyActivity{Total: total, Days: append([]int(nil), days...)}
	}
	return weeks
}
