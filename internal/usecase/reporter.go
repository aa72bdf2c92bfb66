// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/montanaflynn/stats"

	"github.com/naka-gawa/commit-weekday/internal/domain"
	"github.com/naka-gawa/commit-weekday/internal/gateway"
)

// Reporter is the use case for building weekday commit reports.
// It orchestrates fetching weekly activity and aggregating it by weekday.
type Reporter struct {
	fetcher gateway.Fetcher
	logger  *log.Logger
}

// NewReporter creates a new Reporter instance.
func NewReporter(fetcher gateway.Fetcher, logger *log.Logger) *Reporter {
	return &Reporter{
		fetcher: fetcher,
		logger:  logger,
	}
}

// Window is the slice of weekly activity a report is computed over.
type Window struct {
	Weeks  []domain.WeeklyActivity
	Totals domain.WeekdayTotals
}

// Fetch performs the single network call and aggregates the trailing window.
func (r *Reporter) Fetch(ctx context.Context, owner, repo string, weeks int) (*Window, error) {
	r.logger.Println("Usecase: Fetching weekly activity...")
	activity, err := r.fetcher.FetchWeeklyActivity(ctx, owner, repo)
	if err != nil {
		return nil, err
	}
	selected, err := TrailingWindow(activity, weeks)
	if err != nil {
		return nil, err
	}
	totals := Aggregate(selected)
	r.logger.Printf("Usecase: Aggregated %d of %d weeks, %d commits.", len(selected), len(activity), totals.Sum())
	return &Window{Weeks: selected, Totals: totals}, nil
}

// BestWeekday returns the "<Weekday> <average>" line for the weekday with the
// highest average over the trailing window.
func (r *Reporter) BestWeekday(ctx context.Context, owner, repo string, weeks int) (string, error) {
	w, err := r.Fetch(ctx, owner, repo, weeks)
	if err != nil {
		return "", err
	}
	return Best(w.Totals, weeks).String(), nil
}

// RankedWeekdays returns seven newline-terminated "<Weekday> <average>" lines,
// ordered by average in the given direction.
func (r *Reporter) RankedWeekdays(ctx context.Context, owner, repo string, weeks int, order domain.SortOrder) (string, error) {
	w, err := r.Fetch(ctx, owner, repo, weeks)
	if err != nil {
		return "", err
	}
	ranked, err := Rank(w.Totals, weeks, order)
	if err != nil {
		return "", err
	}
	return FormatLines(ranked), nil
}

// Report builds the structured report used by the table and JSON renderers.
func (r *Reporter) Report(ctx context.Context, owner, repo string, weeks int, order domain.SortOrder) (*domain.Report, error) {
	w, err := r.Fetch(ctx, owner, repo, weeks)
	if err != nil {
		return nil, err
	}
	ranked, err := Rank(w.Totals, weeks, order)
	if err != nil {
		return nil, err
	}
	summary, err := Summarize(w.Weeks)
	if err != nil {
		return nil, err
	}
	return &domain.Report{
		Owner:     owner,
		Repo:      repo,
		Weeks:     weeks,
		SortOrder: order,
		Best:      Best(w.Totals, weeks),
		Ranked:    ranked,
		Summary:   summary,
	}, nil
}

// TrailingWindow returns the last n weeks of activity.
func TrailingWindow(activity []domain.WeeklyActivity, n int) ([]domain.WeeklyActivity, error) {
	if n < 1 || n > len(activity) {
		return nil, fmt.Errorf("%w: %d weeks requested, %d available", domain.ErrInvalidWindow, n, len(activity))
	}
	return activity[len(activity)-n:], nil
}

// Aggregate sums each weekday's commit count across the given weeks.
func Aggregate(weeks []domain.WeeklyActivity) domain.WeekdayTotals {
	var totals domain.WeekdayTotals
	for _, w := range weeks {
		totals.Add(w)
	}
	return totals
}

// Best picks the weekday with the highest total. The lowest index wins ties.
func Best(totals domain.WeekdayTotals, weeks int) domain.WeekdayAverage {
	best := 0
	for i := 1; i < domain.DaysPerWeek; i++ {
		if totals[i] > totals[best] {
			best = i
		}
	}
	return newWeekdayAverage(best, totals[best], weeks)
}

// Rank orders all seven weekdays by total. Each pass selects the current extreme
// (lowest index on ties) and retires it by setting its slot to +Inf or -Inf.
func Rank(totals domain.WeekdayTotals, weeks int, order domain.SortOrder) ([]domain.WeekdayAverage, error) {
	var retired float64
	var better func(a, b float64) bool
	switch order {
	case domain.SortAscending:
		retired = math.Inf(1)
		better = func(a, b float64) bool { return a < b }
	case domain.SortDescending:
		retired = math.Inf(-1)
		better = func(a, b float64) bool { return a > b }
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidSortOrder, order)
	}

	var remaining [domain.DaysPerWeek]float64
	for i, v := range totals {
		remaining[i] = float64(v)
	}

	ranked := make([]domain.WeekdayAverage, 0, domain.DaysPerWeek)
	for range domain.DaysPerWeek {
		pick := 0
		for i := 1; i < domain.DaysPerWeek; i++ {
			if better(remaining[i], remaining[pick]) {
				pick = i
			}
		}
		ranked = append(ranked, newWeekdayAverage(pick, totals[pick], weeks))
		remaining[pick] = retired
	}
	return ranked, nil
}

// Summarize computes per-weekday distribution statistics across the window.
func Summarize(weeks []domain.WeeklyActivity) ([]domain.WeekdaySummary, error) {
	summary := make([]domain.WeekdaySummary, 0, domain.DaysPerWeek)
	for day := range domain.DaysPerWeek {
		counts := make(stats.Float64Data, 0, len(weeks))
		total := 0
		for _, w := range weeks {
			counts = append(counts, float64(w.Days[day]))
			total += w.Days[day]
		}
		mean, err := counts.Mean()
		if err != nil {
			return nil, fmt.Errorf("failed to compute mean for %s: %w", domain.WeekdayName(day), err)
		}
		median, err := counts.Median()
		if err != nil {
			return nil, fmt.Errorf("failed to compute median for %s: %w", domain.WeekdayName(day), err)
		}
		stdDev, err := counts.StandardDeviation()
		if err != nil {
			return nil, fmt.Errorf("failed to compute standard deviation for %s: %w", domain.WeekdayName(day), err)
		}
		maxCount, err := counts.Max()
		if err != nil {
			return nil, fmt.Errorf("failed to compute max for %s: %w", domain.WeekdayName(day), err)
		}
		summary = append(summary, domain.WeekdaySummary{
			Name:   domain.WeekdayName(day),
			Total:  total,
			Mean:   mean,
			Median: median,
			StdDev: stdDev,
			Max:    maxCount,
		})
	}
	return summary, nil
}

// FormatLines renders one newline-terminated line per weekday.
func FormatLines(lines []domain.WeekdayAverage) string {
	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString(l.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// roundAverage divides and rounds half to even.
func roundAverage(total, weeks int) int {
	return int(math.RoundToEven(float64(total) / float64(weeks)))
}

func newWeekdayAverage(index, total, weeks int) domain.WeekdayAverage {
	return domain.WeekdayAverage{
		Name:    domain.WeekdayName(index),
		Index:   index,
		Total:   total,
		Average: roundAverage(total, weeks),
	}
}
