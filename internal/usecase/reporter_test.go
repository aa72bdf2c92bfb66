package usecase

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/naka-gawa/commit-weekday/internal/domain"
	"github.com/naka-gawa/commit-weekday/internal/gateway"
)

// mockFetcher is a mock implementation of the gateway.Fetcher interface.
type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) FetchWeeklyActivity(ctx context.Context, owner, repo string) ([]domain.WeeklyActivity, error) {
	args := m.Called(ctx, owner, repo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WeeklyActivity), args.Error(1)
}

func newTestReporter(weeks []domain.WeeklyActivity) *Reporter {
	return NewReporter(gateway.StaticFetcher{Weeks: weeks}, log.New(io.Discard, "", 0))
}

// bonusWeeks is 50 empty weeks, one week of ones and a final week of 51s.
func bonusWeeks() []domain.WeeklyActivity {
	weeks := gateway.RepeatWeek(50, 0, 0, 0, 0, 0, 0, 0)
	weeks = append(weeks, gateway.RepeatWeek(1, 1, 1, 1, 1, 1, 1, 1)...)
	return append(weeks, gateway.RepeatWeek(1, 51, 51, 51, 51, 51, 51, 51)...)
}

func TestReporter_BestWeekday_SingleDay(t *testing.T) {
	testCases := []struct {
		days     []int
		expected string
	}{
		{[]int{1, 0, 0, 0, 0, 0, 0}, "Sunday 1"},
		{[]int{0, 1, 0, 0, 0, 0, 0}, "Monday 1"},
		{[]int{0, 0, 1, 0, 0, 0, 0}, "Tuesday 1"},
		{[]int{0, 0, 0, 1, 0, 0, 0}, "Wednesday 1"},
		{[]int{0, 0, 0, 0, 1, 0, 0}, "Thursday 1"},
		{[]int{0, 0, 0, 0, 0, 1, 0}, "Friday 1"},
		{[]int{0, 0, 0, 0, 0, 0, 1}, "Saturday 1"},
	}
	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			reporter := newTestReporter(gateway.RepeatWeek(52, tc.days...))
			got, err := reporter.BestWeekday(context.Background(), "test", "test", 52)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestReporter_TrailingWindows(t *testing.T) {
	reporter := newTestReporter(bonusWeeks())
	ctx := context.Background()

	best, err := reporter.BestWeekday(ctx, "test", "test", 1)
	require.NoError(t, err)
	assert.Equal(t, "Sunday 51", best)

	ranked, err := reporter.RankedWeekdays(ctx, "test", "test", 1, domain.SortDescending)
	require.NoError(t, err)
	assert.Equal(t, "Sunday 51\nMonday 51\nTuesday 51\nWednesday 51\nThursday 51\nFriday 51\nSaturday 51\n", ranked)

	best, err = reporter.BestWeekday(ctx, "test", "test", 2)
	require.NoError(t, err)
	assert.Equal(t, "Sunday 26", best)

	ranked, err = reporter.RankedWeekdays(ctx, "test", "test", 2, domain.SortAscending)
	require.NoError(t, err)
	assert.Equal(t, "Sunday 26\nMonday 26\nTuesday 26\nWednesday 26\nThursday 26\nFriday 26\nSaturday 26\n", ranked)

	best, err = reporter.BestWeekday(ctx, "test", "test", 52)
	require.NoError(t, err)
	assert.Equal(t, "Sunday 1", best)

	ranked, err = reporter.RankedWeekdays(ctx, "test", "test", 52, domain.SortDescending)
	require.NoError(t, err)
	assert.Equal(t, "Sunday 1\nMonday 1\nTuesday 1\nWednesday 1\nThursday 1\nFriday 1\nSaturday 1\n", ranked)
}

func TestReporter_IncreasingDays(t *testing.T) {
	reporter := newTestReporter(gateway.RepeatWeek(52, 1, 2, 3, 4, 5, 6, 7))
	ctx := context.Background()

	best, err := reporter.BestWeekday(ctx, "test", "test", 52)
	require.NoError(t, err)
	assert.Equal(t, "Saturday 7", best)

	asc, err := reporter.RankedWeekdays(ctx, "test", "test", 52, domain.SortAscending)
	require.NoError(t, err)
	assert.Equal(t, "Sunday 1\nMonday 2\nTuesday 3\nWednesday 4\nThursday 5\nFriday 6\nSaturday 7\n", asc)

	desc, err := reporter.RankedWeekdays(ctx, "test", "test", 52, domain.SortDescending)
	require.NoError(t, err)
	assert.Equal(t, "Saturday 7\nFriday 6\nThursday 5\nWednesday 4\nTuesday 3\nMonday 2\nSunday 1\n", desc)
}

func TestReporter_Idempotent(t *testing.T) {
	reporter := newTestReporter(bonusWeeks())
	ctx := context.Background()

	first, err := reporter.RankedWeekdays(ctx, "test", "test", 2, domain.SortDescending)
	require.NoError(t, err)
	for range 3 {
		again, err := reporter.RankedWeekdays(ctx, "test", "test", 2, domain.SortDescending)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestReporter_Fetch(t *testing.T) {
	testCases := []struct {
		name          string
		mockWeeks     []domain.WeeklyActivity
		mockErr       error
		weeks         int
		expectedTotal domain.WeekdayTotals
		expectedErr   error
	}{
		{
			name:          "happy path - trailing two weeks",
			mockWeeks:     bonusWeeks(),
			weeks:         2,
			expectedTotal: domain.WeekdayTotals{52, 52, 52, 52, 52, 52, 52},
		},
		{
			name:        "error case - fetcher fails",
			mockErr:     &domain.NetworkError{Owner: "any-user", Repo: "any-repo", Err: errors.New("boom")},
			weeks:       52,
			expectedErr: errors.New("boom"),
		},
		{
			name:        "error case - zero weeks",
			mockWeeks:   bonusWeeks(),
			weeks:       0,
			expectedErr: domain.ErrInvalidWindow,
		},
		{
			name:        "error case - more weeks than available",
			mockWeeks:   bonusWeeks(),
			weeks:       53,
			expectedErr: domain.ErrInvalidWindow,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fetcher := new(mockFetcher)
			fetcher.On("FetchWeeklyActivity", mock.Anything, "any-user", "any-repo").Return(tc.mockWeeks, tc.mockErr)
			reporter := NewReporter(fetcher, log.New(io.Discard, "", 0))

			window, err := reporter.Fetch(context.Background(), "any-user", "any-repo", tc.weeks)

			if tc.expectedErr != nil {
				require.Error(t, err)
				assert.Nil(t, window)
				if errors.Is(tc.expectedErr, domain.ErrInvalidWindow) {
					assert.ErrorIs(t, err, domain.ErrInvalidWindow)
				} else {
					var netErr *domain.NetworkError
					assert.True(t, errors.As(err, &netErr))
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expectedTotal, window.Totals)
				assert.Len(t, window.Weeks, tc.weeks)
			}
			fetcher.AssertExpectations(t)
		})
	}
}

func TestAggregate_SumInvariant(t *testing.T) {
	weeks := []domain.WeeklyActivity{
		{Days: []int{3, 0, 9, 1, 0, 2, 5}},
		{Days: []int{0, 4, 4, 4, 0, 0, 1}},
		{Days: []int{7, 7, 0, 0, 2, 0, 0}},
	}
	for n := 1; n <= len(weeks); n++ {
		selected, err := TrailingWindow(weeks, n)
		require.NoError(t, err)

		want := 0
		for _, w := range selected {
			for _, d := range w.Days {
				want += d
			}
		}
		assert.Equal(t, want, Aggregate(selected).Sum(), "window of %d weeks", n)
	}
}

func TestBest_TiesPickLowestIndex(t *testing.T) {
	best := Best(domain.WeekdayTotals{0, 5, 0, 5, 0, 0, 5}, 1)
	assert.Equal(t, 1, best.Index)
	assert.Equal(t, "Monday 5", best.String())
}

func TestRank_RoundsHalfToEven(t *testing.T) {
	ranked, err := Rank(domain.WeekdayTotals{5, 7, 1, 3, 0, 0, 0}, 2, domain.SortDescending)
	require.NoError(t, err)
	assert.Equal(t, "Monday 4\nSunday 2\nWednesday 2\nTuesday 0\nThursday 0\nFriday 0\nSaturday 0\n", FormatLines(ranked))
}

func TestRank_InvalidOrder(t *testing.T) {
	_, err := Rank(domain.WeekdayTotals{}, 1, domain.SortOrder("up"))
	assert.ErrorIs(t, err, domain.ErrInvalidSortOrder)
}

func TestReporter_Report(t *testing.T) {
	reporter := newTestReporter(gateway.RepeatWeek(4, 1, 2, 3, 4, 5, 6, 7))

	report, err := reporter.Report(context.Background(), "octocat", "hello-world", 4, domain.SortDescending)
	require.NoError(t, err)

	assert.Equal(t, "Saturday 7", report.Best.String())
	require.Len(t, report.Ranked, domain.DaysPerWeek)
	assert.Equal(t, "Saturday", report.Ranked[0].Name)
	require.Len(t, report.Summary, domain.DaysPerWeek)
	assert.Equal(t, "Sunday", report.Summary[0].Name)
	assert.Equal(t, 4, report.Summary[0].Total)
	assert.InDelta(t, 1.0, report.Summary[0].Mean, 1e-9)
	assert.InDelta(t, 1.0, report.Summary[0].Median, 1e-9)
	assert.InDelta(t, 0.0, report.Summary[0].StdDev, 1e-9)
	assert.InDelta(t, 7.0, report.Summary[6].Max, 1e-9)
}
