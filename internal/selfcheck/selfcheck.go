// Package selfcheck runs the built-in report scenarios against canned
// commit-activity data, without touching the network.
package selfcheck

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/fatih/color"

	"github.com/naka-gawa/commit-weekday/internal/domain"
	"github.com/naka-gawa/commit-weekday/internal/gateway"
	"github.com/naka-gawa/commit-weekday/internal/usecase"
)

// ErrFailed is returned by Run when at least one scenario does not match.
var ErrFailed = errors.New("self-check failed")

// Scenario is one canned input with the report it must produce.
type Scenario struct {
	Name     string
	Data     []domain.WeeklyActivity
	Weeks    int
	UseList  bool
	Order    domain.SortOrder
	Expected string
}

// Scenarios returns the built-in suite.
func Scenarios() []Scenario {
	var scenarios []Scenario

	for day := range domain.DaysPerWeek {
		days := make([]int, domain.DaysPerWeek)
		days[day] = 1
		scenarios = append(scenarios, Scenario{
			Name:     fmt.Sprintf("single commit on day %d", day),
			Data:     gateway.RepeatWeek(52, days...),
			Weeks:    52,
			Expected: domain.WeekdayName(day) + " 1",
		})
	}

	spike := gateway.RepeatWeek(50, 0, 0, 0, 0, 0, 0, 0)
	spike = append(spike, gateway.RepeatWeek(1, 1, 1, 1, 1, 1, 1, 1)...)
	spike = append(spike, gateway.RepeatWeek(1, 51, 51, 51, 51, 51, 51, 51)...)
	flat := func(avg int) string {
		return fmt.Sprintf("Sunday %[1]d\nMonday %[1]d\nTuesday %[1]d\nWednesday %[1]d\nThursday %[1]d\nFriday %[1]d\nSaturday %[1]d\n", avg)
	}
	scenarios = append(scenarios,
		Scenario{Name: "spike, last week", Data: spike, Weeks: 1, Expected: "Sunday 51"},
		Scenario{Name: "spike, last week listed", Data: spike, Weeks: 1, UseList: true, Order: domain.SortDescending, Expected: flat(51)},
		Scenario{Name: "spike, last two weeks", Data: spike, Weeks: 2, Expected: "Sunday 26"},
		Scenario{Name: "spike, last two weeks ascending", Data: spike, Weeks: 2, UseList: true, Order: domain.SortAscending, Expected: flat(26)},
		Scenario{Name: "spike, full year", Data: spike, Weeks: 52, Expected: "Sunday 1"},
		Scenario{Name: "spike, full year listed", Data: spike, Weeks: 52, UseList: true, Order: domain.SortDescending, Expected: flat(1)},
	)

	rising := gateway.RepeatWeek(52, 1, 2, 3, 4, 5, 6, 7)
	scenarios = append(scenarios,
		Scenario{Name: "rising, best", Data: rising, Weeks: 52, Expected: "Saturday 7"},
		Scenario{
			Name: "rising, ascending", Data: rising, Weeks: 52, UseList: true, Order: domain.SortAscending,
			Expected: "Sunday 1\nMonday 2\nTuesday 3\nWednesday 4\nThursday 5\nFriday 6\nSaturday 7\n",
		},
	)
	return scenarios
}

// Run executes every scenario, writing one PASS/FAIL line each to w.
func Run(ctx context.Context, w io.Writer, logger *log.Logger) error {
	pass := color.New(color.FgGreen)
	fail := color.New(color.FgRed)

	failed := 0
	scenarios := Scenarios()
	for _, s := range scenarios {
		reporter := usecase.NewReporter(gateway.StaticFetcher{Weeks: s.Data}, logger)

		var got string
		var err error
		if s.UseList {
			got, err = reporter.RankedWeekdays(ctx, "test", "test", s.Weeks, s.Order)
		} else {
			got, err = reporter.BestWeekday(ctx, "test", "test", s.Weeks)
		}

		switch {
		case err != nil:
			failed++
			fail.Fprintf(w, "FAIL %s: %v\n", s.Name, err)
		case got != s.Expected:
			failed++
			fail.Fprintf(w, "FAIL %s: got %q, want %q\n", s.Name, got, s.Expected)
		default:
			pass.Fprintf(w, "PASS %s\n", s.Name)
		}
	}

	fmt.Fprintf(w, "%d/%d scenarios passed\n", len(scenarios)-failed, len(scenarios))
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d scenarios", ErrFailed, failed, len(scenarios))
	}
	return nil
}
