// Package render writes structured weekday reports as a table or JSON.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/naka-gawa/commit-weekday/internal/domain"
)

// Table writes the report as a go-pretty table. With useList every weekday gets
// a row in rank order; otherwise only the best weekday is shown.
func Table(w io.Writer, report *domain.Report, useList bool) error {
	summaries := make(map[string]domain.WeekdaySummary, len(report.Summary))
	for _, s := range report.Summary {
		summaries[s.Name] = s
	}

	rows := report.Ranked
	if !useList {
		rows = []domain.WeekdayAverage{report.Best}
	}

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.SetTitle(fmt.Sprintf("%s/%s, last %d weeks", report.Owner, report.Repo, report.Weeks))
	tbl.AppendHeader(table.Row{"#", "Weekday", "Average", "Total", "Mean", "Median", "Std Dev", "Max"})
	for i, row := range rows {
		s := summaries[row.Name]
		tbl.AppendRow(table.Row{
			i + 1,
			row.Name,
			row.Average,
			row.Total,
			fmt.Sprintf("%.2f", s.Mean),
			fmt.Sprintf("%.1f", s.Median),
			fmt.Sprintf("%.2f", s.StdDev),
			fmt.Sprintf("%.0f", s.Max),
		})
	}

	_, err := io.WriteString(w, tbl.Render()+"\n")
	return err
}

// JSON writes the report pretty-printed.
func JSON(w io.Writer, report *domain.Report) error {
	jsonData, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report to JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(jsonData))
	return err
}
