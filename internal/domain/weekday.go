package domain

import (
	"fmt"
	"strings"
)

// weekdayNames is Monday first, like the calendar tables most report tooling uses.
var weekdayNames = [DaysPerWeek]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// WeekdayName maps an API weekday index to its printed label. The label is read
// from the Monday-first table at index-1, with index 0 wrapping to the last entry.
func WeekdayName(index int) string {
	i := (index - 1) % DaysPerWeek
	if i < 0 {
		i += DaysPerWeek
	}
	return weekdayNames[i]
}

// SortOrder selects the direction of a ranked report.
type SortOrder string

const (
	SortAscending  SortOrder = "asc"
	SortDescending SortOrder = "desc"
)

// ParseSortOrder accepts "asc" or "desc" (case-insensitive).
func ParseSortOrder(s string) (SortOrder, error) {
	switch SortOrder(strings.ToLower(strings.TrimSpace(s))) {
	case SortAscending:
		return SortAscending, nil
	case SortDescending:
		return SortDescending, nil
	}
	return "", fmt.Errorf("%w: %q (want %q or %q)", ErrInvalidSortOrder, s, SortAscending, SortDescending)
}
