package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidWindow is returned when the requested number of weeks is not
	// between 1 and the number of weeks the API returned.
	ErrInvalidWindow = errors.New("invalid week window")
	// ErrInvalidSortOrder is returned for sort orders other than asc and desc.
	ErrInvalidSortOrder = errors.New("invalid sort order")
)

// NetworkError reports that the statistics request could not complete.
type NetworkError struct {
	Owner string
	Repo  string
	Err   error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("failed to fetch commit activity for %s/%s: %v", e.Owner, e.Repo, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// MalformedResponseError reports a response body that is not a list of weeks
// each holding seven integer day counts.
type MalformedResponseError struct {
	Reason string
	Err    error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed commit activity response: %s: %v", e.Reason, e.Err)
	}
	return "malformed commit activity response: " + e.Reason
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }
