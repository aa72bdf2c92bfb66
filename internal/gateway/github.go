// Package gateway provides a gateway to the GitHub API,
// abstracting away the underlying REST client.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v62/github"

	"github.com/naka-gawa/commit-weekday/internal/domain"
)

// errStatsPending is wrapped in a NetworkError when GitHub answers 202 Accepted,
// meaning the statistics are still being computed.
var errStatsPending = errors.New("GitHub is still computing statistics for this repository (HTTP 202), try again shortly")

// Fetcher defines the behavior of a gateway for fetching commit activity.
type Fetcher interface {
	FetchWeeklyActivity(ctx context.Context, owner, repo string) ([]domain.WeeklyActivity, error)
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	restClient *github.Client
	logger     *log.Logger
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
// A nil httpClient uses http.DefaultClient. An empty baseURL targets api.github.com.
func NewGitHubGateway(baseURL string, httpClient *http.Client, logger *log.Logger) (Fetcher, error) {
	restClient := github.NewClient(httpClient)
	if baseURL != "" {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse API base URL %q: %w", baseURL, err)
		}
		restClient.BaseURL = u
	}
	return &GitHubGateway{
		restClient: restClient,
		logger:     logger,
	}, nil
}

// FetchWeeklyActivity issues one GET against /repos/{owner}/{repo}/stats/commit_activity
// and validates that every week carries exactly seven day counts.
func (g *GitHubGateway) FetchWeeklyActivity(ctx context.Context, owner, repo string) ([]domain.WeeklyActivity, error) {
	g.logger.Printf("Fetching commit activity for %s/%s...", owner, repo)
	weeks, _, err := g.restClient.Repositories.ListCommitActivity(ctx, owner, repo)
	if err != nil {
		return nil, classifyError(owner, repo, err)
	}

	activity := make([]domain.WeeklyActivity, 0, len(weeks))
	for i, w := range weeks {
		if w == nil {
			return nil, &domain.MalformedResponseError{Reason: fmt.Sprintf("week %d is null", i)}
		}
		if len(w.Days) != domain.DaysPerWeek {
			return nil, &domain.MalformedResponseError{
				Reason: fmt.Sprintf("week %d has %d day counts, want %d", i, len(w.Days), domain.DaysPerWeek),
			}
		}
		days := make([]int, domain.DaysPerWeek)
		copy(days, w.Days)
		var weekStart int64
		if w.Week != nil {
			weekStart = w.Week.Unix()
		}
		activity = append(activity, domain.WeeklyActivity{
			Week:  weekStart,
			Total: w.GetTotal(),
			Days:  days,
		})
	}
	g.logger.Printf("Completed fetching commit activity: %d weeks.", len(activity))
	return activity, nil
}

func classifyError(owner, repo string, err error) error {
	var acceptedErr *github.AcceptedError
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &acceptedErr):
		return &domain.NetworkError{Owner: owner, Repo: repo, Err: errStatsPending}
	case errors.As(err, &syntaxErr):
		return &domain.MalformedResponseError{Reason: "body is not valid JSON", Err: err}
	case errors.As(err, &typeErr):
		return &domain.MalformedResponseError{Reason: "body is not a list of weekly activity objects", Err: err}
	default:
		return &domain.NetworkError{Owner: owner, Repo: repo, Err: err}
	}
}
