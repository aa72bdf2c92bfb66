// Package config loads default report settings from a config file and the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/naka-gawa/commit-weekday/internal/domain"
)

// Output formats.
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatJSON  = "json"
)

// Defaults.
const (
	DefaultWeeks   = 52
	DefaultSort    = string(domain.SortDescending)
	DefaultUseList = false
	DefaultFormat  = FormatText
	DefaultAPIURL  = ""
)

var errInvalidWeeks = errors.New("weeks must be positive")

// Config holds the settings a report run needs besides the repository itself.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Weeks   int    `mapstructure:"weeks"`
	UseList bool   `mapstructure:"use_list"`
	Sort    string `mapstructure:"sort"`
	Format  string `mapstructure:"format"`
	APIURL  string `mapstructure:"api_url"`
}

// Validate checks every field. The upper bound on Weeks depends on the API
// response and is checked when the window is selected.
func (c *Config) Validate() error {
	if c.Weeks < 1 {
		return fmt.Errorf("%w: got %d", errInvalidWeeks, c.Weeks)
	}
	if _, err := domain.ParseSortOrder(c.Sort); err != nil {
		return err
	}
	switch c.Format {
	case FormatText, FormatTable, FormatJSON:
	default:
		return fmt.Errorf("unknown format %q (want %s, %s or %s)", c.Format, FormatText, FormatTable, FormatJSON)
	}
	if c.APIURL != "" {
		u, err := url.Parse(c.APIURL)
		if err != nil {
			return fmt.Errorf("invalid api_url: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("invalid api_url %q: scheme must be http or https", c.APIURL)
		}
	}
	return nil
}

// SortOrder returns the parsed sort order. Call Validate first.
func (c *Config) SortOrder() domain.SortOrder {
	order, err := domain.ParseSortOrder(c.Sort)
	if err != nil {
		return domain.SortDescending
	}
	return order
}
