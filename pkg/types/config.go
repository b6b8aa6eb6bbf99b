// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"strings"
	"time"
)

// SortOrder selects the arXiv result ordering.
type SortOrder string

const (
	SortRelevance   SortOrder = "relevance"
	SortLastUpdated SortOrder = "last_updated_date"
	SortSubmitted   SortOrder = "submitted_date"
)

// ParseSortOrder maps a user-supplied name onto a SortOrder. Empty and
// unrecognised names fall back to SortSubmitted.
func ParseSortOrder(s string) SortOrder {
	switch SortOrder(strings.ToLower(strings.TrimSpace(s))) {
	case SortRelevance:
		return SortRelevance
	case SortLastUpdated:
		return SortLastUpdated
	default:
		return SortSubmitted
	}
}

// FetchRequest describes one query against the arXiv API.
type FetchRequest struct {
	Window     Window
	Keyword    string
	MaxResults int
	Sort       SortOrder
}

// HTTPConfig holds shared HTTP settings for the arXiv client.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "arxiv-weekly/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// FetchConfig holds settings for the arXiv fetch client.
type FetchConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// MaxResults is the default cap on papers per run (default 400).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`

	// PageSize is the number of entries requested per API call (default 100).
	PageSize int `json:"page_size" yaml:"page_size" mapstructure:"page_size"`

	// RequestInterval is the minimum spacing between API calls (default 3s,
	// per the arXiv API terms of use).
	RequestInterval time.Duration `json:"request_interval" yaml:"request_interval" mapstructure:"request_interval"`

	// MaxRetries bounds retries on HTTP 429/503 (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries"`
}

// Config groups everything a run needs.
type Config struct {
	Fetch    FetchConfig   `json:"fetch" yaml:"fetch"`
	Keywords KeywordConfig `json:"keywords" yaml:"keywords"`

	// Sort is the default result ordering.
	Sort SortOrder `json:"sort" yaml:"sort"`

	// LogLevel is a logrus level name (default "info").
	LogLevel string `json:"log_level" yaml:"log_level"`
}
