// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
	"strings"
)

// KeywordGroup is a named list of case-insensitive substrings. A field group
// matches against title and summary; a team group matches against author
// names.
type KeywordGroup struct {
	Name     string   `json:"name" yaml:"name" mapstructure:"name"`
	Keywords []string `json:"keywords" yaml:"keywords" mapstructure:"keywords"`
}

// KeywordConfig holds the keyword dictionaries for a run. It is built once at
// startup and passed by value; nothing mutates it afterwards. Slice order is
// the order groups are reported in.
type KeywordConfig struct {
	// DefaultKeyword is the arXiv query term used when none is given.
	DefaultKeyword string `json:"keyword" yaml:"keyword" mapstructure:"keyword"`

	// Fields maps research-field names to title/summary keywords.
	Fields []KeywordGroup `json:"fields" yaml:"fields" mapstructure:"fields"`

	// Teams maps team names to author-name keywords.
	Teams []KeywordGroup `json:"teams" yaml:"teams" mapstructure:"teams"`
}

// Validate checks that every group has a non-empty unique name and at least
// one non-blank keyword.
func (c KeywordConfig) Validate() error {
	var errs []error
	errs = append(errs, validateGroups("field", c.Fields)...)
	errs = append(errs, validateGroups("team", c.Teams)...)
	return errors.Join(errs...)
}

func validateGroups(kind string, groups []KeywordGroup) []error {
	var errs []error
	seen := make(map[string]bool, len(groups))
	for i, g := range groups {
		name := strings.TrimSpace(g.Name)
		if name == "" {
			errs = append(errs, fmt.Errorf("%s group %d has no name", kind, i))
			continue
		}
		if seen[name] {
			errs = append(errs, fmt.Errorf("duplicate %s group %q", kind, name))
		}
		seen[name] = true

		blank := true
		for _, kw := range g.Keywords {
			if strings.TrimSpace(kw) != "" {
				blank = false
				break
			}
		}
		if blank {
			errs = append(errs, fmt.Errorf("%s group %q has no keywords", kind, name))
		}
	}
	return errs
}
