// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify partitions fetched papers into field and team groups by
// case-insensitive substring matching against configured keyword lists.
//
// Matching is deliberately naive: a keyword matches anywhere inside a word,
// so "ion" matches "ionic" and "diffusion". Membership is not exclusive; a
// paper can land in several groups or none.
package classify

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pdiddy/arxiv-weekly/pkg/types"
)

// ErrUnknownGroup is wrapped by every LookupError.
var ErrUnknownGroup = errors.New("unknown keyword group")

// Group kinds reported in LookupError.
const (
	KindField = "field"
	KindTeam  = "team"
)

// LookupError reports a group name that is not in the keyword config.
type LookupError struct {
	Kind  string
	Name  string
	Valid []string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("unknown %s %q (valid: %s)", e.Kind, e.Name, strings.Join(e.Valid, ", "))
}

func (e *LookupError) Unwrap() error { return ErrUnknownGroup }

// Group is one named, non-empty subset of the input papers.
type Group struct {
	Name   string        `json:"name" yaml:"name"`
	Papers []types.Paper `json:"papers" yaml:"papers"`
}

// Classifier filters papers against a fixed KeywordConfig.
type Classifier struct {
	fields []compiledGroup
	teams  []compiledGroup
}

type compiledGroup struct {
	name     string
	keywords []string // lowercased, blank entries dropped
}

// New validates cfg and prepares a Classifier. The config is copied; later
// changes to cfg do not affect the Classifier.
func New(cfg types.KeywordConfig) (*Classifier, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid keyword config: %w", err)
	}
	return &Classifier{
		fields: compile(cfg.Fields),
		teams:  compile(cfg.Teams),
	}, nil
}

func compile(groups []types.KeywordGroup) []compiledGroup {
	out := make([]compiledGroup, 0, len(groups))
	for _, g := range groups {
		cg := compiledGroup{name: g.Name}
		for _, kw := range g.Keywords {
			// Padding is significant: " ai " only matches a standalone word.
			if strings.TrimSpace(kw) == "" {
				continue
			}
			cg.keywords = append(cg.keywords, strings.ToLower(kw))
		}
		out = append(out, cg)
	}
	return out
}

// FieldNames returns the configured field names in config order.
func (c *Classifier) FieldNames() []string { return names(c.fields) }

// TeamNames returns the configured team names in config order.
func (c *Classifier) TeamNames() []string { return names(c.teams) }

// FilterByField returns the papers whose title or summary contains any
// keyword of the named field, in input order.
func (c *Classifier) FilterByField(papers []types.Paper, field string) ([]types.Paper, error) {
	g, err := lookup(c.fields, KindField, field)
	if err != nil {
		return nil, err
	}
	return filter(papers, g.keywords, matchesText), nil
}

// FilterByTeam returns the papers with any author containing any keyword of
// the named team, in input order.
func (c *Classifier) FilterByTeam(papers []types.Paper, team string) ([]types.Paper, error) {
	g, err := lookup(c.teams, KindTeam, team)
	if err != nil {
		return nil, err
	}
	return filter(papers, g.keywords, matchesAuthors), nil
}

// GroupAllByField applies every field filter in config order and returns the
// non-empty results.
func (c *Classifier) GroupAllByField(papers []types.Paper) []Group {
	return groupAll(papers, c.fields, matchesText)
}

// GroupAllByTeam applies every team filter in config order and returns the
// non-empty results.
func (c *Classifier) GroupAllByTeam(papers []types.Paper) []Group {
	return groupAll(papers, c.teams, matchesAuthors)
}

// Unmatched returns the papers that fall into no field group.
func (c *Classifier) Unmatched(papers []types.Paper) []types.Paper {
	var out []types.Paper
	for _, p := range papers {
		hit := false
		for _, g := range c.fields {
			if matchesText(p, g.keywords) {
				hit = true
				break
			}
		}
		if !hit {
			out = append(out, p)
		}
	}
	return out
}

type matcher func(p types.Paper, keywords []string) bool

func matchesText(p types.Paper, keywords []string) bool {
	title := strings.ToLower(p.Title)
	summary := strings.ToLower(p.Summary)
	for _, kw := range keywords {
		if strings.Contains(title, kw) || strings.Contains(summary, kw) {
			return true
		}
	}
	return false
}

func matchesAuthors(p types.Paper, keywords []string) bool {
	for _, a := range p.Authors {
		a = strings.ToLower(a)
		for _, kw := range keywords {
			if strings.Contains(a, kw) {
				return true
			}
		}
	}
	return false
}

func filter(papers []types.Paper, keywords []string, match matcher) []types.Paper {
	out := []types.Paper{}
	for _, p := range papers {
		if match(p, keywords) {
			out = append(out, p)
		}
	}
	return out
}

func groupAll(papers []types.Paper, groups []compiledGroup, match matcher) []Group {
	out := []Group{}
	if len(papers) == 0 {
		return out
	}
	for _, g := range groups {
		if matched := filter(papers, g.keywords, match); len(matched) > 0 {
			out = append(out, Group{Name: g.name, Papers: matched})
		}
	}
	return out
}

// lookup matches name exactly as configured.
func lookup(groups []compiledGroup, kind, name string) (compiledGroup, error) {
	for _, g := range groups {
		if g.name == name {
			return g, nil
		}
	}
	return compiledGroup{}, &LookupError{Kind: kind, Name: name, Valid: names(groups)}
}

func names(groups []compiledGroup) []string {
	out := make([]string, len(groups))
	for i, g := range groups {
		out[i] = g.name
	}
	return out
}
