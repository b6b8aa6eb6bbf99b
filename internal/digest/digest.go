// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package digest runs one linear pass of the pipeline: take a publication
// window, fetch the papers submitted in it, and classify them into field
// and team groups ready for rendering.
package digest

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pdiddy/arxiv-weekly/internal/classify"
	"github.com/pdiddy/arxiv-weekly/internal/cycle"
	"github.com/pdiddy/arxiv-weekly/pkg/types"
)

// Fetcher retrieves papers for a request. internal/arxiv.Client is the
// production implementation.
type Fetcher interface {
	Fetch(ctx context.Context, req types.FetchRequest) ([]types.Paper, error)
}

// Digest is the classified result of one run.
type Digest struct {
	Window  types.Window     `json:"window" yaml:"window"`
	Keyword string           `json:"keyword" yaml:"keyword"`
	Sort    types.SortOrder  `json:"sort" yaml:"sort"`
	Papers  []types.Paper    `json:"papers" yaml:"papers"`
	Fields  []classify.Group `json:"fields" yaml:"fields"`
	Teams   []classify.Group `json:"teams" yaml:"teams"`
	Other   []types.Paper    `json:"other,omitempty" yaml:"other,omitempty"`
}

// Range returns the window bounds formatted for display.
func (d Digest) Range() (string, string) {
	return cycle.FormatRange(d.Window)
}

// Build fetches the papers for req and classifies them. A fetch failure is
// logged and treated as an empty result; Build itself never fails.
func Build(ctx context.Context, f Fetcher, c *classify.Classifier, req types.FetchRequest, log logrus.FieldLogger) Digest {
	start := time.Now()
	papers, err := f.Fetch(ctx, req)
	if err != nil {
		log.WithError(err).Warn("fetching papers failed; continuing with no papers")
		papers = nil
	}
	log.WithFields(logrus.Fields{
		"papers":  len(papers),
		"elapsed": time.Since(start).Round(time.Millisecond),
	}).Debug("fetch finished")

	return Classify(c, Digest{
		Window:  req.Window,
		Keyword: req.Keyword,
		Sort:    req.Sort,
		Papers:  papers,
	})
}

// Classify fills the group fields of d from d.Papers, replacing any
// existing grouping.
func Classify(c *classify.Classifier, d Digest) Digest {
	d.Fields = c.GroupAllByField(d.Papers)
	d.Teams = c.GroupAllByTeam(d.Papers)
	d.Other = c.Unmatched(d.Papers)
	return d
}
