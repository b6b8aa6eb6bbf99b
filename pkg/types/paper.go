// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the arxiv-weekly pipeline:
// fetched papers, publication windows, keyword groups, and configuration.
package types

import (
	"strconv"
	"strings"
	"time"
)

// Paper is a single record returned by the arXiv search API. Papers are
// values: once fetched they are never mutated, and two papers with the same
// fields are the same paper.
type Paper struct {
	// Title is the paper title with whitespace collapsed.
	Title string `json:"title" yaml:"title"`

	// Authors lists the paper authors in source order.
	Authors []string `json:"authors" yaml:"authors"`

	// Published is the first-version submission timestamp.
	Published time.Time `json:"published" yaml:"published"`

	// URL is the arXiv entry identifier (e.g. "http://arxiv.org/abs/2401.01234v1").
	URL string `json:"url" yaml:"url"`

	// Summary is the paper abstract.
	Summary string `json:"summary" yaml:"summary"`

	// PrimaryCategory is the arXiv category code (e.g. "quant-ph").
	PrimaryCategory string `json:"primary_category" yaml:"primary_category"`
}

// ID returns the arXiv identifier embedded in URL with any version suffix
// removed ("http://arxiv.org/abs/2401.01234v2" → "2401.01234"). It returns
// an empty string when URL is not an arXiv abstract link.
func (p Paper) ID() string {
	const prefix = "/abs/"
	idx := strings.Index(p.URL, prefix)
	if idx < 0 {
		return ""
	}
	id := p.URL[idx+len(prefix):]

	if vIdx := strings.LastIndex(id, "v"); vIdx > 0 {
		if _, err := strconv.Atoi(id[vIdx+1:]); err == nil {
			id = id[:vIdx]
		}
	}
	return id
}
