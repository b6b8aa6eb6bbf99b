// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package digest

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/arxiv-weekly/pkg/types"
)

// File is the on-disk form of a fetched digest. Only the raw papers are
// stored; grouping is recomputed on load so edited keyword lists apply to
// old fetches.
type File struct {
	Query   FileQuery     `yaml:"query"`
	Papers  []types.Paper `yaml:"papers"`
	Summary FileSummary   `yaml:"summary"`
}

// FileQuery records the request that produced the papers.
type FileQuery struct {
	Keyword string          `yaml:"keyword"`
	Sort    types.SortOrder `yaml:"sort,omitempty"`
	Start   time.Time       `yaml:"start"`
	End     time.Time       `yaml:"end"`
}

// FileSummary stores result statistics and a timestamp.
type FileSummary struct {
	Total     int       `yaml:"total"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteFile saves the request and papers of d to path as YAML.
func WriteFile(path string, d Digest) error {
	f := File{
		Query: FileQuery{
			Keyword: d.Keyword,
			Sort:    d.Sort,
			Start:   d.Window.Start,
			End:     d.Window.End,
		},
		Papers: d.Papers,
		Summary: FileSummary{
			Total:     len(d.Papers),
			Timestamp: time.Now().UTC(),
		},
	}

	data, err := yaml.Marshal(&f)
	if err != nil {
		return fmt.Errorf("marshaling digest file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadFile loads a digest saved by WriteFile. The returned Digest has no
// groups; pass it through Classify.
func ReadFile(path string) (Digest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Digest{}, fmt.Errorf("reading digest file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Digest{}, fmt.Errorf("parsing digest file: %w", err)
	}

	d := Digest{
		Window:  types.Window{Start: f.Query.Start.UTC(), End: f.Query.End.UTC()},
		Keyword: f.Query.Keyword,
		Sort:    f.Query.Sort,
		Papers:  f.Papers,
	}
	if !d.Window.Valid() {
		return Digest{}, fmt.Errorf("digest file %s: window start %s is not before end %s",
			path, f.Query.Start, f.Query.End)
	}
	return d, nil
}
