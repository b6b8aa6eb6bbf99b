// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/arxiv-weekly/pkg/types"
)

var (
	qec = types.Paper{
		Title:   "Quantum Error Correction",
		Summary: "Surface codes below threshold.",
		Authors: []string{"A. Smith", "C. Wu"},
		URL:     "http://arxiv.org/abs/2610.00001v1",
	}
	graphs = types.Paper{
		Title:   "Classical Graphs",
		Summary: "Spectral bounds for expander families.",
		Authors: []string{"B. Lee"},
		URL:     "http://arxiv.org/abs/2610.00002v1",
	}
	sim = types.Paper{
		Title:   "Hamiltonian Simulation on Trapped Ions",
		Summary: "We simulate quantum many-body dynamics.",
		Authors: []string{"D. Smithson"},
		URL:     "http://arxiv.org/abs/2610.00003v2",
	}
)

func testConfig() types.KeywordConfig {
	return types.KeywordConfig{
		DefaultKeyword: "quantum",
		Fields: []types.KeywordGroup{
			{Name: "Quantum", Keywords: []string{"quantum"}},
			{Name: "Simulation", Keywords: []string{"hamiltonian simulation", "many-body"}},
			{Name: "Cryptography", Keywords: []string{"lattice-based", "post-quantum crypt"}},
		},
		Teams: []types.KeywordGroup{
			{Name: "Smith Lab", Keywords: []string{"Smith"}},
			{Name: "Lee Group", Keywords: []string{"B. Lee"}},
			{Name: "Nobody", Keywords: []string{"Zzyzx"}},
		},
	}
}

func newTestClassifier(t *testing.T) *Classifier {
	t.Helper()
	c, err := New(testConfig())
	require.NoError(t, err)
	return c
}

func TestFilterByField(t *testing.T) {
	c := newTestClassifier(t)

	got, err := c.FilterByField([]types.Paper{qec, graphs}, "Quantum")
	require.NoError(t, err)
	assert.Equal(t, []types.Paper{qec}, got)
}

func TestFilterByFieldMatchesSummary(t *testing.T) {
	c := newTestClassifier(t)

	got, err := c.FilterByField([]types.Paper{graphs, sim, qec}, "Quantum")
	require.NoError(t, err)
	// sim matches through its summary; input order is kept.
	assert.Equal(t, []types.Paper{sim, qec}, got)
}

func TestFilterByFieldCaseInsensitive(t *testing.T) {
	c, err := New(types.KeywordConfig{
		Fields: []types.KeywordGroup{{Name: "Q", Keywords: []string{"Quantum"}}},
	})
	require.NoError(t, err)

	p := types.Paper{Title: "quantum computing"}
	got, err := c.FilterByField([]types.Paper{p}, "Q")
	require.NoError(t, err)
	assert.Equal(t, []types.Paper{p}, got)
}

func TestFilterByFieldIdempotent(t *testing.T) {
	c := newTestClassifier(t)
	papers := []types.Paper{qec, graphs, sim}

	once, err := c.FilterByField(papers, "Simulation")
	require.NoError(t, err)
	twice, err := c.FilterByField(once, "Simulation")
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestFilterByFieldSubstringFalsePositive(t *testing.T) {
	c, err := New(types.KeywordConfig{
		Fields: []types.KeywordGroup{{Name: "Ions", Keywords: []string{"ion"}}},
	})
	require.NoError(t, err)

	p := types.Paper{Title: "Diffusion models for vision"}
	got, err := c.FilterByField([]types.Paper{p}, "Ions")
	require.NoError(t, err)
	assert.Len(t, got, 1, "substring matching is not whole-word")
}

func TestFilterByFieldKeepsKeywordPadding(t *testing.T) {
	c, err := New(types.KeywordConfig{
		Fields: []types.KeywordGroup{{Name: "AI", Keywords: []string{" ai ", ""}}},
	})
	require.NoError(t, err)

	explainable := types.Paper{Title: "Explainable detectors"}
	standalone := types.Paper{Title: "Trustworthy AI for physics"}
	got, err := c.FilterByField([]types.Paper{explainable, standalone}, "AI")
	require.NoError(t, err)
	assert.Equal(t, []types.Paper{standalone}, got)
}

func TestFilterByTeam(t *testing.T) {
	c := newTestClassifier(t)

	got, err := c.FilterByTeam([]types.Paper{qec, graphs}, "Smith Lab")
	require.NoError(t, err)
	assert.Equal(t, []types.Paper{qec}, got)

	// "Smith" is a substring of "Smithson".
	got, err = c.FilterByTeam([]types.Paper{qec, graphs, sim}, "Smith Lab")
	require.NoError(t, err)
	assert.Equal(t, []types.Paper{qec, sim}, got)
}

func TestFilterEmptyInput(t *testing.T) {
	c := newTestClassifier(t)

	got, err := c.FilterByField(nil, "Quantum")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = c.FilterByTeam(nil, "Smith Lab")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestUnknownGroup(t *testing.T) {
	c := newTestClassifier(t)

	_, err := c.FilterByField([]types.Paper{qec}, "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownGroup)
	var lerr *LookupError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, KindField, lerr.Kind)
	assert.Equal(t, "x", lerr.Name)
	assert.Equal(t, []string{"Quantum", "Simulation", "Cryptography"}, lerr.Valid)

	_, err = c.FilterByTeam([]types.Paper{qec}, "x")
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, KindTeam, lerr.Kind)

	// Field names are not team names.
	_, err = c.FilterByTeam(nil, "Quantum")
	assert.ErrorIs(t, err, ErrUnknownGroup)

	// Names match exactly as configured.
	_, err = c.FilterByField(nil, "Quantum ")
	assert.ErrorIs(t, err, ErrUnknownGroup)
	_, err = c.FilterByField(nil, "quantum")
	assert.ErrorIs(t, err, ErrUnknownGroup)
}

func TestGroupAllByField(t *testing.T) {
	c := newTestClassifier(t)

	groups := c.GroupAllByField([]types.Paper{qec, graphs, sim})
	require.Len(t, groups, 2, "Cryptography has no matches and is skipped")
	assert.Equal(t, "Quantum", groups[0].Name)
	assert.Equal(t, []types.Paper{qec, sim}, groups[0].Papers)
	assert.Equal(t, "Simulation", groups[1].Name)
	assert.Equal(t, []types.Paper{sim}, groups[1].Papers)

	again := c.GroupAllByField([]types.Paper{qec, graphs, sim})
	assert.Equal(t, groups, again)
}

func TestGroupAllByTeam(t *testing.T) {
	c := newTestClassifier(t)

	groups := c.GroupAllByTeam([]types.Paper{qec, graphs, sim})
	require.Len(t, groups, 2)
	assert.Equal(t, "Smith Lab", groups[0].Name)
	assert.Equal(t, "Lee Group", groups[1].Name)
	assert.Equal(t, []types.Paper{graphs}, groups[1].Papers)
}

func TestGroupAllEmpty(t *testing.T) {
	c := newTestClassifier(t)

	assert.Empty(t, c.GroupAllByField(nil))
	assert.Empty(t, c.GroupAllByTeam([]types.Paper{}))
}

func TestUnmatched(t *testing.T) {
	c := newTestClassifier(t)
	assert.Equal(t, []types.Paper{graphs}, c.Unmatched([]types.Paper{qec, graphs, sim}))
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		cfg    types.KeywordConfig
		errMsg string
	}{
		{
			name:   "blank name",
			cfg:    types.KeywordConfig{Fields: []types.KeywordGroup{{Name: " ", Keywords: []string{"a"}}}},
			errMsg: "field group 0 has no name",
		},
		{
			name: "duplicate team",
			cfg: types.KeywordConfig{Teams: []types.KeywordGroup{
				{Name: "A", Keywords: []string{"a"}},
				{Name: "A", Keywords: []string{"b"}},
			}},
			errMsg: `duplicate team group "A"`,
		},
		{
			name:   "no keywords",
			cfg:    types.KeywordConfig{Fields: []types.KeywordGroup{{Name: "Empty", Keywords: []string{"", "  "}}}},
			errMsg: `field group "Empty" has no keywords`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestNames(t *testing.T) {
	c := newTestClassifier(t)
	assert.Equal(t, []string{"Quantum", "Simulation", "Cryptography"}, c.FieldNames())
	assert.Equal(t, []string{"Smith Lab", "Lee Group", "Nobody"}, c.TeamNames())
}
