// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package keywords supplies the field and team keyword dictionaries: the
// built-in defaults, overlaid with whatever the user's configuration sets.
package keywords

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/arxiv-weekly/pkg/types"
)

//go:embed default_keywords.yaml
var defaultYAML []byte

// Config keys read by Load.
const (
	KeyKeyword = "keyword"
	KeyFields  = "fields"
	KeyTeams   = "teams"
)

// Defaults returns the built-in dictionaries.
func Defaults() (types.KeywordConfig, error) {
	var cfg types.KeywordConfig
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return types.KeywordConfig{}, fmt.Errorf("parsing built-in keywords: %w", err)
	}
	return cfg, nil
}

// Load starts from Defaults and replaces the default keyword, the field
// list and the team list with the values set in v, if any. The result is
// validated.
func Load(v *viper.Viper) (types.KeywordConfig, error) {
	cfg, err := Defaults()
	if err != nil {
		return types.KeywordConfig{}, err
	}

	if kw := strings.TrimSpace(v.GetString(KeyKeyword)); kw != "" {
		cfg.DefaultKeyword = kw
	}
	if v.IsSet(KeyFields) {
		var fields []types.KeywordGroup
		if err := v.UnmarshalKey(KeyFields, &fields); err != nil {
			return types.KeywordConfig{}, fmt.Errorf("reading %s: %w", KeyFields, err)
		}
		cfg.Fields = fields
	}
	if v.IsSet(KeyTeams) {
		var teams []types.KeywordGroup
		if err := v.UnmarshalKey(KeyTeams, &teams); err != nil {
			return types.KeywordConfig{}, fmt.Errorf("reading %s: %w", KeyTeams, err)
		}
		cfg.Teams = teams
	}

	if err := cfg.Validate(); err != nil {
		return types.KeywordConfig{}, fmt.Errorf("invalid keyword configuration: %w", err)
	}
	return cfg, nil
}
