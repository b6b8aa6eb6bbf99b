// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/arxiv-weekly/internal/arxiv"
	"github.com/pdiddy/arxiv-weekly/internal/classify"
	"github.com/pdiddy/arxiv-weekly/internal/digest"
	"github.com/pdiddy/arxiv-weekly/internal/keywords"
	"github.com/pdiddy/arxiv-weekly/internal/report"
	"github.com/pdiddy/arxiv-weekly/pkg/types"
)

// loadConfig assembles the run configuration from viper (defaults, config
// file, ARXIV_WEEKLY_* environment).
func loadConfig() (types.Config, error) {
	var fetch types.FetchConfig
	if err := viper.Unmarshal(&fetch); err != nil {
		return types.Config{}, fmt.Errorf("reading fetch settings: %w", err)
	}
	kw, err := keywords.Load(viper.GetViper())
	if err != nil {
		return types.Config{}, err
	}
	return types.Config{
		Fetch:    fetch,
		Keywords: kw,
		Sort:     types.ParseSortOrder(viper.GetString("sort")),
		LogLevel: viper.GetString("log_level"),
	}, nil
}

// addFetchFlags registers the flags shared by commands that query arXiv.
func addFetchFlags(cmd *cobra.Command) {
	cmd.Flags().String("keyword", "", "arXiv search keyword (default from config: quantum)")
	cmd.Flags().Int("max-results", 0, "maximum papers to fetch (default from config: 400)")
	cmd.Flags().String("sort", "", "result order: relevance, last_updated_date, submitted_date")
	cmd.Flags().String("now", "", "pretend the current time is this RFC 3339 instant")
	cmd.Flags().String("save", "", "also write the fetched papers to this YAML file")
	addOutputFlags(cmd)
}

// addOutputFlags registers the flags that control how a digest is shown.
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().String("style", "verbose", "console style: verbose or compact")
	cmd.Flags().String("only", "", "print only one grouping: fields or teams")
	cmd.Flags().String("field", "", "print only the papers of this field group")
	cmd.Flags().String("team", "", "print only the papers of this team group")
	cmd.Flags().Bool("json", false, "output the digest as JSON")
	cmd.Flags().Bool("yaml", false, "output the digest as YAML")
}

// fetchDigest queries arXiv for window and classifies the result.
func fetchDigest(cmd *cobra.Command, window types.Window) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	classifier, err := classify.New(cfg.Keywords)
	if err != nil {
		return err
	}

	req := types.FetchRequest{
		Window:     window,
		Keyword:    cfg.Keywords.DefaultKeyword,
		MaxResults: cfg.Fetch.MaxResults,
		Sort:       cfg.Sort,
	}
	if kw, _ := cmd.Flags().GetString("keyword"); strings.TrimSpace(kw) != "" {
		req.Keyword = strings.TrimSpace(kw)
	}
	if n, _ := cmd.Flags().GetInt("max-results"); n > 0 {
		req.MaxResults = n
	}
	if s, _ := cmd.Flags().GetString("sort"); s != "" {
		req.Sort = types.ParseSortOrder(s)
	}

	client := arxiv.NewClient(cfg.Fetch, log)
	d := digest.Build(cmd.Context(), client, classifier, req, log)

	if path, _ := cmd.Flags().GetString("save"); path != "" {
		if err := digest.WriteFile(path, d); err != nil {
			return err
		}
		log.WithField("file", path).Info("saved digest")
	}

	return output(cmd, classifier, d)
}

// output renders d according to the output flags.
func output(cmd *cobra.Command, c *classify.Classifier, d digest.Digest) error {
	w := cmd.OutOrStdout()

	styleName, _ := cmd.Flags().GetString("style")
	style, err := report.ParseStyle(styleName)
	if err != nil {
		return err
	}
	sections, err := sectionsFlag(cmd)
	if err != nil {
		return err
	}
	asJSON, _ := cmd.Flags().GetBool("json")
	asYAML, _ := cmd.Flags().GetBool("yaml")
	if asJSON && asYAML {
		return fmt.Errorf("--json and --yaml are mutually exclusive")
	}

	field, _ := cmd.Flags().GetString("field")
	team, _ := cmd.Flags().GetString("team")
	if field != "" || team != "" {
		kind, g, err := singleGroup(c, d.Papers, field, team)
		if err != nil {
			return err
		}
		switch {
		case asJSON:
			return report.FormatJSON(g, w)
		case asYAML:
			return report.FormatYAML(g, w)
		}
		start, end := d.Range()
		fmt.Fprintf(w, "%d of %d papers from %s to %s\n", len(g.Papers), len(d.Papers), start, end)
		report.NewPrinter(w, style, sections).PrintGroup(kind, g)
		return nil
	}

	switch {
	case asJSON:
		return report.FormatJSON(d, w)
	case asYAML:
		return report.FormatYAML(d, w)
	}
	report.NewPrinter(w, style, sections).Print(d)
	return nil
}

// singleGroup applies the --field or --team filter and reports which kind
// of group was selected.
func singleGroup(c *classify.Classifier, papers []types.Paper, field, team string) (string, classify.Group, error) {
	if field != "" && team != "" {
		return "", classify.Group{}, fmt.Errorf("--field and --team are mutually exclusive")
	}
	if field != "" {
		matched, err := c.FilterByField(papers, field)
		return classify.KindField, classify.Group{Name: field, Papers: matched}, err
	}
	matched, err := c.FilterByTeam(papers, team)
	return classify.KindTeam, classify.Group{Name: team, Papers: matched}, err
}

func sectionsFlag(cmd *cobra.Command) (report.Sections, error) {
	only, _ := cmd.Flags().GetString("only")
	switch strings.ToLower(strings.TrimSpace(only)) {
	case "":
		return report.AllSections, nil
	case "fields", "field":
		return report.Sections{Fields: true, Other: true}, nil
	case "teams", "team":
		return report.Sections{Teams: true}, nil
	}
	return report.Sections{}, fmt.Errorf("unknown --only value %q: use fields or teams", only)
}

// nowFlag returns the --now instant, or the wall clock when unset.
func nowFlag(cmd *cobra.Command) (time.Time, error) {
	s, _ := cmd.Flags().GetString("now")
	if s == "" {
		return time.Now().UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --now %q: want RFC 3339 like 2026-10-14T10:00:00Z", s)
	}
	return t, nil
}
