// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders digests for the terminal and as JSON or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/arxiv-weekly/internal/classify"
	"github.com/pdiddy/arxiv-weekly/internal/cycle"
	"github.com/pdiddy/arxiv-weekly/internal/digest"
	"github.com/pdiddy/arxiv-weekly/pkg/types"
)

// Style selects the console layout.
type Style string

const (
	// StyleVerbose prints one labelled block per paper.
	StyleVerbose Style = "verbose"
	// StyleCompact prints one line per paper.
	StyleCompact Style = "compact"
)

// ParseStyle validates a style name.
func ParseStyle(s string) (Style, error) {
	switch Style(strings.ToLower(strings.TrimSpace(s))) {
	case StyleVerbose, "":
		return StyleVerbose, nil
	case StyleCompact:
		return StyleCompact, nil
	}
	return "", fmt.Errorf("unknown style %q: use verbose or compact", s)
}

// Sections selects which groupings are printed.
type Sections struct {
	Fields bool
	Teams  bool
	Other  bool
}

// AllSections prints field and team groups plus unmatched papers.
var AllSections = Sections{Fields: true, Teams: true, Other: true}

const width = 80

// Printer writes digests to a terminal-like writer. Colours are used only
// when the writer is a terminal that supports them.
type Printer struct {
	w        io.Writer
	style    Style
	sections Sections

	banner  lipgloss.Style
	heading lipgloss.Style
	label   lipgloss.Style
	dim     lipgloss.Style
}

// NewPrinter returns a Printer for w.
func NewPrinter(w io.Writer, style Style, sections Sections) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:        w,
		style:    style,
		sections: sections,
		banner:   r.NewStyle().Width(width).Align(lipgloss.Center).Bold(true),
		heading:  r.NewStyle().Width(width).Align(lipgloss.Center).Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}),
		label:    r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#3D3D3D", Dark: "#ABABAB"}),
		dim:      r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"}),
	}
}

// Print renders d.
func (p *Printer) Print(d digest.Digest) {
	start, end := d.Range()
	p.rule("=")
	p.line(p.banner.Render(fmt.Sprintf("Papers for %q from %s to %s", d.Keyword, start, end)))
	p.rule("=")

	if len(d.Papers) == 0 {
		p.line(p.banner.Render("No papers found in this time range."))
		p.rule("=")
		return
	}

	p.line(p.banner.Render(fmt.Sprintf("Finish fetching %d papers.", len(d.Papers))))
	p.rule("=")

	if p.sections.Fields {
		for _, g := range d.Fields {
			p.group(Heading(classify.KindField, g.Name), g.Papers)
		}
	}
	if p.sections.Teams {
		for _, g := range d.Teams {
			p.group(Heading(classify.KindTeam, g.Name), g.Papers)
		}
	}
	if p.sections.Other && len(d.Other) > 0 {
		p.group("[OTHER] papers matching no field", d.Other)
	}
}

// Heading returns the section title for a group of the given kind
// (classify.KindField or classify.KindTeam).
func Heading(kind, name string) string {
	if kind == classify.KindTeam {
		return fmt.Sprintf("[TEAM] %s team papers", name)
	}
	return fmt.Sprintf("[FIELD] %s papers", name)
}

// PrintGroup renders a single group of the given kind, for example the
// result of a direct field or team filter.
func (p *Printer) PrintGroup(kind string, g classify.Group) {
	if len(g.Papers) == 0 {
		p.line(p.banner.Render(fmt.Sprintf("No papers matched %s %q.", kind, g.Name)))
		return
	}
	p.group(Heading(kind, g.Name), g.Papers)
}

func (p *Printer) group(title string, papers []types.Paper) {
	if p.style == StyleCompact {
		p.line(p.heading.UnsetWidth().UnsetAlign().Render(fmt.Sprintf("## %s (%d)", title, len(papers))))
		for _, paper := range papers {
			p.line(fmt.Sprintf("  - %-12s %s %s %s", paper.ID(), paper.Title,
				p.dim.Render("("+shortAuthors(paper.Authors)+")"),
				p.dim.Render("["+paper.PrimaryCategory+"]")))
		}
		p.line("")
		return
	}

	p.rule("=")
	p.line(p.heading.Render(title))
	p.rule("-")
	for i, paper := range papers {
		p.line(fmt.Sprintf("[%d] %s %s", i+1, p.label.Render("Title   :"), paper.Title))
		p.line(fmt.Sprintf("     %s %s", p.label.Render("Authors :"), strings.Join(paper.Authors, ", ")))
		p.line(fmt.Sprintf("     %s %s", p.label.Render("Date    :"), formatDate(paper)))
		p.line(fmt.Sprintf("     %s %s", p.label.Render("Category:"), paper.PrimaryCategory))
		p.line(fmt.Sprintf("     %s %s", p.label.Render("URL     :"), paper.URL))
		p.rule("-")
	}
}

func (p *Printer) rule(ch string) {
	p.line(p.dim.Render(strings.Repeat(ch, width)))
}

func (p *Printer) line(s string) {
	fmt.Fprintln(p.w, s)
}

// PrintWindow describes a publication window and the daily cycles inside it.
func (p *Printer) PrintWindow(title string, w types.Window) {
	start, end := cycle.FormatRange(w)
	p.line(p.heading.UnsetWidth().UnsetAlign().Render(title))
	p.line(fmt.Sprintf("  %s %s (%s)", p.label.Render("Start:"), start, w.Start.Weekday()))
	p.line(fmt.Sprintf("  %s %s (%s)", p.label.Render("End:  "), end, w.End.Weekday()))
	p.line(fmt.Sprintf("  %s %s", p.label.Render("Span: "), w.Duration()))
	for i, c := range cycle.Cycles(w) {
		cs, ce := cycle.FormatRange(c)
		p.line(p.dim.Render(fmt.Sprintf("    cycle %d: %s → %s", i+1, cs, ce)))
	}
}

func formatDate(paper types.Paper) string {
	if paper.Published.IsZero() {
		return ""
	}
	return paper.Published.Format("2006-01-02")
}

func shortAuthors(authors []string) string {
	switch len(authors) {
	case 0:
		return ""
	case 1:
		return authors[0]
	default:
		return authors[0] + " et al."
	}
}

// FormatJSON writes v (a digest.Digest or classify.Group) as indented JSON
// to w.
func FormatJSON(v any, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// FormatYAML writes v as YAML to w.
func FormatYAML(v any, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
