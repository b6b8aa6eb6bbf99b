// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-weekly/pkg/types"
)

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "List the configured field and team keyword groups",
	Long: `Groups prints every field and team group in report order with its
keywords. Names listed here are the valid values for --field and --team.`,
	RunE: runGroups,
}

func init() {
	rootCmd.AddCommand(groupsCmd)
}

func runGroups(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Default keyword: %s\n\n", cfg.Keywords.DefaultKeyword)
	printGroups(cmd, "Fields (title or summary)", cfg.Keywords.Fields)
	fmt.Fprintln(w)
	printGroups(cmd, "Teams (author names)", cfg.Keywords.Teams)
	return nil
}

func printGroups(cmd *cobra.Command, title string, groups []types.KeywordGroup) {
	w := cmd.OutOrStdout()
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("-", len(title)))
	for _, g := range groups {
		fmt.Fprintf(w, "%-28s %s\n", g.Name, strings.Join(g.Keywords, ", "))
	}
}
