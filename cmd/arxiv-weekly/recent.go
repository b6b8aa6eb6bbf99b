// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-weekly/internal/cycle"
)

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Fetch the papers of the last N daily publication cycles",
	Long: `Recent fetches every paper submitted in the last N daily cycles, each
running from 19:00 UTC to 19:00 UTC the next day, ending at 19:00 UTC on
today's date. The default of 7 days covers one week of announcements.`,
	RunE: runRecent,
}

func init() {
	recentCmd.Flags().Int("days", 7, "number of daily cycles to cover")
	addFetchFlags(recentCmd)
	rootCmd.AddCommand(recentCmd)
}

func runRecent(cmd *cobra.Command, args []string) error {
	days, _ := cmd.Flags().GetInt("days")
	now, err := nowFlag(cmd)
	if err != nil {
		return err
	}
	window, err := cycle.LastNDays(days, now)
	if err != nil {
		return err
	}
	return fetchDigest(cmd, window)
}
