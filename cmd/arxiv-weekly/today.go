// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-weekly/internal/cycle"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Fetch the papers announced in the current publication cycle",
	Long: `Today computes the window of the arXiv announcement that the current
time belongs to and fetches the papers submitted in it. Before 01:00 UTC the
previous day's announcement is used. arXiv does not announce on weekends, so
today fails on Saturday and Sunday; use "recent" instead.`,
	RunE: runToday,
}

func init() {
	addFetchFlags(todayCmd)
	rootCmd.AddCommand(todayCmd)
}

func runToday(cmd *cobra.Command, args []string) error {
	now, err := nowFlag(cmd)
	if err != nil {
		return err
	}
	window, err := cycle.CurrentWindow(now)
	if errors.Is(err, cycle.ErrWeekend) {
		return fmt.Errorf("no publication window for %s: %w (try: arxiv-weekly recent)", now.UTC().Format("Monday 2006-01-02"), err)
	}
	if err != nil {
		return err
	}
	return fetchDigest(cmd, window)
}
