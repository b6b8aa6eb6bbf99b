// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-weekly/internal/cycle"
	"github.com/pdiddy/arxiv-weekly/internal/report"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Show the publication windows without fetching anything",
	Long: `Window prints the current publication cycle window and the window of
the last N daily cycles, with their 24h cycle breakdown. Nothing is fetched.`,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Int("days", 7, "number of daily cycles for the lookback window")
	windowCmd.Flags().String("now", "", "pretend the current time is this RFC 3339 instant")
	rootCmd.AddCommand(windowCmd)
}

func runWindow(cmd *cobra.Command, args []string) error {
	now, err := nowFlag(cmd)
	if err != nil {
		return err
	}
	days, _ := cmd.Flags().GetInt("days")
	p := report.NewPrinter(cmd.OutOrStdout(), report.StyleVerbose, report.AllSections)

	current, err := cycle.CurrentWindow(now)
	switch {
	case errors.Is(err, cycle.ErrWeekend):
		fmt.Fprintf(cmd.OutOrStdout(), "Current cycle: none (%v)\n", err)
	case err != nil:
		return err
	default:
		p.PrintWindow("Current cycle", current)
	}

	lookback, err := cycle.LastNDays(days, now)
	if err != nil {
		return err
	}
	p.PrintWindow(fmt.Sprintf("Last %d days", days), lookback)
	return nil
}
