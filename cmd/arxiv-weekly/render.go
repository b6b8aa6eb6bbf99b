// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-weekly/internal/classify"
	"github.com/pdiddy/arxiv-weekly/internal/digest"
)

var renderCmd = &cobra.Command{
	Use:   "render <digest.yaml>",
	Short: "Re-classify and print a digest saved with --save",
	Long: `Render loads papers saved by "today --save" or "recent --save", groups
them with the current keyword configuration, and prints them. No network
access is needed, so keyword lists can be tuned against a fixed fetch.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	addOutputFlags(renderCmd)
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	classifier, err := classify.New(cfg.Keywords)
	if err != nil {
		return err
	}

	d, err := digest.ReadFile(args[0])
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"file": args[0], "papers": len(d.Papers)}).Debug("loaded digest")

	return output(cmd, classifier, digest.Classify(classifier, d))
}
