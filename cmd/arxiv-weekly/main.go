// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the arxiv-weekly CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/arxiv-weekly/internal/logging"
	"github.com/pdiddy/arxiv-weekly/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// log is the run-scoped logger, built in PersistentPreRunE.
var log = logrus.NewEntry(logrus.StandardLogger())

// configErr holds a config file read failure so it can be logged once the
// logger exists.
var configErr error

// rootCmd is the base command for the arxiv-weekly CLI.
var rootCmd = &cobra.Command{
	Use:   "arxiv-weekly",
	Short: "Fetch recent arXiv papers and group them by field and team",
	Long: `arxiv-weekly queries the arXiv API for papers submitted in a publication
window and groups them by research field (title/summary keywords) and by
contributing team (author-name keywords).

arXiv closes each weekday's submissions at 19:00 UTC. "today" fetches the
batch announced in the current cycle; "recent" fetches the last N daily
cycles. Keyword lists come from the built-in defaults, overridable in
arxiv-weekly.yaml.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetString("log-level")
		if level == "" {
			level = viper.GetString("log_level")
		}
		log = logging.ForRun(logging.New(level, cmd.ErrOrStderr()))

		if configErr != nil {
			log.WithError(configErr).Warn("could not read config file; using defaults")
		} else if f := viper.ConfigFileUsed(); f != "" {
			log.WithField("file", f).Debug("using config file")
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./arxiv-weekly.yaml or $XDG_CONFIG_HOME/arxiv-weekly/arxiv-weekly.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error (default info)")
}

func initConfig() {
	viper.SetDefault("keyword", "quantum")
	viper.SetDefault("max_results", 400)
	viper.SetDefault("page_size", 100)
	viper.SetDefault("sort", string(types.SortSubmitted))
	viper.SetDefault("timeout", 60*time.Second)
	viper.SetDefault("user_agent", "arxiv-weekly/"+version)
	viper.SetDefault("request_interval", 3*time.Second)
	viper.SetDefault("max_retries", 5)
	viper.SetDefault("log_level", "info")

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("arxiv-weekly")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath(filepath.Join(xdg.ConfigHome, "arxiv-weekly"))
	}

	viper.SetEnvPrefix("ARXIV_WEEKLY")
	viper.AutomaticEnv()

	configErr = nil
	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			configErr = err
		}
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
