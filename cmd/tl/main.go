// Package main implements the tl CLI tool.
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/taskline/taskline/internal/config"
	"github.com/taskline/taskline/internal/logging"
	"github.com/taskline/taskline/internal/ui"
	"github.com/taskline/taskline/task"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "tl",
	Short:        "Taskline - a personal command-line task tracker",
	SilenceUsage: true,
}

var (
	flagDataFile string
	flagVerbose  bool
	flagQuiet    bool
	flagNoColor  bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDataFile, "data-file", "", "Path to the data file (default "+task.DefaultDataFile+")")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable verbose diagnostics")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
}

func logger() *log.Logger {
	return logging.New(flagVerbose)
}

// loadConfig reads taskline.toml configuration. Config problems are
// diagnostics, not failures; the defaults always work.
func loadConfig() *config.Config {
	cwd, err := os.Getwd()
	if err != nil {
		return &config.Config{}
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		logger().Warn("cannot load config", "err", err)
		return &config.Config{}
	}
	return cfg
}

func openCollection() (*task.Collection, error) {
	cfg := loadConfig()

	path := flagDataFile
	if path == "" {
		path = cfg.DataFile
	}

	collection, err := task.Open(path)
	if err != nil {
		return nil, err
	}

	for _, warning := range collection.LoadWarnings() {
		logger().Warn("data file problem", "err", warning)
	}
	logger().Debug("opened collection", "path", collection.Path(), "tasks", collection.Len())

	return collection, nil
}

func styles() ui.Styles {
	if flagNoColor || loadConfig().NoColor {
		return ui.NewStyles(false)
	}
	return ui.NewStyles(ui.ColorEnabled())
}
