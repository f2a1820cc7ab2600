// Package cmd implements the hooklog CLI commands.
package cmd

import (
	"os"

	"hooklog/internal/config"
	"hooklog/internal/store"

	"github.com/spf13/cobra"
)

var flagDataDir string
var flagDays int

var rootCmd = &cobra.Command{
	Use:          "hooklog",
	Short:        "Claude Code usage tracking from lifecycle hooks",
	Long:         "Records Claude Code lifecycle events into a local usage log and reports on tool usage, sessions, and activity.",
	SilenceUsage: true,
	RunE:         runStats,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "History directory (default ~/.claude/.plugin-history)")
	rootCmd.PersistentFlags().IntVarP(&flagDays, "days", "n", 0, "Report window in days (default from config, 30)")
}

// openStore resolves the history directory: flag, then CLI config override,
// then the default location.
func openStore() *store.Store {
	if flagDataDir != "" {
		return store.New(flagDataDir)
	}
	cfg, _ := config.Load()
	if cfg.General.DataDir != "" {
		return store.New(cfg.General.DataDir)
	}
	return store.New(store.DefaultDir())
}

func reportDays() int {
	if flagDays > 0 {
		return flagDays
	}
	cfg, _ := config.Load()
	if cfg.Report.DefaultDays > 0 {
		return cfg.Report.DefaultDays
	}
	return 30
}

func toolLimit() int {
	cfg, _ := config.Load()
	if cfg.Report.ToolLimit > 0 {
		return cfg.Report.ToolLimit
	}
	return 10
}
