package cmd

import (
	"fmt"

	"hooklog/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  CLI config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	if cfg.General.DataDir != "" {
		fmt.Printf("    Data directory: %s\n", cfg.General.DataDir)
	} else {
		fmt.Println("    Data directory: default")
	}
	fmt.Println()

	fmt.Println("  [Report]")
	fmt.Printf("    Default days: %d\n", cfg.Report.DefaultDays)
	fmt.Printf("    Tool limit:   %d\n", cfg.Report.ToolLimit)
	fmt.Println()

	st := openStore()
	tracker := st.LoadTrackerConfig()

	fmt.Printf("  Tracker config file: %s\n", st.ConfigPath())
	if !st.ConfigExists() {
		fmt.Println("  Status: not initialized (run `hooklog init`)")
	}
	fmt.Println()

	fmt.Println("  [Tracker]")
	fmt.Printf("    Tracking enabled:   %v\n", tracker.TrackingEnabled)
	fmt.Printf("    Log user prompts:   %v\n", tracker.LogUserPrompts)
	fmt.Printf("    Log tool inputs:    %v\n", tracker.LogToolInputs)
	fmt.Printf("    Log tool outputs:   %v\n", tracker.LogToolOutputs)
	fmt.Printf("    Sessions to keep:   %d\n", tracker.MaxSessionsToKeep)
	fmt.Printf("    Auto cleanup:       %v\n", tracker.AutoCleanupEnabled)

	return nil
}
