package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"hooklog/internal/model"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var (
	flagInitForce    bool
	flagInitDefaults bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the usage tracker",
	Long:  "Creates the history directory, an empty usage log, and the tracker configuration. Existing files are kept unless --force is given.",
	RunE:  runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&flagInitForce, "force", "f", false, "Recreate log and config even if they exist")
	initCmd.Flags().BoolVar(&flagInitDefaults, "defaults", false, "Skip the interactive form, use defaults")
	rootCmd.AddCommand(initCmd)
}

func runInit(_ *cobra.Command, _ []string) error {
	st := openStore()
	now := time.Now().UTC()

	cfg := st.LoadTrackerConfig()
	if !st.ConfigExists() || flagInitForce {
		cfg = model.DefaultTrackerConfig(now)
	}

	if !flagInitDefaults {
		if err := configForm(&cfg); err != nil {
			return err
		}
	}

	fmt.Println()
	fmt.Println("  Initializing usage tracker...")

	if _, err := os.Stat(st.LogPath()); os.IsNotExist(err) || flagInitForce {
		log := model.NewUsageLog(now)
		if err := st.SaveLog(log); err != nil {
			return err
		}
		fmt.Printf("  Created log file:    %s\n", st.LogPath())
	} else {
		fmt.Printf("  Log file exists:     %s\n", st.LogPath())
	}

	if err := st.SaveTrackerConfig(cfg); err != nil {
		return err
	}
	fmt.Printf("  Wrote config file:   %s\n", st.ConfigPath())

	fmt.Println()
	if cfg.TrackingEnabled {
		fmt.Println("  Tracking is active. Wire the `hooklog hook` drivers into your")
		fmt.Println("  Claude Code hooks, then inspect usage with:")
		fmt.Println("    hooklog stats       usage statistics")
		fmt.Println("    hooklog sessions    recent sessions")
		fmt.Println("    hooklog tui         interactive browser")
	} else {
		fmt.Println("  Tracking is disabled. Re-run `hooklog init` to enable it.")
	}
	fmt.Println()
	return nil
}

// configForm edits the tracker config interactively.
func configForm(cfg *model.TrackerConfig) error {
	maxSessions := strconv.Itoa(cfg.MaxSessionsToKeep)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Enable usage tracking").
				Value(&cfg.TrackingEnabled),
			huh.NewConfirm().
				Title("Record user prompt lengths").
				Description("Only the character count is stored, never the text.").
				Value(&cfg.LogUserPrompts),
			huh.NewConfirm().
				Title("Record tool input summaries").
				Value(&cfg.LogToolInputs),
			huh.NewConfirm().
				Title("Record tool output summaries").
				Value(&cfg.LogToolOutputs),
			huh.NewInput().
				Title("Sessions to keep").
				Description("Older sessions are removed by `hooklog prune`.").
				Value(&maxSessions).
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil || n < 1 {
						return fmt.Errorf("enter a positive number")
					}
					return nil
				}),
			huh.NewConfirm().
				Title("Enable automatic cleanup").
				Value(&cfg.AutoCleanupEnabled),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("configuration form: %w", err)
	}

	cfg.MaxSessionsToKeep, _ = strconv.Atoi(maxSessions)
	return nil
}
