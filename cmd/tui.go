package cmd

import (
	"fmt"

	"hooklog/internal/tui"

	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive session browser",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	st := openStore()
	log, err := st.LoadLog()
	if err != nil {
		return err
	}
	if len(log.Sessions) == 0 {
		fmt.Println("\n  No sessions recorded yet.")
		return nil
	}

	return tui.Run(log)
}
