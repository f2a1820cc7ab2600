package cmd

import (
	"fmt"
	"path/filepath"

	"hooklog/internal/cli"
	"hooklog/internal/store"

	"github.com/spf13/cobra"
)

var flagExportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the usage log to SQLite",
	Long:  "Writes every session and event into a SQLite database for ad-hoc SQL queries. The JSON log stays canonical; the database is rewritten on every export.",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "", "Database path (default usage-log.db next to the log)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	st := openStore()
	log, err := st.LoadLog()
	if err != nil {
		return err
	}

	out := flagExportOut
	if out == "" {
		out = filepath.Join(st.Dir(), "usage-log.db")
	}

	exp, err := store.OpenExport(out)
	if err != nil {
		return err
	}
	defer exp.Close()

	if err := exp.ExportLog(log); err != nil {
		return err
	}

	sessions, err := exp.SessionCount()
	if err != nil {
		return err
	}
	events, err := exp.EventCount()
	if err != nil {
		return err
	}

	fmt.Printf("  Exported %s sessions and %s events to %s\n",
		cli.FormatNumber(int64(sessions)), cli.FormatNumber(int64(events)), out)
	return nil
}
