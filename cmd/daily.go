package cmd

import (
	"fmt"
	"time"

	"hooklog/internal/cli"
	"hooklog/internal/model"
	"hooklog/internal/stats"

	"github.com/spf13/cobra"
)

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Daily activity table",
	RunE:  runDaily,
}

func init() {
	rootCmd.AddCommand(dailyCmd)
}

func runDaily(_ *cobra.Command, _ []string) error {
	st := openStore()
	log, err := st.LoadLog()
	if err != nil {
		return err
	}
	if len(log.Sessions) == 0 {
		fmt.Println("\n  No usage recorded yet.")
		return nil
	}

	days := reportDays()

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("DAILY ACTIVITY  Last %dd", days)))
	fmt.Println()

	entries := stats.LastDays(log.AggregateStats.DailyActivity, days, time.Now())

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		day, _ := time.Parse("2006-01-02", e.Date)
		rows = append(rows, []string{
			e.Date,
			day.Format("Mon"),
			cli.FormatNumber(int64(e.Activity.Sessions)),
			cli.FormatNumber(int64(e.Activity.Events)),
			cli.FormatDurationMs(e.Activity.TimeMs),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Day", "Sessions", "Events", "Time"},
		Rows:    rows,
	}))

	return nil
}

// renderActivity prints a bar-chart view of the trailing n days, shared by
// the stats report.
func renderActivity(activity map[string]model.DailyActivity, n int, now time.Time) {
	entries := stats.LastDays(activity, n, now)

	maxSessions := 0
	for _, e := range entries {
		if e.Activity.Sessions > maxSessions {
			maxSessions = e.Activity.Sessions
		}
	}

	fmt.Printf("  Daily activity (last %d days)\n", n)
	for _, e := range entries {
		bar := cli.RenderActivityBar(e.Activity.Sessions, maxSessions, 20)
		fmt.Printf("  %s  %-20s %d sessions\n", e.Date, bar, e.Activity.Sessions)
	}
	fmt.Println()
}
