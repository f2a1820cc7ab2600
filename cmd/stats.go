package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"hooklog/internal/cli"
	"hooklog/internal/stats"

	"github.com/spf13/cobra"
)

var flagStatsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Usage statistics report",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&flagStatsJSON, "json", false, "Emit raw JSON instead of tables")
	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, _ []string) error {
	st := openStore()
	log, err := st.LoadLog()
	if err != nil {
		return err
	}

	if len(log.Sessions) == 0 {
		fmt.Println("\n  No usage recorded yet.")
		fmt.Println("  Run `hooklog init` and start a Claude Code session.")
		return nil
	}

	days := reportDays()
	now := time.Now()
	window := stats.AggregateWindow(log, now.AddDate(0, 0, -days))
	agg := log.AggregateStats

	if flagStatsJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"all_time":      agg,
			"recent":        window,
			"days_analyzed": days,
		})
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("USAGE STATISTICS"))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "All time",
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Sessions", cli.FormatNumber(int64(agg.TotalSessions))},
			{"Events", cli.FormatNumber(int64(agg.TotalEvents))},
			{"Tool Calls", cli.FormatNumber(int64(agg.TotalToolCalls))},
			{"Time Tracked", cli.FormatDurationMs(agg.TotalTimeTrackedMs)},
		},
	}))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Last %d days", days),
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Sessions", cli.FormatNumber(int64(window.Sessions))},
			{"Events", cli.FormatNumber(int64(window.Events))},
			{"Tool Calls", cli.FormatNumber(int64(window.ToolCalls))},
			{"Processing Time", cli.FormatDurationMs(window.TimeMs)},
		},
	}))
	fmt.Println()

	limit := toolLimit()

	byCount := stats.TopToolsByCount(window.ToolCounts, window.ToolTime, limit)
	if len(byCount) > 0 {
		rows := make([][]string, 0, len(byCount))
		for _, tr := range byCount {
			avg := int64(0)
			if tr.Count > 0 {
				avg = tr.TimeMs / int64(tr.Count)
			}
			rows = append(rows, []string{
				cli.Truncate(tr.Tool, 24),
				cli.FormatNumber(int64(tr.Count)),
				cli.FormatDurationMs(avg),
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Top tools by usage",
			Headers: []string{"Tool", "Calls", "Avg"},
			Rows:    rows,
		}))
		fmt.Println()
	}

	byTime := stats.TopToolsByTime(window.ToolCounts, window.ToolTime, limit)
	if len(byTime) > 0 {
		rows := make([][]string, 0, len(byTime))
		for _, tr := range byTime {
			share := 0.0
			if window.TimeMs > 0 {
				share = float64(tr.TimeMs) / float64(window.TimeMs)
			}
			rows = append(rows, []string{
				cli.Truncate(tr.Tool, 24),
				cli.FormatDurationMs(tr.TimeMs),
				cli.FormatPercent(share),
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Top tools by time spent",
			Headers: []string{"Tool", "Time", "Share"},
			Rows:    rows,
		}))
		fmt.Println()
	}

	projects := stats.RankProjects(agg.ProjectUsage, 5)
	if len(projects) > 0 {
		home, _ := os.UserHomeDir()
		rows := make([][]string, 0, len(projects))
		for _, pr := range projects {
			rows = append(rows, []string{
				cli.Truncate(cli.ShortenHome(pr.Project, home), 40),
				cli.FormatNumber(int64(pr.Usage.Sessions)),
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Project usage",
			Headers: []string{"Project", "Sessions"},
			Rows:    rows,
		}))
		fmt.Println()
	}

	renderActivity(agg.DailyActivity, 7, now)

	fmt.Printf("  Last updated: %s\n\n", log.UpdatedAt.Local().Format("2006-01-02 15:04:05"))
	return nil
}
