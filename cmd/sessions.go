package cmd

import (
	"fmt"
	"os"
	"sort"

	"hooklog/internal/cli"
	"hooklog/internal/model"

	"github.com/spf13/cobra"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Session list with details",
	RunE:  runSessions,
}

var sessionsLimit int

func init() {
	sessionsCmd.Flags().IntVarP(&sessionsLimit, "limit", "l", 20, "Number of sessions to show")
	rootCmd.AddCommand(sessionsCmd)
}

func runSessions(_ *cobra.Command, _ []string) error {
	st := openStore()
	log, err := st.LoadLog()
	if err != nil {
		return err
	}
	if len(log.Sessions) == 0 {
		fmt.Println("\n  No sessions recorded.")
		return nil
	}

	sessions := make([]*model.Session, len(log.Sessions))
	copy(sessions, log.Sessions)
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].StartedAt.After(sessions[j].StartedAt)
	})

	if sessionsLimit > 0 && len(sessions) > sessionsLimit {
		sessions = sessions[:sessionsLimit]
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("SESSIONS  (showing %d)", len(sessions))))
	fmt.Println()

	home, _ := os.UserHomeDir()
	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		duration := "active"
		if s.TotalDurationMs != nil {
			duration = cli.FormatDurationMs(*s.TotalDurationMs)
		}

		rows = append(rows, []string{
			s.StartedAt.Local().Format("Jan 02 15:04"),
			cli.Truncate(cli.ShortenHome(s.ProjectDir, home), 24),
			duration,
			cli.FormatNumber(int64(s.SessionStats.TotalEvents)),
			cli.FormatNumber(int64(s.SessionStats.TotalToolCalls)),
			cli.FormatNumber(int64(s.SessionStats.UserPromptsCount)),
			cli.FormatNumber(int64(s.SessionStats.ErrorsCount)),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Start", "Project", "Duration", "Events", "Tools", "Prompts", "Errors"},
		Rows:    rows,
	}))

	return nil
}
