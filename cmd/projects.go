package cmd

import (
	"fmt"
	"os"

	"hooklog/internal/cli"
	"hooklog/internal/stats"

	"github.com/spf13/cobra"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Project usage ranking",
	RunE:  runProjects,
}

func init() {
	rootCmd.AddCommand(projectsCmd)
}

func runProjects(_ *cobra.Command, _ []string) error {
	st := openStore()
	log, err := st.LoadLog()
	if err != nil {
		return err
	}

	projects := stats.RankProjects(log.AggregateStats.ProjectUsage, 0)
	if len(projects) == 0 {
		fmt.Println("\n  No project usage recorded.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("PROJECTS"))
	fmt.Println()

	home, _ := os.UserHomeDir()
	rows := make([][]string, 0, len(projects))
	for _, pr := range projects {
		rows = append(rows, []string{
			cli.Truncate(cli.ShortenHome(pr.Project, home), 40),
			cli.FormatNumber(int64(pr.Usage.Sessions)),
			cli.FormatNumber(int64(pr.Usage.ToolCalls)),
			cli.FormatDurationMs(pr.Usage.TotalTimeMs),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Project", "Sessions", "Tool Calls", "Time"},
		Rows:    rows,
	}))

	return nil
}
