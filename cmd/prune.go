package cmd

import (
	"fmt"
	"sort"

	"hooklog/internal/cli"
	"hooklog/internal/model"
	"hooklog/internal/stats"

	"github.com/spf13/cobra"
)

var flagPruneKeep int

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove old sessions from the log",
	Long:  "Keeps the newest sessions up to the configured retention limit and recomputes the aggregate statistics. Pruning only ever happens through this command, never as a side effect of recording.",
	RunE:  runPrune,
}

func init() {
	pruneCmd.Flags().IntVarP(&flagPruneKeep, "keep", "k", 0, "Sessions to keep (default from tracker config)")
	rootCmd.AddCommand(pruneCmd)
}

func runPrune(_ *cobra.Command, _ []string) error {
	st := openStore()
	log, err := st.LoadLog()
	if err != nil {
		return err
	}

	keep := flagPruneKeep
	if keep <= 0 {
		keep = st.LoadTrackerConfig().MaxSessionsToKeep
	}
	if keep <= 0 {
		keep = 100
	}

	if len(log.Sessions) <= keep {
		fmt.Printf("  Nothing to prune: %s sessions, keeping up to %s\n",
			cli.FormatNumber(int64(len(log.Sessions))), cli.FormatNumber(int64(keep)))
		return nil
	}

	sessions := make([]*model.Session, len(log.Sessions))
	copy(sessions, log.Sessions)
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].StartedAt.After(sessions[j].StartedAt)
	})

	pruned := len(sessions) - keep
	log.Sessions = sessions[:keep]
	log.AggregateStats = stats.ComputeAggregateStats(log)

	if err := st.SaveLog(log); err != nil {
		return err
	}

	fmt.Printf("  Pruned %s sessions, kept %s\n",
		cli.FormatNumber(int64(pruned)), cli.FormatNumber(int64(keep)))
	return nil
}
