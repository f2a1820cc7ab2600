package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"hooklog/internal/recorder"

	"github.com/spf13/cobra"
)

var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "Hook drivers invoked by Claude Code",
	Long:  "Each subcommand reads one JSON hook payload from stdin and records the corresponding event. Wire these into the hooks section of your Claude Code settings.",
}

func init() {
	rootCmd.AddCommand(hookCmd)
	hookCmd.AddCommand(
		sessionStartCmd,
		sessionEndCmd,
		observerHook("pre-tool-use", "Record a PreToolUse event", (*recorder.Recorder).RecordPreToolUse),
		observerHook("post-tool-use", "Record a PostToolUse event", (*recorder.Recorder).RecordPostToolUse),
		observerHook("user-prompt", "Record a UserPromptSubmit event", (*recorder.Recorder).RecordUserPromptSubmit),
		observerHook("stop", "Record a Stop event", (*recorder.Recorder).RecordStop),
		observerHook("subagent-stop", "Record a SubagentStop event", (*recorder.Recorder).RecordSubagentStop),
	)
}

// observerHook builds a driver for hooks where the host gates its action on
// the exit code. A logging failure must never block the host, so these
// drivers report errors on stderr and still exit 0.
func observerHook(use, short string, record func(*recorder.Recorder, recorder.HookInput) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := runHook(record); err != nil {
				fmt.Fprintf(os.Stderr, "hooklog %s: %v\n", use, err)
			}
			return nil
		},
	}
}

var sessionStartCmd = &cobra.Command{
	Use:   "session-start",
	Short: "Record a SessionStart event",
	RunE: func(_ *cobra.Command, _ []string) error {
		st := openStore()
		if !st.LoadTrackerConfig().TrackingEnabled {
			return nil
		}

		in, err := recorder.ReadHookInput(os.Stdin)
		if err != nil {
			return err
		}
		if err := recorder.New(st).RecordSessionStart(in); err != nil {
			return err
		}

		// SessionStart may add context for the host to display.
		out := map[string]any{
			"hookSpecificOutput": map[string]any{
				"hookEventName":     "SessionStart",
				"additionalContext": fmt.Sprintf("[hooklog] Session %s started. Tracking enabled.", in.SessionID),
			},
		}
		return json.NewEncoder(os.Stdout).Encode(out)
	},
}

var sessionEndCmd = &cobra.Command{
	Use:   "session-end",
	Short: "Record a SessionEnd event",
	RunE: func(_ *cobra.Command, _ []string) error {
		return runHook((*recorder.Recorder).RecordSessionEnd)
	},
}

func runHook(record func(*recorder.Recorder, recorder.HookInput) error) error {
	st := openStore()
	if !st.LoadTrackerConfig().TrackingEnabled {
		return nil
	}

	in, err := recorder.ReadHookInput(os.Stdin)
	if err != nil {
		return err
	}
	return record(recorder.New(st), in)
}
