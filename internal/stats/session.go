// Package stats derives session and aggregate statistics from recorded
// events. Both aggregators recompute from scratch on every call; the cost is
// O(sessions) per write, the payoff is that derived numbers can never drift
// from the events they describe.
package stats

import "hooklog/internal/model"

// ComputeSessionStats derives a session's counters from its event list in a
// single scan. A PostToolUse event with a tool name counts as one completed
// tool call; its duration, when present, feeds the per-tool and total times.
// Ties for most-used and slowest resolve to the tool seen first, since Go map
// iteration order is randomized and the comparison is strictly greater-than.
func ComputeSessionStats(s *model.Session) model.SessionStats {
	st := model.NewSessionStats()
	st.TotalEvents = len(s.Events)

	var firstSeen []string
	for _, e := range s.Events {
		switch e.EventType {
		case model.KindPostToolUse:
			if e.ToolName == nil {
				continue
			}
			name := *e.ToolName
			if _, seen := st.ToolUsageCounts[name]; !seen {
				firstSeen = append(firstSeen, name)
			}
			st.TotalToolCalls++
			st.ToolUsageCounts[name]++
			if e.DurationMs != nil {
				st.ToolTimeSpent[name] += *e.DurationMs
				st.TotalProcessingTimeMs += *e.DurationMs
			}
			if e.OutputSummary.Failed() {
				st.ErrorsCount++
			}
		case model.KindUserPromptSubmit:
			st.UserPromptsCount++
		}
	}

	var maxCount int
	for _, name := range firstSeen {
		if c := st.ToolUsageCounts[name]; c > maxCount {
			maxCount = c
			tool := name
			st.MostUsedTool = &tool
		}
	}

	var maxTime int64
	for _, name := range firstSeen {
		if t := st.ToolTimeSpent[name]; t > maxTime {
			maxTime = t
			tool := name
			st.SlowestTool = &tool
		}
	}

	return st
}
