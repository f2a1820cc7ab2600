package stats

import "hooklog/internal/model"

// dayKey buckets a session by the UTC calendar date of its start.
const dayKeyLayout = "2006-01-02"

// ComputeAggregateStats derives the cross-session counters from every
// session's stats. All accumulators are zeroed first; the result depends only
// on the multiset of sessions, not their order.
func ComputeAggregateStats(log *model.UsageLog) model.AggregateStats {
	agg := model.NewAggregateStats()
	agg.TotalSessions = len(log.Sessions)

	for _, s := range log.Sessions {
		ss := s.SessionStats
		agg.TotalEvents += ss.TotalEvents
		agg.TotalToolCalls += ss.TotalToolCalls
		agg.TotalTimeTrackedMs += ss.TotalProcessingTimeMs

		for tool, count := range ss.ToolUsageCounts {
			agg.ToolUsageCounts[tool] += count
		}
		for tool, ms := range ss.ToolTimeSpent {
			agg.ToolTimeSpent[tool] += ms
		}

		proj := agg.ProjectUsage[s.ProjectDir]
		proj.Sessions++
		proj.TotalTimeMs += ss.TotalProcessingTimeMs
		proj.ToolCalls += ss.TotalToolCalls
		agg.ProjectUsage[s.ProjectDir] = proj

		day := s.StartedAt.UTC().Format(dayKeyLayout)
		activity := agg.DailyActivity[day]
		activity.Sessions++
		activity.Events += ss.TotalEvents
		activity.TimeMs += ss.TotalProcessingTimeMs
		agg.DailyActivity[day] = activity
	}

	return agg
}
