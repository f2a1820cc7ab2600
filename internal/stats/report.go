package stats

import (
	"sort"
	"time"

	"hooklog/internal/model"
)

// Window holds counters summed over the sessions that started within a
// reporting window. It mirrors the aggregate block but is computed on demand
// so reports can show "last N days" next to all-time numbers.
type Window struct {
	Sessions   int              `json:"sessions"`
	Events     int              `json:"events"`
	ToolCalls  int              `json:"tool_calls"`
	TimeMs     int64            `json:"time_ms"`
	ToolCounts map[string]int   `json:"tool_counts"`
	ToolTime   map[string]int64 `json:"tool_time"`
}

// AggregateWindow sums session stats for sessions that started at or after
// since.
func AggregateWindow(log *model.UsageLog, since time.Time) Window {
	w := Window{
		ToolCounts: map[string]int{},
		ToolTime:   map[string]int64{},
	}

	for _, s := range log.Sessions {
		if s.StartedAt.Before(since) {
			continue
		}
		ss := s.SessionStats
		w.Sessions++
		w.Events += ss.TotalEvents
		w.ToolCalls += ss.TotalToolCalls
		w.TimeMs += ss.TotalProcessingTimeMs

		for tool, count := range ss.ToolUsageCounts {
			w.ToolCounts[tool] += count
		}
		for tool, ms := range ss.ToolTimeSpent {
			w.ToolTime[tool] += ms
		}
	}

	return w
}

// ToolRank pairs a tool name with its usage numbers for ranked listings.
type ToolRank struct {
	Tool   string
	Count  int
	TimeMs int64
}

// TopToolsByCount returns up to limit tools ordered by invocation count,
// ties broken by name for stable output.
func TopToolsByCount(counts map[string]int, times map[string]int64, limit int) []ToolRank {
	ranks := make([]ToolRank, 0, len(counts))
	for tool, count := range counts {
		ranks = append(ranks, ToolRank{Tool: tool, Count: count, TimeMs: times[tool]})
	}
	sort.Slice(ranks, func(i, j int) bool {
		if ranks[i].Count != ranks[j].Count {
			return ranks[i].Count > ranks[j].Count
		}
		return ranks[i].Tool < ranks[j].Tool
	})
	if limit > 0 && len(ranks) > limit {
		ranks = ranks[:limit]
	}
	return ranks
}

// TopToolsByTime returns up to limit tools ordered by cumulative time,
// ties broken by name.
func TopToolsByTime(counts map[string]int, times map[string]int64, limit int) []ToolRank {
	ranks := make([]ToolRank, 0, len(times))
	for tool, ms := range times {
		ranks = append(ranks, ToolRank{Tool: tool, Count: counts[tool], TimeMs: ms})
	}
	sort.Slice(ranks, func(i, j int) bool {
		if ranks[i].TimeMs != ranks[j].TimeMs {
			return ranks[i].TimeMs > ranks[j].TimeMs
		}
		return ranks[i].Tool < ranks[j].Tool
	})
	if limit > 0 && len(ranks) > limit {
		ranks = ranks[:limit]
	}
	return ranks
}

// ProjectRank pairs a project directory with its usage bucket.
type ProjectRank struct {
	Project string
	Usage   model.ProjectUsage
}

// RankProjects returns up to limit projects ordered by session count.
func RankProjects(usage map[string]model.ProjectUsage, limit int) []ProjectRank {
	ranks := make([]ProjectRank, 0, len(usage))
	for project, u := range usage {
		ranks = append(ranks, ProjectRank{Project: project, Usage: u})
	}
	sort.Slice(ranks, func(i, j int) bool {
		if ranks[i].Usage.Sessions != ranks[j].Usage.Sessions {
			return ranks[i].Usage.Sessions > ranks[j].Usage.Sessions
		}
		return ranks[i].Project < ranks[j].Project
	})
	if limit > 0 && len(ranks) > limit {
		ranks = ranks[:limit]
	}
	return ranks
}

// DayActivity pairs a calendar date with its activity bucket.
type DayActivity struct {
	Date     string
	Activity model.DailyActivity
}

// LastDays returns one entry per day for the trailing n days ending today
// (UTC), oldest first, with zero buckets for days without activity.
func LastDays(activity map[string]model.DailyActivity, n int, now time.Time) []DayActivity {
	days := make([]DayActivity, 0, n)
	for i := n - 1; i >= 0; i-- {
		date := now.UTC().AddDate(0, 0, -i).Format(dayKeyLayout)
		days = append(days, DayActivity{Date: date, Activity: activity[date]})
	}
	return days
}
