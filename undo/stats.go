package undo

import "time"

// HistoryStats provides statistics about history activity.
type HistoryStats struct {
	Executions int64
	Reverts    int64
	Redos      int64
	Finalized  int64
	Truncated  int64
	Evicted    int64
	Commands   []CommandStats
}

// CommandStats provides execution statistics for commands sharing a name.
type CommandStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type commandStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

type historyStatsInternal struct {
	executions int64
	reverts    int64
	redos      int64
	finalized  int64
	truncated  int64
	evicted    int64
	byName     map[string]int
	commands   []*commandStatsInternal
}

func newHistoryStatsInternal() historyStatsInternal {
	return historyStatsInternal{
		byName: make(map[string]int),
	}
}

func (s *historyStatsInternal) record(name string, duration time.Duration) {
	s.executions++

	idx, ok := s.byName[name]
	if !ok {
		idx = len(s.commands)
		s.byName[name] = idx
		s.commands = append(s.commands, &commandStatsInternal{
			name:        name,
			minDuration: time.Duration(1<<63 - 1),
		})
	}

	stats := s.commands[idx]
	stats.executionCount++
	stats.lastDuration = duration
	stats.totalDuration += duration

	if duration < stats.minDuration {
		stats.minDuration = duration
	}
	if duration > stats.maxDuration {
		stats.maxDuration = duration
	}
}

// Stats returns statistics about the commands this history has applied. Commands are
// listed in the order their name was first executed.
func (h *History[C]) Stats() *HistoryStats {
	stats := &HistoryStats{
		Executions: h.stats.executions,
		Reverts:    h.stats.reverts,
		Redos:      h.stats.redos,
		Finalized:  h.stats.finalized,
		Truncated:  h.stats.truncated,
		Evicted:    h.stats.evicted,
		Commands:   make([]CommandStats, len(h.stats.commands)),
	}

	for i, internal := range h.stats.commands {
		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		stats.Commands[i] = CommandStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
	}

	return stats
}
