package schedulers

import (
	"log/slog"

	"cpusched/internal/core"
)

func burstTime(p *core.ProcessRecord) int     { return p.BurstTime }
func remainingTime(p *core.ProcessRecord) int { return p.RemainingTime }

// newShortestJobFirst picks the shortest burst among arrived processes and
// runs it to completion.
func newShortestJobFirst(logger *slog.Logger) Scheduler {
	return &nonPreemptive{key: burstTime, logger: logger}
}

// newShortestRemainingTimeFirst gives every tick to the arrived process with
// the least remaining time.
func newShortestRemainingTimeFirst(logger *slog.Logger) Scheduler {
	return &preemptive{key: remainingTime, logger: logger}
}
