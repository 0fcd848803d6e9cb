package schedulers

import (
	"log/slog"

	"cpusched/internal/core"
)

// lower value means higher priority
func priority(p *core.ProcessRecord) int { return p.Priority }

func newPriorityNonPreemptive(logger *slog.Logger) Scheduler {
	return &nonPreemptive{key: priority, logger: logger}
}

func newPriorityPreemptive(logger *slog.Logger) Scheduler {
	return &preemptive{key: priority, logger: logger}
}
