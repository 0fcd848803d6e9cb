package schedulers

import (
	"log/slog"

	"cpusched/internal/core"
)

// roundRobin serves a FIFO ready queue, granting each dispatch at most quantum ticks.
type roundRobin struct {
	quantum int
	logger  *slog.Logger
}

func (s *roundRobin) Schedule(procs []*core.ProcessRecord, timeline *core.TimelineBuilder) error {
	jobs := arrivalOrder(procs)
	queue := make([]int, 0, len(procs))
	next := 0

	// admit enqueues every not yet admitted process that has arrived by t.
	admit := func(t int) {
		for next < len(jobs) && procs[jobs[next]].ArrivalTime <= t {
			s.logger.Debug("arrival", "pid", procs[jobs[next]].ID, "time", procs[jobs[next]].ArrivalTime)
			queue = append(queue, jobs[next])
			next++
		}
	}

	now := 0
	admit(now)
	for len(queue) > 0 || next < len(jobs) {
		if len(queue) == 0 {
			now = procs[jobs[next]].ArrivalTime
			s.logger.Debug("cpu idle", "until", now)
			admit(now)
			continue
		}

		i := queue[0]
		queue = queue[1:]
		p := procs[i]

		ticks := min(s.quantum, p.RemainingTime)
		p.Dispatch(now)
		if err := timeline.Append(p.ID, now, now+ticks); err != nil {
			return err
		}
		if err := p.Run(ticks, now); err != nil {
			return err
		}
		s.logger.Debug("dispatch", "pid", p.ID, "start", now, "ticks", ticks, "remaining", p.RemainingTime)
		now += ticks

		// arrivals during the slice go ahead of the preempted process
		admit(now)
		if !p.Finished() {
			queue = append(queue, i)
		}
	}
	return nil
}
