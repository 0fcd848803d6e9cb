package schedulers

import (
	"log/slog"
	"sort"

	"cpusched/internal/core"
)

// firstComeFirstServe runs processes to completion in arrival order.
type firstComeFirstServe struct {
	logger *slog.Logger
}

func (s *firstComeFirstServe) Schedule(procs []*core.ProcessRecord, timeline *core.TimelineBuilder) error {
	// sort jobs by arrival time, ties keep input order
	jobs := arrivalOrder(procs)

	now := 0
	for _, i := range jobs {
		p := procs[i]
		if now < p.ArrivalTime {
			s.logger.Debug("cpu idle", "from", now, "until", p.ArrivalTime)
			now = p.ArrivalTime
		}

		ticks := p.RemainingTime
		p.Dispatch(now)
		if err := timeline.Append(p.ID, now, now+ticks); err != nil {
			return err
		}
		if err := p.Run(ticks, now); err != nil {
			return err
		}
		s.logger.Debug("dispatch", "pid", p.ID, "start", now, "ticks", ticks)
		now += ticks
	}
	return nil
}

// arrivalOrder returns the indexes of procs sorted by arrival time, stable on input order.
func arrivalOrder(procs []*core.ProcessRecord) []int {
	order := make([]int, len(procs))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return procs[order[a]].ArrivalTime < procs[order[b]].ArrivalTime
	})
	return order
}
