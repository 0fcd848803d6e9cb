package schedulers

import (
	"log/slog"

	"cpusched/internal/core"
)

// keyFunc is the primary selection criterion; smaller runs first.
type keyFunc func(p *core.ProcessRecord) int

// before orders procs[i] ahead of procs[j] by key, then arrival, then input order.
func before(procs []*core.ProcessRecord, key keyFunc, i, j int) bool {
	ki, kj := key(procs[i]), key(procs[j])
	if ki != kj {
		return ki < kj
	}
	if procs[i].ArrivalTime != procs[j].ArrivalTime {
		return procs[i].ArrivalTime < procs[j].ArrivalTime
	}
	return i < j
}

// pick returns the best ready process at now, or -1 when nothing is ready.
func pick(procs []*core.ProcessRecord, key keyFunc, now int) int {
	best := -1
	for i, p := range procs {
		if p.Finished() || p.ArrivalTime > now {
			continue
		}
		if best < 0 || before(procs, key, i, best) {
			best = i
		}
	}
	return best
}

// nextArrival returns the earliest arrival among unfinished processes.
func nextArrival(procs []*core.ProcessRecord) int {
	next := -1
	for _, p := range procs {
		if p.Finished() {
			continue
		}
		if next < 0 || p.ArrivalTime < next {
			next = p.ArrivalTime
		}
	}
	return next
}

// nonPreemptive runs the selected process to completion at every decision point.
type nonPreemptive struct {
	key    keyFunc
	logger *slog.Logger
}

func (s *nonPreemptive) Schedule(procs []*core.ProcessRecord, timeline *core.TimelineBuilder) error {
	now, done := 0, 0
	for done < len(procs) {
		i := pick(procs, s.key, now)
		if i < 0 {
			now = nextArrival(procs)
			s.logger.Debug("cpu idle", "until", now)
			continue
		}

		p := procs[i]
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
		done++
	}
	return nil
}

// preemptive re-evaluates the selection at every tick.
type preemptive struct {
	key    keyFunc
	logger *slog.Logger
}

func (s *preemptive) Schedule(procs []*core.ProcessRecord, timeline *core.TimelineBuilder) error {
	now, done, running := 0, 0, -1
	for done < len(procs) {
		i := pick(procs, s.key, now)
		if i < 0 {
			now = nextArrival(procs)
			running = -1
			s.logger.Debug("cpu idle", "until", now)
			continue
		}

		p := procs[i]
		if i != running {
			s.logger.Debug("dispatch", "pid", p.ID, "start", now, "remaining", p.RemainingTime)
			running = i
		}
		p.Dispatch(now)
		if err := timeline.Extend(p.ID, now, now+1); err != nil {
			return err
		}
		if err := p.Run(1, now); err != nil {
			return err
		}
		now++
		if p.Finished() {
			done++
			running = -1
		}
	}
	return nil
}
