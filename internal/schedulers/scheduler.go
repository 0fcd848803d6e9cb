package schedulers

import (
	"fmt"
	"log/slog"
	"strings"

	"cpusched/internal/core"
)

// Policy selects a scheduling algorithm.
type Policy int

const (
	FirstComeFirstServe Policy = iota
	ShortestJobFirst
	ShortestRemainingTimeFirst
	RoundRobin
	PriorityNonPreemptive
	PriorityPreemptive
)

// Policies lists every supported policy in presentation order.
var Policies = []Policy{
	FirstComeFirstServe,
	ShortestJobFirst,
	ShortestRemainingTimeFirst,
	RoundRobin,
	PriorityNonPreemptive,
	PriorityPreemptive,
}

var policyNames = map[Policy]string{
	FirstComeFirstServe:        "fcfs",
	ShortestJobFirst:           "sjf",
	ShortestRemainingTimeFirst: "srtf",
	RoundRobin:                 "rr",
	PriorityNonPreemptive:      "priority",
	PriorityPreemptive:         "priority-preemptive",
}

var policyTitles = map[Policy]string{
	FirstComeFirstServe:        "First Come First Serve",
	ShortestJobFirst:           "Shortest Job First (Non-preemptive)",
	ShortestRemainingTimeFirst: "Shortest Job First (Preemptive)",
	RoundRobin:                 "Round Robin",
	PriorityNonPreemptive:      "Priority (Non-preemptive)",
	PriorityPreemptive:         "Priority (Preemptive)",
}

var policyAliases = map[string]Policy{
	"sjf-preemptive": ShortestRemainingTimeFirst,
	"round-robin":    RoundRobin,
	"priority-np":    PriorityNonPreemptive,
	"pp":             PriorityPreemptive,
}

func (p Policy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("policy(%d)", int(p))
}

// Title is the human readable policy name.
func (p Policy) Title() string {
	if title, ok := policyTitles[p]; ok {
		return title
	}
	return p.String()
}

// ParsePolicy maps a policy name or alias to its Policy.
func ParsePolicy(name string) (Policy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for p, n := range policyNames {
		if n == name {
			return p, nil
		}
	}
	if p, ok := policyAliases[name]; ok {
		return p, nil
	}
	return 0, fmt.Errorf("%w: %q", core.ErrUnsupportedPolicy, name)
}

// Scheduler runs one policy over working copies of the input processes,
// which are passed in input order.
type Scheduler interface {
	Schedule(procs []*core.ProcessRecord, timeline *core.TimelineBuilder) error
}

func schedulerFor(policy Policy, quantum int, logger *slog.Logger) (Scheduler, error) {
	logger = logger.With("policy", policy.String())
	switch policy {
	case FirstComeFirstServe:
		return &firstComeFirstServe{logger: logger}, nil
	case ShortestJobFirst:
		return newShortestJobFirst(logger), nil
	case ShortestRemainingTimeFirst:
		return newShortestRemainingTimeFirst(logger), nil
	case RoundRobin:
		if quantum <= 0 {
			return nil, fmt.Errorf("%w: round robin time quantum must be > 0, got %d", core.ErrInvalidConfiguration, quantum)
		}
		return &roundRobin{quantum: quantum, logger: logger}, nil
	case PriorityNonPreemptive:
		return newPriorityNonPreemptive(logger), nil
	case PriorityPreemptive:
		return newPriorityPreemptive(logger), nil
	}
	return nil, fmt.Errorf("%w: %s", core.ErrUnsupportedPolicy, policy)
}

// Simulator runs scheduling policies over snapshots of the caller's processes.
type Simulator struct {
	logger *slog.Logger
}

func NewSimulator(logger *slog.Logger) *Simulator {
	return &Simulator{logger: logger.With("component", "scheduler")}
}

// Run simulates policy over processes and returns the timeline and a new,
// finalized slice of records in input order. processes is never modified.
// quantum is only used by RoundRobin. Inputs whose run would pass
// core.MaxTick are rejected with a ValidationError.
func (s *Simulator) Run(processes []core.ProcessRecord, policy Policy, quantum int) (core.Timeline, []core.ProcessRecord, error) {
	sched, err := schedulerFor(policy, quantum, s.logger)
	if err != nil {
		return nil, nil, err
	}
	if err := core.CheckHorizon(processes); err != nil {
		return nil, nil, err
	}
	return s.run(sched, policy, processes)
}

func (s *Simulator) run(sched Scheduler, policy Policy, processes []core.ProcessRecord) (core.Timeline, []core.ProcessRecord, error) {
	working := make([]core.ProcessRecord, len(processes))
	copy(working, processes)
	procs := make([]*core.ProcessRecord, len(working))
	for i := range working {
		working[i].Reset()
		procs[i] = &working[i]
	}

	builder := core.NewTimelineBuilder()
	if err := sched.Schedule(procs, builder); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", policy, err)
	}

	timeline := builder.Timeline()
	if err := verify(working, timeline); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", policy, err)
	}

	s.logger.Info("simulation completed",
		"policy", policy.String(),
		"processes", len(working),
		"segments", len(timeline),
		"makespan", timeline.Makespan(),
	)
	return timeline, working, nil
}

// verify checks the finished run against the timeline it produced.
func verify(records []core.ProcessRecord, timeline core.Timeline) error {
	ran := make(map[string]int, len(records))
	lastEnd := make(map[string]int, len(records))
	for _, seg := range timeline {
		ran[seg.ProcessID] += seg.Duration()
		lastEnd[seg.ProcessID] = seg.End
	}

	for _, p := range records {
		if !p.Finished() {
			return fmt.Errorf("%w: %s has %d ticks remaining", core.ErrInvariantViolation, p.ID, p.RemainingTime)
		}
		if ran[p.ID] != p.BurstTime {
			return fmt.Errorf("%w: %s ran %d ticks, burst is %d", core.ErrInvariantViolation, p.ID, ran[p.ID], p.BurstTime)
		}
		if lastEnd[p.ID] != p.FinishTime {
			return fmt.Errorf("%w: %s finished at %d but its last segment ends at %d",
				core.ErrInvariantViolation, p.ID, p.FinishTime, lastEnd[p.ID])
		}
		if p.TurnaroundTime < p.BurstTime {
			return fmt.Errorf("%w: %s turnaround %d is below burst %d", core.ErrInvariantViolation, p.ID, p.TurnaroundTime, p.BurstTime)
		}
	}
	return nil
}
