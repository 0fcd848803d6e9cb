package core

import "fmt"

// Unset marks StartTime before the first dispatch.
const Unset = -1

// ProcessRecord is one process: its input fields plus the simulation state a
// scheduler fills in while running it.
type ProcessRecord struct {
	ID          string
	ArrivalTime int
	BurstTime   int
	Priority    int

	RemainingTime int
	StartTime     int
	FinishTime    int

	TurnaroundTime int
	WaitingTime    int
	ResponseTime   int
}

// NewProcessRecord builds a record ready to be scheduled.
func NewProcessRecord(id string, arrival, burst, priority int) ProcessRecord {
	return ProcessRecord{
		ID:            id,
		ArrivalTime:   arrival,
		BurstTime:     burst,
		Priority:      priority,
		RemainingTime: burst,
		StartTime:     Unset,
	}
}

// Reset clears simulation state so the record can be scheduled again.
func (p *ProcessRecord) Reset() {
	p.RemainingTime = p.BurstTime
	p.StartTime = Unset
	p.FinishTime = 0
	p.TurnaroundTime = 0
	p.WaitingTime = 0
	p.ResponseTime = 0
}

// Started reports whether the process has been dispatched at least once.
func (p *ProcessRecord) Started() bool {
	return p.StartTime != Unset
}

// Finished reports whether the process has run for its whole burst.
func (p *ProcessRecord) Finished() bool {
	return p.RemainingTime == 0
}

// Dispatch records the first dispatch time. Later calls are no-ops.
func (p *ProcessRecord) Dispatch(now int) {
	if !p.Started() {
		p.StartTime = now
	}
}

// Run consumes ticks of CPU time and finalizes the record once nothing remains.
func (p *ProcessRecord) Run(ticks, now int) error {
	if ticks <= 0 || ticks > p.RemainingTime {
		return fmt.Errorf("%w: %s runs %d ticks with %d remaining", ErrInvariantViolation, p.ID, ticks, p.RemainingTime)
	}
	p.RemainingTime -= ticks
	if p.RemainingTime == 0 {
		p.finalize(now + ticks)
	}
	return nil
}

func (p *ProcessRecord) finalize(finish int) {
	p.FinishTime = finish
	p.TurnaroundTime = p.FinishTime - p.ArrivalTime
	p.WaitingTime = p.TurnaroundTime - p.BurstTime
	p.ResponseTime = p.StartTime - p.ArrivalTime
}
