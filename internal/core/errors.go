package core

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	ErrValidation           = errors.New("invalid process")
	ErrInvalidConfiguration = errors.New("invalid scheduler configuration")
	ErrUnsupportedPolicy    = errors.New("unsupported scheduling policy")
	ErrInvariantViolation   = errors.New("scheduler invariant violated")
)

// ValidationError reports the job that failed input validation.
type ValidationError struct {
	Index     int    // position in the submitted job list
	ProcessID string // may be empty when the id itself is the problem
	Field     string // "process_id", "arrival_time", "burst_time", "priority"
	Reason    string
}

func (e *ValidationError) Error() string {
	if e.ProcessID != "" {
		return fmt.Sprintf("job %d (%s): %s %s", e.Index, e.ProcessID, e.Field, e.Reason)
	}
	return fmt.Sprintf("job %d: %s %s", e.Index, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// MaxTick bounds the simulated clock. Every run finishes by
// max(arrival_time) + sum(burst_time), which must not exceed it.
const MaxTick = 1_000_000

// CheckHorizon reports the first record that would push the simulated clock
// past MaxTick.
func CheckHorizon(records []ProcessRecord) error {
	latest, total := 0, 0
	for i, p := range records {
		if p.ArrivalTime > MaxTick {
			return &ValidationError{Index: i, ProcessID: p.ID, Field: "arrival_time",
				Reason: fmt.Sprintf("must be <= %d", MaxTick)}
		}
		if p.BurstTime > MaxTick {
			return &ValidationError{Index: i, ProcessID: p.ID, Field: "burst_time",
				Reason: fmt.Sprintf("must be <= %d", MaxTick)}
		}
		latest = max(latest, p.ArrivalTime)
		total += p.BurstTime
		if latest+total > MaxTick {
			return &ValidationError{Index: i, ProcessID: p.ID, Field: "burst_time",
				Reason: fmt.Sprintf("pushes the run past tick %d", MaxTick)}
		}
	}
	return nil
}
