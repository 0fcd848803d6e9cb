package requests

import (
	"fmt"
	"strings"

	"cpusched/internal/core"
)

type Job struct {
	ProcessId   string `json:"process_id" yaml:"process_id"`
	ArrivalTime int    `json:"arrival_time" yaml:"arrival_time"`
	BurstTime   int    `json:"burst_time" yaml:"burst_time"`
	Priority    int    `json:"priority" yaml:"priority"`
}

type ScheduleRequests struct {
	Jobs        []Job `json:"jobs" yaml:"jobs"`
	TimeQuantum *int  `json:"time_quantum,omitempty" yaml:"time_quantum,omitempty"`
	Explain     bool  `json:"explain,omitempty" yaml:"explain,omitempty"`
}

// Quantum returns the requested time quantum, or fallback when none was given.
func (r *ScheduleRequests) Quantum(fallback int) int {
	if r.TimeQuantum != nil {
		return *r.TimeQuantum
	}
	return fallback
}

// Processes validates the jobs and converts them to process records in
// submission order. Jobs without an id are named P1..Pn by position.
func (r *ScheduleRequests) Processes() ([]core.ProcessRecord, error) {
	records := make([]core.ProcessRecord, 0, len(r.Jobs))
	seen := make(map[string]int, len(r.Jobs))

	for i, job := range r.Jobs {
		id := strings.TrimSpace(job.ProcessId)
		if id == "" {
			id = fmt.Sprintf("P%d", i+1)
		}
		if first, ok := seen[id]; ok {
			return nil, &core.ValidationError{Index: i, ProcessID: id, Field: "process_id",
				Reason: fmt.Sprintf("duplicates job %d", first)}
		}
		seen[id] = i

		if job.ArrivalTime < 0 {
			return nil, &core.ValidationError{Index: i, ProcessID: id, Field: "arrival_time", Reason: "must be >= 0"}
		}
		if job.BurstTime <= 0 {
			return nil, &core.ValidationError{Index: i, ProcessID: id, Field: "burst_time", Reason: "must be > 0"}
		}
		if job.Priority < 0 {
			return nil, &core.ValidationError{Index: i, ProcessID: id, Field: "priority", Reason: "must be >= 0"}
		}

		records = append(records, core.NewProcessRecord(id, job.ArrivalTime, job.BurstTime, job.Priority))
	}
	if err := core.CheckHorizon(records); err != nil {
		return nil, err
	}
	return records, nil
}
