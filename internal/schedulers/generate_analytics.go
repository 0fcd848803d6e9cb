package schedulers

import (
	"cpusched/internal/core"
	"cpusched/internal/responses"
	"cpusched/internal/util"
)

// Metrics aggregates a finished run.
type Metrics struct {
	AverageTurnaroundTime float64
	AverageWaitingTime    float64
	AverageResponseTime   float64
	Makespan              int
	BusyTime              int
	IdleTime              int
	Throughput            float64 // completed processes per tick of makespan
	CpuUtilization        float64 // busy ticks over makespan
}

// CalculateMetrics derives aggregate statistics from finalized records and
// their timeline. It has no side effects.
func CalculateMetrics(records []core.ProcessRecord, timeline core.Timeline) Metrics {
	var m Metrics
	m.AverageWaitingTime, m.AverageResponseTime, m.AverageTurnaroundTime = util.CalculateAverage(records)

	for _, seg := range timeline {
		if seg.End > m.Makespan {
			m.Makespan = seg.End
		}
		m.BusyTime += seg.Duration()
	}
	m.IdleTime = m.Makespan - m.BusyTime

	if m.Makespan > 0 {
		m.Throughput = float64(len(records)) / float64(m.Makespan)
		m.CpuUtilization = float64(m.BusyTime) / float64(m.Makespan)
	}
	return m
}

// GenerateResponse builds the JSON result bundle for one run. Events are only
// included when explain is set.
func GenerateResponse(policy Policy, quantum int, timeline core.Timeline, records []core.ProcessRecord, explain bool) responses.ScheduleResponse {
	metrics := CalculateMetrics(records, timeline)

	response := responses.ScheduleResponse{
		Algorithm:             policy.String(),
		TotalTime:             metrics.Makespan,
		BusyTime:              metrics.BusyTime,
		IdleTime:              metrics.IdleTime,
		AverageWaitingTime:    metrics.AverageWaitingTime,
		AverageResponseTime:   metrics.AverageResponseTime,
		AverageTurnAroundTime: metrics.AverageTurnaroundTime,
		CpuUtilization:        metrics.CpuUtilization,
		CpuThroughput:         metrics.Throughput,
		Timeline:              make([]responses.SegmentResponse, 0, len(timeline)),
		Details:               make([]responses.ProcessResponse, 0, len(records)),
	}
	if policy == RoundRobin {
		response.TimeQuantum = quantum
	}

	for _, seg := range timeline {
		response.Timeline = append(response.Timeline, responses.SegmentResponse{
			ProcessId: seg.ProcessID,
			Start:     seg.Start,
			End:       seg.End,
		})
	}
	for _, p := range records {
		response.Details = append(response.Details, generateProcessDetails(p))
	}
	if explain {
		for _, e := range BuildTrace(records, timeline) {
			response.Events = append(response.Events, responses.EventResponse{
				Time:      e.Time,
				Kind:      e.Kind.String(),
				ProcessId: e.ProcessID,
			})
		}
	}
	return response
}

func generateProcessDetails(p core.ProcessRecord) responses.ProcessResponse {
	return responses.ProcessResponse{
		ProcessId:      p.ID,
		ArrivalTime:    p.ArrivalTime,
		BurstTime:      p.BurstTime,
		Priority:       p.Priority,
		StartTime:      p.StartTime,
		FinishTime:     p.FinishTime,
		ResponseTime:   p.ResponseTime,
		TurnAroundTime: p.TurnaroundTime,
		WaitingTime:    p.WaitingTime,
	}
}
