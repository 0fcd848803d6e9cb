package util

import "cpusched/internal/core"

// CalculateAverage averages the derived times of finalized records.
// All averages are 0 for an empty slice.
func CalculateAverage(records []core.ProcessRecord) (averageWaitingTime, averageResponseTime, averageTurnAroundTime float64) {
	if len(records) == 0 {
		return
	}

	var waitingTimeSum float64
	var responseTimeSum float64
	var turnAroundTimeSum float64

	for _, p := range records {
		waitingTimeSum += float64(p.WaitingTime)
		responseTimeSum += float64(p.ResponseTime)
		turnAroundTimeSum += float64(p.TurnaroundTime)
	}

	processCount := float64(len(records))

	averageWaitingTime = waitingTimeSum / processCount
	averageResponseTime = responseTimeSum / processCount
	averageTurnAroundTime = turnAroundTimeSum / processCount
	return
}
