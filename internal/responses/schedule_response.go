package responses

type SegmentResponse struct {
	ProcessId string `json:"process_id"`
	Start     int    `json:"start"`
	End       int    `json:"end"`
}

type ProcessResponse struct {
	ProcessId      string `json:"process_id"`
	ArrivalTime    int    `json:"arrival_time"`
	BurstTime      int    `json:"burst_time"`
	Priority       int    `json:"priority"`
	StartTime      int    `json:"start_time"`
	FinishTime     int    `json:"finish_time"`
	ResponseTime   int    `json:"response_time"`
	TurnAroundTime int    `json:"turn_around_time"`
	WaitingTime    int    `json:"waiting_time"`
}

type EventResponse struct {
	Time      int    `json:"time"`
	Kind      string `json:"kind"`
	ProcessId string `json:"process_id"`
}

type ScheduleResponse struct {
	RunId                 string            `json:"run_id,omitempty"`
	Algorithm             string            `json:"algorithm"`
	TimeQuantum           int               `json:"time_quantum,omitempty"`
	TotalTime             int               `json:"total_time"`
	BusyTime              int               `json:"busy_time"`
	IdleTime              int               `json:"idle_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	Timeline              []SegmentResponse `json:"timeline"`
	Details               []ProcessResponse `json:"details"`
	Events                []EventResponse   `json:"events,omitempty"`
}

type CompareResponse struct {
	Results []ScheduleResponse `json:"results"`
}

type RunSummary struct {
	RunId              string  `json:"run_id"`
	Algorithm          string  `json:"algorithm"`
	TimeQuantum        int     `json:"time_quantum,omitempty"`
	ProcessCount       int     `json:"process_count"`
	TotalTime          int     `json:"total_time"`
	AverageWaitingTime float64 `json:"average_waiting_time"`
	CreatedAt          string  `json:"created_at"`
}

type RunListResponse struct {
	Runs  []RunSummary `json:"runs"`
	Total int          `json:"total"`
}
