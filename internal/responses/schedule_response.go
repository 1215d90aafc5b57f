package responses

type ProcessResponse struct {
	ProcessId      int `json:"process_id"`
	BurstTime      int `json:"burst_time"`
	Priority       int `json:"priority"`
	WaitingTime    int `json:"waiting_time"`
	TurnAroundTime int `json:"turn_around_time"`
	ResponseTime   int `json:"response_time"`
	CompletionTime int `json:"completion_time"`
}

// TimeSlice is one contiguous run of a process on the cpu, [Start, End).
type TimeSlice struct {
	ProcessId int `json:"process_id"`
	Start     int `json:"start"`
	End       int `json:"end"`
}

type ScheduleResponse struct {
	RunId                 string            `json:"run_id"`
	Algorithm             string            `json:"algorithm"`
	TotalTime             int               `json:"total_time"`
	IdleTime              int               `json:"idle_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	WaitingTimeStdDev     float64           `json:"waiting_time_std_dev"`
	TurnAroundTimeStdDev  float64           `json:"turn_around_time_std_dev"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	ContextSwitches       int               `json:"context_switches"`
	Timeline              []TimeSlice       `json:"timeline"`
	Details               []ProcessResponse `json:"details"`
}

type CompareResponse struct {
	Results []ScheduleResponse `json:"results"`
}
