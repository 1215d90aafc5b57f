package requests

type Job struct {
	ProcessId   int `json:"process_id" yaml:"process_id"`
	BurstTime   int `json:"burst_time" yaml:"burst_time"`
	Priority    int `json:"priority" yaml:"priority"`
	ArrivalTime int `json:"arrival_time" yaml:"arrival_time"` // accepted, every job is ready at time 0
}

type ScheduleRequests struct {
	Jobs []Job `json:"jobs" yaml:"jobs"`
	// TimeQuantum overrides the configured round robin quantum when set.
	TimeQuantum *int `json:"time_quantum,omitempty" yaml:"time_quantum,omitempty"`
	// LevelsTimeQuantum overrides the configured mlfq levels when set.
	LevelsTimeQuantum []int `json:"levels_time_quantum,omitempty" yaml:"levels_time_quantum,omitempty"`
}
