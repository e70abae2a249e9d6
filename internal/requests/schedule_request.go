package requests

type Job struct {
	ProcessId   int    `json:"process_id"`
	Name        string `json:"name"`
	ArrivalTime int    `json:"arrival_time"`
	BurstTime   int    `json:"burst_time"`
	Priority    int    `json:"priority"`
}

type ScheduleRequest struct {
	Jobs []Job `json:"jobs"`
	// TimeQuantum only applies to round-robin; zero means the configured default.
	TimeQuantum int `json:"time_quantum"`
}
