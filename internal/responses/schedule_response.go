package responses

type SegmentResponse struct {
	ProcessId int `json:"process_id"`
	Start     int `json:"start"`
	End       int `json:"end"`
}

type ProcessResponse struct {
	ProcessId      int    `json:"process_id"`
	Name           string `json:"name"`
	ArrivalTime    int    `json:"arrival_time"`
	BurstTime      int    `json:"burst_time"`
	Priority       int    `json:"priority"`
	StartTime      int    `json:"start_time"`
	CompletionTime int    `json:"completion_time"`
	WaitingTime    int    `json:"waiting_time"`
	TurnAroundTime int    `json:"turn_around_time"`
}

type ScheduleResponse struct {
	Algorithm             string            `json:"algorithm"`
	Gantt                 []SegmentResponse `json:"gantt"`
	Details               []ProcessResponse `json:"details"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
}

type SnapshotProcessResponse struct {
	Pid        int     `json:"pid"`
	Command    string  `json:"command"`
	Elapsed    int     `json:"elapsed"`
	Priority   int     `json:"priority"`
	Nice       int     `json:"nice"`
	CpuPercent float64 `json:"cpu_percent"`
}

type SnapshotResponse struct {
	Processes []SnapshotProcessResponse `json:"processes"`
	Schedules []ScheduleResponse        `json:"schedules"`
}
