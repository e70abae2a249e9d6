package core

// Execution records when one job first started running and when it
// completed. Schedulers produce one Execution per job.
type Execution struct {
	Job        Job
	Start      int
	Completion int
}

// Result is the computed scheduling outcome for one job.
type Result struct {
	Pid        int
	Name       string
	Arrival    int
	Burst      int
	Priority   int
	Start      int
	Completion int
	Waiting    int
	Turnaround int
}

// Report is the outcome of one algorithm invocation: the execution
// timeline, per-job results in completion order, and the two averages.
// A Report is read-only once built.
type Report struct {
	Gantt             []Segment
	Results           []Result
	AverageWaiting    float64
	AverageTurnaround float64
}

// ResultFor looks up the result for a pid.
func (r Report) ResultFor(pid int) (Result, bool) {
	for _, res := range r.Results {
		if res.Pid == pid {
			return res, true
		}
	}
	return Result{}, false
}

// BuildReport derives waiting and turnaround times from the completed
// executions and averages them. An empty job set is a valid zero report,
// not an error: both averages are 0 and no division takes place.
func BuildReport(execs []Execution, gantt []Segment) Report {
	rep := Report{Gantt: gantt}
	if len(execs) == 0 {
		return rep
	}

	var waitingSum, turnaroundSum float64
	rep.Results = make([]Result, 0, len(execs))
	for _, e := range execs {
		turnaround := e.Completion - e.Job.Arrival
		waiting := turnaround - e.Job.Burst
		waitingSum += float64(waiting)
		turnaroundSum += float64(turnaround)

		rep.Results = append(rep.Results, Result{
			Pid:        e.Job.Pid,
			Name:       e.Job.Name,
			Arrival:    e.Job.Arrival,
			Burst:      e.Job.Burst,
			Priority:   e.Job.Priority,
			Start:      e.Start,
			Completion: e.Completion,
			Waiting:    waiting,
			Turnaround: turnaround,
		})
	}

	count := float64(len(execs))
	rep.AverageWaiting = waitingSum / count
	rep.AverageTurnaround = turnaroundSum / count
	return rep
}
