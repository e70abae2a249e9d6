package schedulers

import "cpusched/internal/core"

// ShortestJobFirst schedules non-preemptively by smallest burst time among
// the jobs that have arrived. A shorter job arriving mid-execution does
// not interrupt the running one, so long jobs can starve behind a stream
// of short arrivals; that is a property of the algorithm, not a bug.
func ShortestJobFirst(jobs []core.Job) core.Report {
	return runNonPreemptive(jobs, func(j core.Job) int { return j.Burst })
}
