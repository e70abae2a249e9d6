package schedulers

import "cpusched/internal/core"

// Priority schedules non-preemptively by numerically lowest priority value
// among the jobs that have arrived. Equal-priority jobs are serviced in
// arrival order, then input order, so among equals it degenerates to FCFS.
func Priority(jobs []core.Job) core.Report {
	return runNonPreemptive(jobs, func(j core.Job) int { return j.Priority })
}
