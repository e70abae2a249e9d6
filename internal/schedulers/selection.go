package schedulers

import "cpusched/internal/core"

// pickNext returns the index of the best candidate among jobs that have
// arrived by now and have not run yet, or -1 when none is ready. key is
// the scheduling criterion (burst time for SJF, priority value for
// priority scheduling); ties fall to the earliest arrival, then to input
// order.
func pickNext(jobs []core.Job, done []bool, now int, key func(core.Job) int) int {
	best := -1
	for i, j := range jobs {
		if done[i] || j.Arrival > now {
			continue
		}
		if best == -1 {
			best = i
			continue
		}
		switch b := jobs[best]; {
		case key(j) < key(b):
			best = i
		case key(j) == key(b) && j.Arrival < b.Arrival:
			best = i
		}
		// equal key and arrival: the earlier input index stays selected
	}
	return best
}

// nextArrival returns the earliest arrival time among jobs that have not
// run yet. Callers only invoke it when at least one such job exists.
func nextArrival(jobs []core.Job, done []bool) int {
	next := -1
	for i, j := range jobs {
		if done[i] {
			continue
		}
		if next == -1 || j.Arrival < next {
			next = j.Arrival
		}
	}
	return next
}

// runNonPreemptive drives the shared SJF/priority loop: at every decision
// point select a ready job by key and run it to completion uninterrupted.
// When nothing has arrived the clock jumps straight to the next arrival;
// the idle gap produces no segment.
func runNonPreemptive(jobs []core.Job, key func(core.Job) int) core.Report {
	js := core.CloneJobs(jobs)
	done := make([]bool, len(js))
	execs := make([]core.Execution, 0, len(js))

	var tl core.Timeline
	for completed := 0; completed < len(js); completed++ {
		i := pickNext(js, done, tl.Now(), key)
		if i < 0 {
			tl.AdvanceTo(nextArrival(js, done))
			i = pickNext(js, done, tl.Now(), key)
		}
		seg := tl.Run(js[i].Pid, js[i].Burst)
		done[i] = true
		execs = append(execs, core.Execution{Job: js[i], Start: seg.Start, Completion: seg.End})
	}
	return core.BuildReport(execs, tl.Segments())
}
