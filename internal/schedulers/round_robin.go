package schedulers

import (
	"sort"

	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"cpusched/internal/core"
)

// DefaultTimeQuantum is the slice length round-robin falls back to when
// the caller passes a non-positive quantum.
const DefaultTimeQuantum = 3

// RoundRobin shares the processor in fixed quanta over a FIFO ready
// queue. The head job runs for min(quantum, remaining); jobs that arrived
// during the slice are admitted to the queue before the preempted job is
// returned to the tail. A job's start time is that of its first slice, and
// its slice lengths always sum to exactly its burst time.
func RoundRobin(jobs []core.Job, quantum int) core.Report {
	if quantum <= 0 {
		quantum = DefaultTimeQuantum
	}

	js := core.CloneJobs(jobs)

	// admission order: by arrival time, input order among equal arrivals
	order := make([]int, len(js))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return js[order[a]].Arrival < js[order[b]].Arrival
	})

	ready := linkedlistqueue.New()
	next := 0
	admit := func(now int) {
		for next < len(order) && js[order[next]].Arrival <= now {
			ready.Enqueue(order[next])
			next++
		}
	}

	starts := make([]int, len(js))
	for i := range starts {
		starts[i] = -1
	}

	execs := make([]core.Execution, 0, len(js))
	var tl core.Timeline
	admit(tl.Now())
	for !ready.Empty() || next < len(order) {
		if ready.Empty() {
			// idle gap: jump to the next arrival, no segment recorded
			tl.AdvanceTo(js[order[next]].Arrival)
			admit(tl.Now())
		}

		v, _ := ready.Dequeue()
		i := v.(int)
		if starts[i] < 0 {
			starts[i] = tl.Now()
		}

		slice := quantum
		if js[i].Remaining < slice {
			slice = js[i].Remaining
		}
		seg := tl.Run(js[i].Pid, slice)
		js[i].Remaining -= slice

		// new arrivals enter ahead of the preempted job
		admit(tl.Now())
		if js[i].Remaining > 0 {
			ready.Enqueue(i)
		} else {
			execs = append(execs, core.Execution{Job: js[i], Start: starts[i], Completion: seg.End})
		}
	}
	return core.BuildReport(execs, tl.Segments())
}
