package schedulers

import (
	"sort"

	"cpusched/internal/core"
)

// FirstComeFirstServe schedules jobs in arrival order, each running to
// completion uninterrupted. The sort is stable so jobs with equal arrival
// times keep their input order, which makes the timeline deterministic.
func FirstComeFirstServe(jobs []core.Job) core.Report {
	js := core.CloneJobs(jobs)
	sort.SliceStable(js, func(i, j int) bool {
		return js[i].Arrival < js[j].Arrival
	})

	execs := make([]core.Execution, 0, len(js))
	var tl core.Timeline
	for _, j := range js {
		tl.AdvanceTo(j.Arrival)
		seg := tl.Run(j.Pid, j.Burst)
		execs = append(execs, core.Execution{Job: j, Start: seg.Start, Completion: seg.End})
	}
	return core.BuildReport(execs, tl.Segments())
}
