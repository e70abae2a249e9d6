package core

import (
	"errors"
	"fmt"
)

// ErrInvalidJob is returned when a job record fails validation at
// construction time. Algorithms never see an invalid job.
var ErrInvalidJob = errors.New("invalid job")

// Job is one schedulable process. Jobs are constructed once through NewJob
// and never mutated afterwards, with one exception: round-robin decrements
// Remaining on its own private copy while slicing.
type Job struct {
	Pid       int
	Name      string
	Arrival   int // time the job enters the ready queue, default 0
	Burst     int // total cpu time the job requires
	Priority  int // lower value = higher priority
	Remaining int // cpu time left to run, starts equal to Burst
}

// NewJob validates a raw job record. Burst time must be positive and
// arrival time non-negative; a zero burst is rejected, never coerced.
func NewJob(pid int, name string, arrival, burst, priority int) (Job, error) {
	if burst <= 0 {
		return Job{}, fmt.Errorf("%w: pid %d: burst time must be positive, got %d", ErrInvalidJob, pid, burst)
	}
	if arrival < 0 {
		return Job{}, fmt.Errorf("%w: pid %d: arrival time must not be negative, got %d", ErrInvalidJob, pid, arrival)
	}
	return Job{
		Pid:       pid,
		Name:      name,
		Arrival:   arrival,
		Burst:     burst,
		Priority:  priority,
		Remaining: burst,
	}, nil
}

// CloneJobs gives an algorithm its own working copy of the input, with
// every Remaining counter reset. Runs over the same caller-held slice can
// therefore never observe state left behind by a previous invocation.
func CloneJobs(jobs []Job) []Job {
	out := make([]Job, len(jobs))
	for i, j := range jobs {
		j.Remaining = j.Burst
		out[i] = j
	}
	return out
}
