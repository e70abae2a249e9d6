package procs

import (
	"fmt"
	"log"
	"os/exec"
	"strconv"
	"strings"

	"cpusched/internal/core"
)

// Record is one row of a process snapshot, straight from ps.
type Record struct {
	Pid        int
	Command    string
	Elapsed    int // elapsed time in seconds, stands in for burst time
	Priority   int
	Nice       int
	CpuPercent float64
}

// Snapshot fetches the top CPU-using processes from the host. When ps is
// unavailable or fails (non-Linux host, permissions) it falls back to a
// fixed sample set so the simulation can still run.
func Snapshot(limit int) []Record {
	records, err := liveSnapshot(limit)
	if err != nil {
		log.Println("could not fetch live processes, using sample data:", err)
		return SampleRecords()
	}
	return records
}

func liveSnapshot(limit int) ([]Record, error) {
	out, err := exec.Command("ps", "-eo", "pid,comm,etimes,pri,ni,pcpu", "--sort=-pcpu").Output()
	if err != nil {
		return nil, fmt.Errorf("running ps: %w", err)
	}
	return parseSnapshot(string(out), limit)
}

// parseSnapshot reads ps output: a header line, then one process per line
// with six whitespace-separated columns. Malformed lines are skipped.
func parseSnapshot(raw string, limit int) ([]Record, error) {
	lines := strings.Split(strings.TrimSpace(raw), "\n")
	if len(lines) < 2 {
		return nil, fmt.Errorf("no processes in ps output")
	}

	records := make([]Record, 0, limit)
	for _, line := range lines[1:] {
		if len(records) == limit {
			break
		}
		fields := strings.Fields(line)
		if len(fields) < 6 {
			continue
		}
		pid, err1 := strconv.Atoi(fields[0])
		elapsed, err2 := strconv.Atoi(fields[2])
		priority, err3 := strconv.Atoi(fields[3])
		nice, err4 := strconv.Atoi(fields[4])
		pcpu, err5 := strconv.ParseFloat(fields[5], 64)
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil || err5 != nil {
			continue
		}
		records = append(records, Record{
			Pid:        pid,
			Command:    fields[1],
			Elapsed:    elapsed,
			Priority:   priority,
			Nice:       nice,
			CpuPercent: pcpu,
		})
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no parsable processes in ps output")
	}
	return records, nil
}

// SampleRecords is the static fallback dataset.
func SampleRecords() []Record {
	return []Record{
		{Pid: 1, Command: "procA", Elapsed: 5, Priority: 20, Nice: 0, CpuPercent: 1.2},
		{Pid: 2, Command: "procB", Elapsed: 3, Priority: 18, Nice: 0, CpuPercent: 0.9},
		{Pid: 3, Command: "procC", Elapsed: 8, Priority: 22, Nice: 0, CpuPercent: 2.3},
		{Pid: 4, Command: "procD", Elapsed: 6, Priority: 19, Nice: 0, CpuPercent: 0.5},
		{Pid: 5, Command: "procE", Elapsed: 2, Priority: 21, Nice: 0, CpuPercent: 1.0},
	}
}

// Jobs converts snapshot records into validated jobs. Elapsed time stands
// in for burst time, clamped to [1,20] to keep the simulation bounded;
// all jobs arrive at time 0.
func Jobs(records []Record) ([]core.Job, error) {
	jobs := make([]core.Job, 0, len(records))
	for _, r := range records {
		burst := r.Elapsed
		if burst < 1 {
			burst = 1
		}
		if burst > 20 {
			burst = 20
		}
		j, err := core.NewJob(r.Pid, r.Command, 0, burst, r.Priority)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, nil
}
