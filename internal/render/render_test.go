package render

import (
	"bytes"
	"strings"
	"testing"

	"cpusched/internal/core"
	"cpusched/internal/procs"
	"cpusched/internal/schedulers"
)

func sampleReport(t *testing.T) core.Report {
	t.Helper()
	a, _ := core.NewJob(1, "procA", 0, 5, 2)
	b, _ := core.NewJob(2, "procB", 0, 3, 1)
	c, _ := core.NewJob(3, "procC", 0, 8, 3)
	return schedulers.FirstComeFirstServe([]core.Job{a, b, c})
}

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	Report(&buf, "First-come, first-serve", sampleReport(t))

	out := buf.String()
	for _, want := range []string{
		"First-come, first-serve",
		"Gantt schedule",
		"Schedule table",
		"procA", "procB", "procC",
		"4.33", // average waiting 13/3
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSnapshot(t *testing.T) {
	var buf bytes.Buffer
	Snapshot(&buf, procs.SampleRecords())

	out := buf.String()
	if !strings.Contains(out, "Process snapshot") {
		t.Error("output missing snapshot heading")
	}
	for _, name := range []string{"procA", "procB", "procC", "procD", "procE"} {
		if !strings.Contains(out, name) {
			t.Errorf("output missing process %s", name)
		}
	}
}

func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	Summary(&buf, []SummaryRow{
		{Algorithm: "FCFS", AverageWaiting: 4.33, AverageTurnaround: 9.67},
		{Algorithm: "SJF", AverageWaiting: 3.67, AverageTurnaround: 9.0},
	})

	out := buf.String()
	for _, want := range []string{"FCFS", "SJF", "4.33", "3.67"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
