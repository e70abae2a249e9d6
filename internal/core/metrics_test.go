package core

import (
	"math"
	"testing"
)

func TestBuildReport_EmptyInput(t *testing.T) {
	rep := BuildReport(nil, nil)

	if len(rep.Results) != 0 {
		t.Errorf("expected no results, got %d", len(rep.Results))
	}
	if rep.AverageWaiting != 0 || rep.AverageTurnaround != 0 {
		t.Errorf("expected zero averages, got waiting=%v turnaround=%v",
			rep.AverageWaiting, rep.AverageTurnaround)
	}
}

func TestBuildReport_PerJobMetrics(t *testing.T) {
	jobA, _ := NewJob(1, "procA", 0, 5, 0)
	jobB, _ := NewJob(2, "procB", 2, 3, 0)

	rep := BuildReport([]Execution{
		{Job: jobA, Start: 0, Completion: 5},
		{Job: jobB, Start: 5, Completion: 8},
	}, []Segment{{Pid: 1, Start: 0, End: 5}, {Pid: 2, Start: 5, End: 8}})

	a, ok := rep.ResultFor(1)
	if !ok {
		t.Fatal("missing result for pid 1")
	}
	if a.Waiting != 0 || a.Turnaround != 5 {
		t.Errorf("pid 1: expected waiting=0 turnaround=5, got %d/%d", a.Waiting, a.Turnaround)
	}

	b, ok := rep.ResultFor(2)
	if !ok {
		t.Fatal("missing result for pid 2")
	}
	// arrived at 2, finished at 8: turnaround 6, waiting 6-3=3
	if b.Waiting != 3 || b.Turnaround != 6 {
		t.Errorf("pid 2: expected waiting=3 turnaround=6, got %d/%d", b.Waiting, b.Turnaround)
	}
}

func TestBuildReport_AveragesAreArithmeticMeans(t *testing.T) {
	jobA, _ := NewJob(1, "procA", 0, 5, 0)
	jobB, _ := NewJob(2, "procB", 0, 3, 0)
	jobC, _ := NewJob(3, "procC", 0, 8, 0)

	rep := BuildReport([]Execution{
		{Job: jobA, Start: 0, Completion: 5},
		{Job: jobB, Start: 5, Completion: 8},
		{Job: jobC, Start: 8, Completion: 16},
	}, nil)

	var waitingSum, turnaroundSum float64
	for _, r := range rep.Results {
		waitingSum += float64(r.Waiting)
		turnaroundSum += float64(r.Turnaround)
	}
	if math.Abs(rep.AverageWaiting-waitingSum/3) > 1e-9 {
		t.Errorf("average waiting %v does not match mean %v", rep.AverageWaiting, waitingSum/3)
	}
	if math.Abs(rep.AverageTurnaround-turnaroundSum/3) > 1e-9 {
		t.Errorf("average turnaround %v does not match mean %v", rep.AverageTurnaround, turnaroundSum/3)
	}
	// the concrete FCFS scenario: waits 0,5,8
	if math.Abs(rep.AverageWaiting-13.0/3) > 1e-9 {
		t.Errorf("expected average waiting 13/3, got %v", rep.AverageWaiting)
	}
}

func TestResultFor_UnknownPid(t *testing.T) {
	rep := BuildReport(nil, nil)
	if _, ok := rep.ResultFor(42); ok {
		t.Error("expected no result for unknown pid")
	}
}
