package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"cpusched/internal/core"
	"cpusched/internal/procs"
)

// Report writes a titled Gantt strip and per-job metrics table for one
// scheduling run.
func Report(w io.Writer, title string, rep core.Report) {
	outputTitle(w, title)
	outputGantt(w, rep.Gantt)
	outputSchedule(w, rep)
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

func outputGantt(w io.Writer, gantt []core.Segment) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for _, seg := range gantt {
		pid := fmt.Sprint(seg.Pid)
		padding := strings.Repeat(" ", (8-len(pid))/2)
		_, _ = fmt.Fprint(w, padding, pid, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i, seg := range gantt {
		_, _ = fmt.Fprint(w, fmt.Sprint(seg.Start), "\t")
		if i == len(gantt)-1 {
			_, _ = fmt.Fprint(w, fmt.Sprint(seg.End))
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

func outputSchedule(w io.Writer, rep core.Report) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "Name", "Priority", "Burst", "Arrival", "Start", "Wait", "Turnaround", "Exit"})
	rows := make([][]string, 0, len(rep.Results))
	for _, r := range rep.Results {
		rows = append(rows, []string{
			fmt.Sprint(r.Pid),
			r.Name,
			fmt.Sprint(r.Priority),
			fmt.Sprint(r.Burst),
			fmt.Sprint(r.Arrival),
			fmt.Sprint(r.Start),
			fmt.Sprint(r.Waiting),
			fmt.Sprint(r.Turnaround),
			fmt.Sprint(r.Completion),
		})
	}
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "", "", "",
		fmt.Sprintf("Average\n%.2f", rep.AverageWaiting),
		fmt.Sprintf("Average\n%.2f", rep.AverageTurnaround),
		""})
	table.Render()
	_, _ = fmt.Fprintln(w)
}

// Snapshot writes the raw process records feeding the simulation.
func Snapshot(w io.Writer, records []procs.Record) {
	_, _ = fmt.Fprintln(w, "Process snapshot")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "Command", "Elapsed", "PRI", "NI", "%CPU"})
	for _, r := range records {
		table.Append([]string{
			fmt.Sprint(r.Pid),
			r.Command,
			fmt.Sprint(r.Elapsed),
			fmt.Sprint(r.Priority),
			fmt.Sprint(r.Nice),
			fmt.Sprintf("%.1f", r.CpuPercent),
		})
	}
	table.Render()
	_, _ = fmt.Fprintln(w)
}

// SummaryRow is one line of the closing comparison across algorithms.
type SummaryRow struct {
	Algorithm         string
	AverageWaiting    float64
	AverageTurnaround float64
}

// Summary writes the average waiting/turnaround comparison table.
func Summary(w io.Writer, rows []SummaryRow) {
	_, _ = fmt.Fprintln(w, "Summary comparison")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Avg Waiting", "Avg Turnaround"})
	for _, r := range rows {
		table.Append([]string{
			r.Algorithm,
			fmt.Sprintf("%.2f", r.AverageWaiting),
			fmt.Sprintf("%.2f", r.AverageTurnaround),
		})
	}
	table.Render()
}
