package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"

	"cpusched/internal/core"
	"cpusched/internal/schedulers"
	"cpusched/internal/store"
)

func itoa(i int) string {
	return strconv.Itoa(i)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// outputGantt prints one cell per segment with its start ticks underneath.
// Idle gaps get their own cell.
func outputGantt(w io.Writer, timeline core.Timeline) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	if len(timeline) == 0 {
		_, _ = fmt.Fprint(w, "(empty)\n\n")
		return
	}

	type cell struct {
		label string
		start int
	}
	cells := make([]cell, 0, len(timeline))
	last := 0
	for _, seg := range timeline {
		if seg.Start > last {
			cells = append(cells, cell{label: "idle", start: last})
		}
		cells = append(cells, cell{label: seg.ProcessID, start: seg.Start})
		last = seg.End
	}

	var bars, scale strings.Builder
	bars.WriteString("|")
	for _, c := range cells {
		padding := strings.Repeat(" ", max(0, (8-len(c.label))/2))
		bars.WriteString(padding + c.label + padding + "|")
		scale.WriteString(fmt.Sprintf("%-*d", len(padding)*2+len(c.label)+1, c.start))
	}
	scale.WriteString(itoa(timeline.Makespan()))

	_, _ = fmt.Fprintln(w, bars.String())
	_, _ = fmt.Fprintln(w, scale.String())
	_, _ = fmt.Fprintln(w)
}

func outputSchedule(w io.Writer, records []core.ProcessRecord, m schedulers.Metrics) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	rows := make([][]string, len(records))
	for i, p := range records {
		rows[i] = []string{
			p.ID,
			itoa(p.Priority),
			itoa(p.BurstTime),
			itoa(p.ArrivalTime),
			itoa(p.StartTime),
			itoa(p.FinishTime),
			itoa(p.ResponseTime),
			itoa(p.WaitingTime),
			itoa(p.TurnaroundTime),
		}
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Start", "Exit", "Response", "Wait", "Turnaround"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "", "",
		fmt.Sprintf("Makespan\n%d", m.Makespan),
		fmt.Sprintf("Average\n%.2f", m.AverageResponseTime),
		fmt.Sprintf("Average\n%.2f", m.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", m.AverageTurnaroundTime),
	})
	table.Render()
	_, _ = fmt.Fprintf(w, "Throughput: %.3f processes/tick  CPU utilization: %.1f%%  Idle: %d\n\n",
		m.Throughput, m.CpuUtilization*100, m.IdleTime)
}

func outputTrace(w io.Writer, events []schedulers.Event) {
	_, _ = fmt.Fprintln(w, "Step-by-step")
	current := 0
	for _, e := range events {
		if e.Time > current {
			_, _ = fmt.Fprintln(w)
			current = e.Time
		}
		var what string
		switch e.Kind {
		case schedulers.EventArrival:
			what = "arrived"
		case schedulers.EventStart:
			what = "started executing"
		case schedulers.EventEnd:
			what = "stopped executing"
		}
		_, _ = fmt.Fprintf(w, "Time %d: Process %s %s\n", e.Time, e.ProcessID, what)
	}
	_, _ = fmt.Fprintln(w)
}

func outputComparison(w io.Writer, results []schedulers.Comparison) {
	rows := make([][]string, len(results))
	for i, res := range results {
		m := res.Metrics
		rows[i] = []string{
			res.Policy.Title(),
			fmt.Sprintf("%.2f", m.AverageTurnaroundTime),
			fmt.Sprintf("%.2f", m.AverageWaitingTime),
			fmt.Sprintf("%.2f", m.AverageResponseTime),
			itoa(m.Makespan),
			fmt.Sprintf("%.3f", m.Throughput),
			fmt.Sprintf("%.1f%%", m.CpuUtilization*100),
		}
	}

	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Policy", "Avg Turnaround", "Avg Wait", "Avg Response", "Makespan", "Throughput", "Utilization"})
	table.AppendBulk(rows)
	table.Render()
}

func outputRuns(w io.Writer, runs []*store.Run, total int) {
	rows := make([][]string, len(runs))
	for i, run := range runs {
		rows[i] = []string{
			run.ID,
			run.Algorithm,
			itoa(len(run.Response.Details)),
			itoa(run.Response.TotalTime),
			fmt.Sprintf("%.2f", run.Response.AverageWaitingTime),
			run.CreatedAt.Local().Format(time.DateTime),
		}
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Run", "Algorithm", "Processes", "Makespan", "Avg Wait", "Created"})
	table.AppendBulk(rows)
	table.SetCaption(true, fmt.Sprintf("%d of %d runs", len(runs), total))
	table.Render()
}
