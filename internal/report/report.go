// Package report renders schedule results for a terminal.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"cpu-scheduler-simulator/internal/responses"

	"github.com/olekukonko/tablewriter"
)

// Render writes a title, a gantt line and the per-process table with the
// averages in its footer.
func Render(w io.Writer, title string, response responses.ScheduleResponse) {
	outputTitle(w, title)
	outputGantt(w, response.Timeline)
	outputSchedule(w, response)
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)+4))
	_, _ = fmt.Fprintln(w, " ", title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)+4))
}

// outputGantt draws one box per slice with each start time printed under the
// box's left border and the final end time under the last border.
func outputGantt(w io.Writer, timeline []responses.TimeSlice) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	if len(timeline) == 0 {
		_, _ = fmt.Fprintf(w, "(idle)\n\n")
		return
	}

	width := 8
	for _, slice := range timeline {
		width = max(width, len(strconv.Itoa(slice.ProcessId))+2, len(strconv.Itoa(slice.Start))+1)
	}

	var boxes, times strings.Builder
	boxes.WriteString("|")
	for _, slice := range timeline {
		pid := strconv.Itoa(slice.ProcessId)
		left := (width - len(pid)) / 2
		boxes.WriteString(strings.Repeat(" ", left) + pid + strings.Repeat(" ", width-len(pid)-left) + "|")
		_, _ = fmt.Fprintf(&times, "%-*d", width+1, slice.Start)
	}
	_, _ = fmt.Fprintf(&times, "%d", timeline[len(timeline)-1].End)

	_, _ = fmt.Fprintln(w, boxes.String())
	_, _ = fmt.Fprintf(w, "%s\n\n", times.String())
}

func outputSchedule(w io.Writer, response responses.ScheduleResponse) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	rows := make([][]string, 0, len(response.Details))
	for _, detail := range response.Details {
		rows = append(rows, []string{
			fmt.Sprint(detail.ProcessId),
			fmt.Sprint(detail.Priority),
			fmt.Sprint(detail.BurstTime),
			fmt.Sprint(detail.WaitingTime),
			fmt.Sprint(detail.TurnAroundTime),
			fmt.Sprint(detail.ResponseTime),
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Wait", "Turnaround", "Response"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "",
		fmt.Sprintf("Average\n%.2f", response.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", response.AverageTurnAroundTime),
		fmt.Sprintf("Average\n%.2f", response.AverageResponseTime)})
	table.Render()

	_, _ = fmt.Fprintf(w, "Utilization %.2f  Throughput %.2f/t  Context switches %d\n\n",
		response.CpuUtilization, response.CpuThroughput, response.ContextSwitches)
}
