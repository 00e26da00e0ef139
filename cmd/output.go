package cmd

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/disk-sim/disk-sim/sim"
)

// resultColumns is the header of the results CSV.
var resultColumns = append([]string{"scheduler", "seed", "total_movement"}, sim.MetricNames...)

// WriteResultsCSV writes one row per run, creating the parent directory if needed.
func WriteResultsCSV(path string, results []RunResult) (err error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating results directory: %w", err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating results file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing results file: %w", cerr)
		}
	}()

	writer := csv.NewWriter(file)
	if err := writer.Write(resultColumns); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, r := range results {
		row := []string{r.Scheduler, strconv.FormatInt(r.Seed, 10), strconv.Itoa(r.TotalMovement)}
		m := r.Metrics.Map()
		for _, name := range sim.MetricNames {
			row = append(row, strconv.FormatFloat(m[name], 'f', 6, 64))
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing result row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flushing results file: %w", err)
	}
	return nil
}

// SchedulerAverage is the per-scheduler mean over all seeds of a sweep.
type SchedulerAverage struct {
	Scheduler     string
	Runs          int
	TotalMovement float64
	Metrics       sim.Summary
}

// Aggregate averages results per scheduler, in first-seen order.
func Aggregate(results []RunResult) []SchedulerAverage {
	var order []string
	groups := make(map[string][]RunResult)
	for _, r := range results {
		if _, ok := groups[r.Scheduler]; !ok {
			order = append(order, r.Scheduler)
		}
		groups[r.Scheduler] = append(groups[r.Scheduler], r)
	}

	out := make([]SchedulerAverage, 0, len(order))
	for _, name := range order {
		rs := groups[name]
		movement := make([]int, len(rs))
		cols := make(map[string][]float64)
		for i, r := range rs {
			movement[i] = r.TotalMovement
			for k, v := range r.Metrics.Map() {
				cols[k] = append(cols[k], v)
			}
		}
		out = append(out, SchedulerAverage{
			Scheduler:     name,
			Runs:          len(rs),
			TotalMovement: sim.CalculateMean(movement),
			Metrics: sim.Summary{
				AvgWait:          sim.CalculateMean(cols[sim.MetricAvgWait]),
				P95Wait:          sim.CalculateMean(cols[sim.MetricP95Wait]),
				AvgResp:          sim.CalculateMean(cols[sim.MetricAvgResp]),
				P95Resp:          sim.CalculateMean(cols[sim.MetricP95Resp]),
				DeadlineMissRate: sim.CalculateMean(cols[sim.MetricDeadlineMissRate]),
				Throughput:       sim.CalculateMean(cols[sim.MetricThroughput]),
			},
		})
	}
	return out
}

// renderAverages prints the per-scheduler comparison table.
func renderAverages(w io.Writer, avgs []SchedulerAverage) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(append([]string{"Scheduler", "Runs", "Movement"}, sim.MetricNames...))
	for _, a := range avgs {
		m := a.Metrics.Map()
		row := []string{a.Scheduler, strconv.Itoa(a.Runs), fmt.Sprintf("%.1f", a.TotalMovement)}
		for _, name := range sim.MetricNames {
			row = append(row, fmt.Sprintf("%.3f", m[name]))
		}
		table.Append(row)
	}
	table.Render()
}

// renderRun prints the metrics of a single run as a two-column table.
func renderRun(w io.Writer, r RunResult) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Metric", "Value"})
	rows := [][]string{
		{"scheduler", r.Scheduler},
		{"total_movement", strconv.Itoa(r.TotalMovement)},
		{"makespan", fmt.Sprintf("%.3f", r.Makespan)},
	}
	m := r.Metrics.Map()
	for _, name := range sim.MetricNames {
		rows = append(rows, []string{name, fmt.Sprintf("%.4f", m[name])})
	}
	if r.Trace != nil {
		rows = append(rows,
			[]string{"decisions", strconv.Itoa(r.Trace.TotalDecisions)},
			[]string{"reversals", strconv.Itoa(r.Trace.Reversals)},
			[]string{"mean_seek", fmt.Sprintf("%.3f", r.Trace.MeanSeek)},
			[]string{"max_pending", strconv.Itoa(r.Trace.MaxPending)},
			[]string{"mean_pending", fmt.Sprintf("%.3f", r.Trace.MeanPending)},
		)
	}
	table.AppendBulk(rows)
	table.Render()
}
