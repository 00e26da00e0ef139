// Computes per-run summary statistics from the engine's completed log:
// wait and response distributions, deadline misses and throughput.

package sim

import "fmt"

// Metric names used by Summary.Map and by the result tables.
const (
	MetricAvgWait          = "avg_wait"
	MetricP95Wait          = "p95_wait"
	MetricAvgResp          = "avg_resp"
	MetricP95Resp          = "p95_resp"
	MetricDeadlineMissRate = "deadline_miss_rate"
	MetricThroughput       = "throughput"
)

// MetricNames lists the metric names in reporting order.
var MetricNames = []string{
	MetricAvgWait, MetricP95Wait, MetricAvgResp, MetricP95Resp, MetricDeadlineMissRate, MetricThroughput,
}

// Summary aggregates statistics about one completed log.
type Summary struct {
	AvgWait          float64 `yaml:"avg_wait"`
	P95Wait          float64 `yaml:"p95_wait"`
	AvgResp          float64 `yaml:"avg_resp"`
	P95Resp          float64 `yaml:"p95_resp"`
	DeadlineMissRate float64 `yaml:"deadline_miss_rate"`
	Throughput       float64 `yaml:"throughput"`
}

// ComputeMetrics aggregates a completed log.
//
//   - wait = max(0, start - arrival), where start is when head movement began
//   - response = finish - arrival
//   - deadline miss: deadline set and finish > deadline, over max(1, count)
//   - throughput = count / (last finish - first start) for count > 1, else 0
//
// An empty log yields a zero Summary.
func ComputeMetrics(completed []Completion) Summary {
	if len(completed) == 0 {
		return Summary{}
	}
	waits := make([]float64, 0, len(completed))
	responses := make([]float64, 0, len(completed))
	missed := 0
	for _, c := range completed {
		wait := max(0.0, c.Start-c.Request.ArrivalTime)
		waits = append(waits, wait)
		responses = append(responses, c.Finish-c.Request.ArrivalTime)
		if c.Request.Deadline != nil && c.Finish > *c.Request.Deadline {
			missed++
		}
	}

	n := len(completed)
	s := Summary{
		AvgWait:          CalculateMean(waits),
		P95Wait:          CalculatePercentile(waits, 95),
		AvgResp:          CalculateMean(responses),
		P95Resp:          CalculatePercentile(responses, 95),
		DeadlineMissRate: float64(missed) / float64(max(1, n)),
	}
	if n > 1 {
		// a zero span (all service instantaneous at one instant) has no defined rate
		if span := completed[n-1].Finish - completed[0].Start; span > 0 {
			s.Throughput = float64(n) / span
		}
	}
	return s
}

// Map returns the summary keyed by metric name.
func (s Summary) Map() map[string]float64 {
	return map[string]float64{
		MetricAvgWait:          s.AvgWait,
		MetricP95Wait:          s.P95Wait,
		MetricAvgResp:          s.AvgResp,
		MetricP95Resp:          s.P95Resp,
		MetricDeadlineMissRate: s.DeadlineMissRate,
		MetricThroughput:       s.Throughput,
	}
}

// String renders the summary on one line.
func (s Summary) String() string {
	return fmt.Sprintf("avg_wait=%.3f p95_wait=%.3f avg_resp=%.3f p95_resp=%.3f deadline_miss_rate=%.3f throughput=%.4f",
		s.AvgWait, s.P95Wait, s.AvgResp, s.P95Resp, s.DeadlineMissRate, s.Throughput)
}
