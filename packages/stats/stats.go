// Package stats aggregates request latencies for repeated invocations.
package stats

import (
	"fmt"
	"io"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// Recorder accumulates per-request latencies.
type Recorder struct {
	// Latency histogram in microseconds for precision
	histogram *hdrhistogram.Histogram
	total     int
	failed    int
}

func NewRecorder() *Recorder {
	return &Recorder{
		histogram: hdrhistogram.New(1, 60_000_000, 3),
	}
}

// Record adds one request observation.
func (r *Recorder) Record(latency time.Duration, ok bool) {
	r.total++
	if !ok {
		r.failed++
		return
	}
	_ = r.histogram.RecordValue(latency.Microseconds())
}

// Summary holds the aggregated view of a recording.
type Summary struct {
	Total  int
	Failed int
	Min    time.Duration
	Max    time.Duration
	Mean   time.Duration
	P50    time.Duration
	P95    time.Duration
	P99    time.Duration
}

func (r *Recorder) Summarize() Summary {
	us := func(v int64) time.Duration { return time.Duration(v) * time.Microsecond }
	return Summary{
		Total:  r.total,
		Failed: r.failed,
		Min:    us(r.histogram.Min()),
		Max:    us(r.histogram.Max()),
		Mean:   time.Duration(r.histogram.Mean()) * time.Microsecond,
		P50:    us(r.histogram.ValueAtQuantile(50)),
		P95:    us(r.histogram.ValueAtQuantile(95)),
		P99:    us(r.histogram.ValueAtQuantile(99)),
	}
}

// Print writes a human-readable latency summary.
func (s Summary) Print(w io.Writer) {
	fmt.Fprintf(w, "Requests: %d", s.Total)
	if s.Failed > 0 {
		fmt.Fprintf(w, " (%d failed)", s.Failed)
	}
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "Latency:  min=%s mean=%s max=%s\n", round(s.Min), round(s.Mean), round(s.Max))
	fmt.Fprintf(w, "          p50=%s p95=%s p99=%s\n", round(s.P50), round(s.P95), round(s.P99))
}

func round(d time.Duration) time.Duration {
	return d.Round(10 * time.Microsecond)
}
