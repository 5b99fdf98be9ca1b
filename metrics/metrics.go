// Package metrics instruments package channel with Prometheus gauges
// and counters. A Recorder is optional: the nil receiver methods are
// no-ops, so a channel created without metrics pays no cost beyond the
// nil check.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	bufferLen = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "bchan_buffer_len",
			Help: "Current number of buffered values in a channel.",
		},
		[]string{"channel"},
	)
	selectWaiters = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "bchan_select_waiters",
			Help: "Current number of select notifiers registered on a channel.",
		},
		[]string{"channel"},
	)
	opsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bchan_ops_total",
			Help: "Count of terminal statuses returned by channel operations.",
		},
		[]string{"channel", "op", "status"},
	)
)

func init() {
	prometheus.MustRegister(bufferLen, selectWaiters, opsTotal)
}

// Recorder records metrics for a single named channel. The zero value
// is not directly usable outside this package; obtain one with New.
type Recorder struct {
	name string
}

// New returns a Recorder that labels every metric with name. Distinct
// channels should use distinct names; reusing a name aggregates their
// metrics together.
func New(name string) *Recorder {
	return &Recorder{name: name}
}

// SetBufferLen records the current buffer occupancy.
func (r *Recorder) SetBufferLen(n int) {
	if r == nil {
		return
	}
	bufferLen.WithLabelValues(r.name).Set(float64(n))
}

// SetSelectWaiters records the current select_waiters count.
func (r *Recorder) SetSelectWaiters(n int) {
	if r == nil {
		return
	}
	selectWaiters.WithLabelValues(r.name).Set(float64(n))
}

// IncOp increments the counter for one terminal (op, status) pair.
func (r *Recorder) IncOp(op, status string) {
	if r == nil {
		return
	}
	opsTotal.WithLabelValues(r.name, op, status).Inc()
}
