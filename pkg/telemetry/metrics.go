// Package telemetry exports multiplexer activity as Prometheus metrics.
package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/odvcencio/tilemux/pkg/mux"
)

const namespace = "tilemux"

// Metrics records mux events. It implements mux.Observer.
type Metrics struct {
	FocusMoves  *prometheus.CounterVec
	HistoryHits prometheus.Counter
	Resizes     *prometheus.CounterVec
	TreeChanges *prometheus.CounterVec
	Panes       prometheus.Gauge
	Zoomed      prometheus.Gauge
	Layout      prometheus.Histogram
}

// NewMetrics registers the collectors with reg. A nil reg uses the default
// registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		FocusMoves: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "focus",
				Name:      "moves_total",
				Help:      "Directional focus requests by direction and outcome",
			},
			[]string{"direction", "outcome"},
		),
		HistoryHits: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "focus",
				Name:      "history_hits_total",
				Help:      "Focus moves resolved by returning along a recorded move",
			},
		),
		Resizes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "split",
				Name:      "resizes_total",
				Help:      "Resize requests by direction and outcome",
			},
			[]string{"direction", "outcome"},
		),
		TreeChanges: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "tree",
				Name:      "changes_total",
				Help:      "Structural mutations by operation",
			},
			[]string{"op"},
		),
		Panes: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "tree",
				Name:      "panes",
				Help:      "Number of panes currently tiled",
			},
		),
		Zoomed: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "zoomed",
				Help:      "1 while a pane is zoomed",
			},
		),
		Layout: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "layout",
				Name:      "duration_seconds",
				Help:      "Time spent laying out the pane tree",
				Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8), // 10µs to ~160ms
			},
		),
	}
}

func (m *Metrics) FocusMoved(d mux.Direction, outcome mux.Outcome, viaHistory bool) {
	m.FocusMoves.WithLabelValues(d.String(), outcome.String()).Inc()
	if viaHistory && outcome == mux.Handled {
		m.HistoryHits.Inc()
	}
}

func (m *Metrics) Resized(d mux.Direction, outcome mux.Outcome) {
	m.Resizes.WithLabelValues(d.String(), outcome.String()).Inc()
}

func (m *Metrics) TreeChanged(op mux.TreeOp, leaves int) {
	m.TreeChanges.WithLabelValues(op.String()).Inc()
	m.Panes.Set(float64(leaves))
}

func (m *Metrics) ZoomToggled(zoomed bool) {
	if zoomed {
		m.Zoomed.Set(1)
		return
	}
	m.Zoomed.Set(0)
}

func (m *Metrics) LaidOut(elapsed time.Duration) {
	m.Layout.Observe(elapsed.Seconds())
}

var _ mux.Observer = (*Metrics)(nil)
