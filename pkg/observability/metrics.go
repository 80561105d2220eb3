package observability

import (
	"context"

	"github.com/aretw0/gridwalk/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the engine collectors.
type Metrics struct {
	Walks          *prometheus.CounterVec
	Steps          prometheus.Histogram
	HeadingChanges prometheus.Counter
	Cells          prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg skips registration (useful in tests).
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Walks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gridwalk_walks_total",
				Help: "Total number of finished walks by terminal status",
			},
			[]string{"status"},
		),
		Steps: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "gridwalk_walk_steps",
				Help:    "Transitions per walk, the terminating one included",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		HeadingChanges: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "gridwalk_heading_changes_total",
				Help: "Total number of glyphs that changed the heading",
			},
		),
		Cells: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "gridwalk_cells_visited_total",
				Help: "Total number of cells read across all walks",
			},
		),
	}

	if reg != nil {
		for _, c := range []prometheus.Collector{m.Walks, m.Steps, m.HeadingChanges, m.Cells} {
			if err := reg.Register(c); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStep: func(_ context.Context, e *domain.StepEvent) {
			m.Cells.Inc()
			if e.Turned() {
				m.HeadingChanges.Inc()
			}
		},
		OnTerminate: func(_ context.Context, e *domain.TerminateEvent) {
			m.Walks.WithLabelValues(string(e.Status)).Inc()
			m.Steps.Observe(float64(e.Steps))
		},
	}
}
