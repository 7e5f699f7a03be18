package obs

import (
	"drone-delivery-service/internal/domain"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PlannerMetrics bundles Prometheus metrics describing planning runs.
type PlannerMetrics struct {
	gatherer prometheus.Gatherer

	Runs       *prometheus.CounterVec
	Legs       prometheus.Histogram
	Deliveries prometheus.Counter
	Duration   prometheus.Histogram
}

// NewPlannerMetrics registers planner metrics against reg, defaulting to the
// global registry when nil. Registering twice returns the existing collectors.
func NewPlannerMetrics(reg prometheus.Registerer) (*PlannerMetrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "planner_runs_total",
		Help: "Planning runs, labeled by how the journey terminated.",
	}, []string{"termination"})
	if err := register(reg, runs, "planner_runs_total", &runs); err != nil {
		return nil, err
	}

	legs := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "planner_journey_legs",
		Help:    "Legs flown per planning run, hovers included.",
		Buckets: []float64{1, 10, 50, 100, 250, 500, 750, 1000, 1250, 1500},
	})
	if err := register(reg, legs, "planner_journey_legs", &legs); err != nil {
		return nil, err
	}

	deliveries := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "planner_deliveries_total",
		Help: "Orders delivered across all planning runs.",
	})
	if err := register(reg, deliveries, "planner_deliveries_total", &deliveries); err != nil {
		return nil, err
	}

	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "planner_run_duration_seconds",
		Help:    "Wall time spent in the flight planner per run.",
		Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
	})
	if err := register(reg, duration, "planner_run_duration_seconds", &duration); err != nil {
		return nil, err
	}

	return &PlannerMetrics{
		gatherer:   gatherer,
		Runs:       runs,
		Legs:       legs,
		Deliveries: deliveries,
		Duration:   duration,
	}, nil
}

// register adds c to reg, or points *out at the collector already
// registered under the same descriptor.
func register[T prometheus.Collector](reg prometheus.Registerer, c T, name string, out *T) error {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(T); ok {
				*out = existing
				return nil
			}
			return fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return err
	}
	return nil
}

// ObserveRun records one finished planning run. A nil receiver is a no-op.
func (m *PlannerMetrics) ObserveRun(j *domain.Journey, deliveries int, dur time.Duration) {
	if m == nil || j == nil {
		return
	}
	m.Runs.WithLabelValues(j.Termination.String()).Inc()
	m.Legs.Observe(float64(j.Moves()))
	m.Deliveries.Add(float64(deliveries))
	m.Duration.Observe(dur.Seconds())
}

// Handler exposes the metrics for scraping.
func (m *PlannerMetrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
