// Package metrics records search runs as prometheus metrics.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/labyrinth/search"
)

// Outcome labels.
const (
	OutcomeSolved     = "solved"
	OutcomeNoSolution = "no_solution"
	OutcomeError      = "error"
)

// Metrics holds the collectors for maze search runs.
//
// Metrics:
//   - labyrinth_solves_total{frontier,outcome} - count of search runs
//   - labyrinth_states_explored{frontier} - histogram of expansions per run
//   - labyrinth_path_length{frontier} - histogram of solution lengths
//   - labyrinth_solve_duration_seconds{frontier} - histogram of run times
type Metrics struct {
	registry *prometheus.Registry

	SolvesTotal    *prometheus.CounterVec
	StatesExplored *prometheus.HistogramVec
	PathLength     *prometheus.HistogramVec
	SolveDuration  *prometheus.HistogramVec
}

// New creates the collectors on a private registry, so independent
// instances never collide.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		SolvesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "labyrinth_solves_total",
				Help: "Total number of maze search runs",
			},
			[]string{"frontier", "outcome"},
		),
		StatesExplored: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "labyrinth_states_explored",
				Help:    "Number of states expanded per search run",
				Buckets: prometheus.ExponentialBuckets(1, 4, 10), // 1 to ~262k
			},
			[]string{"frontier"},
		),
		PathLength: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "labyrinth_path_length",
				Help:    "Number of moves in found solutions",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12), // 1 to 2048
			},
			[]string{"frontier"},
		),
		SolveDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "labyrinth_solve_duration_seconds",
				Help:    "Duration of maze search runs in seconds",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10), // 100µs to ~26s
			},
			[]string{"frontier"},
		),
	}
	m.registry.MustRegister(m.SolvesTotal, m.StatesExplored, m.PathLength, m.SolveDuration)
	return m
}

// Registry exposes the private registry, e.g. for gathering in tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Observe records one run. frontier is the ordering name; res may be nil
// when Solve failed before searching.
func (m *Metrics) Observe(frontier string, res *search.Result, err error, elapsed time.Duration) {
	outcome := OutcomeSolved
	switch {
	case errors.Is(err, search.ErrNoSolution):
		outcome = OutcomeNoSolution
	case err != nil:
		outcome = OutcomeError
	}
	m.SolvesTotal.WithLabelValues(frontier, outcome).Inc()
	m.SolveDuration.WithLabelValues(frontier).Observe(elapsed.Seconds())
	if res == nil {
		return
	}
	m.StatesExplored.WithLabelValues(frontier).Observe(float64(res.ExpandedCount))
	if res.Solved {
		m.PathLength.WithLabelValues(frontier).Observe(float64(res.Len()))
	}
}

// WriteTextfile writes every collected metric to path in the text
// exposition format read by node_exporter's textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
