package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/search"
)

func TestObserve(t *testing.T) {
	m := New()

	solved := &search.Result{
		Solved:        true,
		Path:          []search.Step{{Action: grid.Right, State: grid.Coordinate{Col: 1}}},
		ExpandedCount: 3,
	}
	m.Observe("queue", solved, nil, time.Millisecond)
	m.Observe("queue", &search.Result{ExpandedCount: 5}, search.ErrNoSolution, time.Millisecond)
	m.Observe("stack", nil, search.ErrGridNil, 0)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.SolvesTotal.WithLabelValues("queue", OutcomeSolved)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SolvesTotal.WithLabelValues("queue", OutcomeNoSolution)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SolvesTotal.WithLabelValues("stack", OutcomeError)))

	// one series per frontier label; the nil result adds none for "stack"
	assert.Equal(t, 1, testutil.CollectAndCount(m.StatesExplored, "labyrinth_states_explored"))
	assert.Equal(t, 1, testutil.CollectAndCount(m.PathLength, "labyrinth_path_length"))
}

func TestNew_Independent(t *testing.T) {
	a, b := New(), New()
	a.Observe("queue", nil, nil, 0)
	assert.Equal(t, 0.0, testutil.ToFloat64(b.SolvesTotal.WithLabelValues("queue", OutcomeSolved)))
}

func TestWriteTextfile(t *testing.T) {
	m := New()
	m.Observe("stack", &search.Result{Solved: true, Path: []search.Step{}}, nil, time.Microsecond)

	path := filepath.Join(t.TempDir(), "labyrinth.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `labyrinth_solves_total{frontier="stack",outcome="solved"} 1`)
	assert.Contains(t, string(data), "labyrinth_solve_duration_seconds_bucket")
}
