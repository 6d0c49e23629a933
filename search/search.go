package search

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/labyrinth/frontier"
	"github.com/katalvlaran/labyrinth/grid"
)

// walker encapsulates the mutable state of one search run.
type walker struct {
	grid     *grid.Grid
	opts     Options
	frontier frontier.Frontier
	arena    []frontier.Node
	res      *Result
}

// Solve searches g from its start cell to its goal cell using the frontier
// ordering chosen by opts (breadth-first by default).
// Returns ErrGridNil for a nil grid, ErrOptionViolation for bad options,
// or an error wrapping ErrNoSolution when the goal is unreachable; in the
// last case the returned Result still carries the explored diagnostics.
func Solve(g *grid.Grid, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	f, err := frontier.New(o.Frontier)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOptionViolation, err)
	}

	n := g.OpenCells()
	w := &walker{
		grid:     g,
		opts:     o,
		frontier: f,
		arena:    make([]frontier.Node, 0, n),
		res: &Result{
			Explored:      make(map[grid.Coordinate]bool, n),
			ExploredOrder: make([]grid.Coordinate, 0, n),
			Frontier:      o.Frontier,
		},
	}

	log := o.Logger.With(zap.Stringer("frontier", o.Frontier))
	log.Debug("search started",
		zap.Stringer("start", g.Start()),
		zap.Stringer("goal", g.Goal()),
		zap.Int("height", g.Height()),
		zap.Int("width", g.Width()),
	)

	if err = w.loop(); err != nil {
		log.Debug("search finished",
			zap.Bool("solved", false),
			zap.Int("expanded", w.res.ExpandedCount),
			zap.Error(err),
		)
		return w.res, err
	}
	log.Debug("search finished",
		zap.Bool("solved", true),
		zap.Int("moves", len(w.res.Path)),
		zap.Int("expanded", w.res.ExpandedCount),
		zap.Int("suppressed", w.res.DuplicatesSuppressed),
	)

	return w.res, nil
}

// push stores a new node in the arena and adds it to the frontier.
func (w *walker) push(state grid.Coordinate, parent int, action grid.Action) {
	n := frontier.Node{ID: len(w.arena), State: state, Parent: parent, Action: action}
	w.arena = append(w.arena, n)
	w.frontier.Add(n)
	w.opts.OnEnqueue(n)
}

// loop drains the frontier until the goal is removed or nothing is left.
func (w *walker) loop() error {
	goal := w.grid.Goal()
	w.push(w.grid.Start(), frontier.NoParent, 0)

	for !w.frontier.Empty() {
		node, err := w.frontier.RemoveNext()
		if err != nil {
			return fmt.Errorf("search: frontier reported non-empty: %w", err)
		}
		if node.State == goal {
			w.res.Solved = true
			w.res.Path = w.reconstruct(node)
			return nil
		}
		w.expand(node)
	}

	return fmt.Errorf("%w: goal %v unreachable from %v", ErrNoSolution, goal, w.grid.Start())
}

// expand marks node explored and queues each neighbor that is neither
// explored nor already waiting in the frontier.
func (w *walker) expand(node frontier.Node) {
	w.res.Explored[node.State] = true
	w.res.ExploredOrder = append(w.res.ExploredOrder, node.State)
	w.res.ExpandedCount++
	w.opts.OnExpand(node.State, w.res.ExpandedCount)

	for _, nb := range w.grid.Neighbors(node.State) {
		if w.res.Explored[nb.State] {
			continue
		}
		if w.frontier.ContainsState(nb.State) {
			w.res.DuplicatesSuppressed++
			continue
		}
		w.push(nb.State, node.ID, nb.Action)
	}
}

// reconstruct walks parent indices from leaf to the root, then reverses
// the collected steps so they read start to goal. The root is excluded.
func (w *walker) reconstruct(leaf frontier.Node) []Step {
	path := []Step{}
	for n := leaf; !n.IsRoot(); n = w.arena[n.Parent] {
		path = append(path, Step{Action: n.Action, State: n.State})
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
