package search

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/labyrinth/frontier"
	"github.com/katalvlaran/labyrinth/grid"
)

// Sentinel errors for search execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("search: grid is nil")

	// ErrNoSolution is returned when the frontier runs dry before the goal
	// is reached. It is a normal terminal outcome, not a defect.
	ErrNoSolution = errors.New("search: no solution")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Option configures Solve via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks for a search run.
type Options struct {
	// Frontier selects the eviction order. Default: frontier.KindQueue.
	Frontier frontier.Kind

	// Logger receives run-level debug logs. Default: zap.NewNop().
	Logger *zap.Logger

	// OnExpand is called after a cell is added to the explored set, with
	// the running expansion count.
	OnExpand func(c grid.Coordinate, expanded int)

	// OnEnqueue is called after a node is added to the frontier.
	OnEnqueue func(n frontier.Node)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a queue frontier, a no-op logger
// and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Frontier:  frontier.KindQueue,
		Logger:    zap.NewNop(),
		OnExpand:  func(grid.Coordinate, int) {},
		OnEnqueue: func(frontier.Node) {},
	}
}

// WithFrontier selects the frontier ordering.
func WithFrontier(kind frontier.Kind) Option {
	return func(o *Options) {
		if !kind.Valid() {
			o.err = fmt.Errorf("%w: %v", ErrOptionViolation, kind)
			return
		}
		o.Frontier = kind
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnExpand registers a callback run after each expansion.
func WithOnExpand(fn func(c grid.Coordinate, expanded int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnEnqueue registers a callback run after each frontier insertion.
func WithOnEnqueue(fn func(n frontier.Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// Step is one move of a solution: the action taken and the cell it reaches.
type Step struct {
	Action grid.Action
	State  grid.Coordinate
}

// Result holds the outcome of a search run.
//
// On success Solved is true and Path lists the moves from the step after
// the start through the goal. When start == goal, Path is empty but non-nil.
// On failure Solved is false and Path is nil; the explored diagnostics are
// still filled in.
type Result struct {
	Solved bool
	Path   []Step

	// Explored is the set of expanded cells.
	Explored map[grid.Coordinate]bool
	// ExploredOrder lists expanded cells in expansion order.
	ExploredOrder []grid.Coordinate
	// ExpandedCount is the number of expansions; equals len(ExploredOrder).
	ExpandedCount int
	// DuplicatesSuppressed counts neighbors skipped because their state
	// was already waiting in the frontier.
	DuplicatesSuppressed int

	// Frontier is the ordering used for the run.
	Frontier frontier.Kind
}

// Len returns the number of moves in the solution.
func (r *Result) Len() int {
	return len(r.Path)
}

// Coordinates returns the cells of the solution in order, start excluded.
func (r *Result) Coordinates() []grid.Coordinate {
	if r.Path == nil {
		return nil
	}
	out := make([]grid.Coordinate, len(r.Path))
	for i, s := range r.Path {
		out[i] = s.State
	}
	return out
}

// Actions returns the actions of the solution in order.
func (r *Result) Actions() []grid.Action {
	if r.Path == nil {
		return nil
	}
	out := make([]grid.Action, len(r.Path))
	for i, s := range r.Path {
		out[i] = s.Action
	}
	return out
}

// OnPath reports whether c is one of the solution cells.
// Complexity: O(path length).
func (r *Result) OnPath(c grid.Coordinate) bool {
	for _, s := range r.Path {
		if s.State == c {
			return true
		}
	}
	return false
}
