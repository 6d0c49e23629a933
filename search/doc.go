// Package search finds a path from a maze's start cell to its goal cell by
// exhaustive graph search over a frontier, then rebuilds the path by walking
// parent links back from the goal.
//
// What
//
//   - Solve(g, opts...) runs one search over a *grid.Grid.
//   - The frontier ordering picks the traversal:
//   - frontier.KindStack: depth-first. Finds a path quickly; the path is
//     an artifact of neighbor order and is not necessarily the shortest.
//   - frontier.KindQueue: breadth-first (default). The first path found
//     uses the fewest moves.
//   - The explored set stops any cell from being expanded twice, so the run
//     terminates on grids with loops.
//   - A neighbor already waiting in the frontier is never added again;
//     Result.DuplicatesSuppressed counts those rejections.
//
// Algorithm
//
//	push root(start)
//	loop while frontier not empty:
//	    node := frontier.RemoveNext()
//	    if node.State == goal: rebuild path, done
//	    explored += node.State; ExpandedCount++
//	    for each (action, next) in grid.Neighbors(node.State):
//	        if next not explored and not in frontier: push child(node, action, next)
//	fail with ErrNoSolution
//
// Nodes live in an arena slice and refer to their parent by index, so the
// winning branch is rebuilt in O(path length) with no pointer cycles.
//
// Determinism
//
//	grid.Neighbors always yields Up, Down, Left, Right, so for a given grid
//	and frontier kind the solution and the explored order are reproducible.
//
// Complexity (N = open cells)
//
//   - Time:   O(N) expansions, at most 4 neighbor checks each.
//   - Memory: O(N) for the arena, explored set and frontier.
//
// Usage
//
//	res, err := search.Solve(g, search.WithFrontier(frontier.KindStack))
//	switch {
//	case errors.Is(err, search.ErrNoSolution):
//	    // goal unreachable; res still carries the explored diagnostics
//	case err != nil:
//	    // ErrGridNil, ErrOptionViolation, or an engine defect
//	default:
//	    for _, step := range res.Path { ... }
//	}
//
// Options
//
//   - DefaultOptions(): queue frontier, no-op logger, no hooks.
//   - WithFrontier(kind):  choose stack or queue ordering.
//   - WithLogger(l):       *zap.Logger for run-level debug logs.
//   - WithOnExpand(fn):    hook called after a cell joins the explored set.
//   - WithOnEnqueue(fn):   hook called after a node joins the frontier.
//
// Errors
//
//   - ErrGridNil          if the grid pointer is nil.
//   - ErrOptionViolation  if an option is invalid (e.g. unknown frontier kind).
//   - ErrNoSolution       if the goal is unreachable from the start.
//
// A run is single-threaded and synchronous. Concurrent runs may share one
// Grid; each owns its frontier, explored set and arena.
package search
