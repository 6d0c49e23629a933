package frontier

import "github.com/katalvlaran/labyrinth/grid"

// store keeps resident nodes in nodes[head:] and counts them per state.
// Stack and Queue embed it and differ only in which end they evict from.
type store struct {
	nodes  []Node
	head   int
	states map[grid.Coordinate]int
}

func newStore() store {
	return store{states: make(map[grid.Coordinate]int)}
}

// Add appends n to the tail.
func (s *store) Add(n Node) {
	s.nodes = append(s.nodes, n)
	s.states[n.State]++
}

// Empty reports whether no node is resident.
func (s *store) Empty() bool {
	return s.head == len(s.nodes)
}

// Len returns the number of resident nodes.
func (s *store) Len() int {
	return len(s.nodes) - s.head
}

// ContainsState reports whether a resident node has State c.
func (s *store) ContainsState(c grid.Coordinate) bool {
	return s.states[c] > 0
}

// forget drops one membership count for c.
func (s *store) forget(c grid.Coordinate) {
	if s.states[c] <= 1 {
		delete(s.states, c)
		return
	}
	s.states[c]--
}
