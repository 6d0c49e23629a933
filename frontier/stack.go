package frontier

var _ Frontier = (*Stack)(nil)

// Stack is a last-in-first-out Frontier. Searching with it is depth-first:
// it reaches some path quickly, not necessarily the shortest.
type Stack struct {
	store
}

// NewStack returns an empty Stack.
func NewStack() *Stack {
	return &Stack{store: newStore()}
}

// RemoveNext evicts the most recently added node.
func (s *Stack) RemoveNext() (Node, error) {
	if s.Empty() {
		return Node{}, ErrEmptyFrontier
	}
	last := len(s.nodes) - 1
	n := s.nodes[last]
	s.nodes = s.nodes[:last]
	s.forget(n.State)

	return n, nil
}
