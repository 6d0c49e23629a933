package frontier

var _ Frontier = (*Queue)(nil)

// Queue is a first-in-first-out Frontier. Searching with it is
// breadth-first: every node at distance k is expanded before any node at
// distance k+1, so the first goal reached uses the fewest moves.
type Queue struct {
	store
}

// NewQueue returns an empty Queue.
func NewQueue() *Queue {
	return &Queue{store: newStore()}
}

// RemoveNext evicts the earliest added node still present.
func (q *Queue) RemoveNext() (Node, error) {
	if q.Empty() {
		return Node{}, ErrEmptyFrontier
	}
	n := q.nodes[q.head]
	q.nodes[q.head] = Node{}
	q.head++
	// reclaim the consumed prefix once it dominates the backing array
	if q.head > 64 && q.head*2 >= len(q.nodes) {
		q.nodes = append(q.nodes[:0], q.nodes[q.head:]...)
		q.head = 0
	}
	q.forget(n.State)

	return n, nil
}
