package frontier

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/labyrinth/grid"
)

// Sentinel errors for frontier operations.
var (
	// ErrEmptyFrontier is returned by RemoveNext when nothing is left to expand.
	ErrEmptyFrontier = errors.New("frontier: remove from empty frontier")

	// ErrUnknownKind is returned for an unsupported frontier ordering.
	ErrUnknownKind = errors.New("frontier: unknown kind")
)

// NoParent marks the root node of a search tree.
const NoParent = -1

// Node is a discovered state together with how it was reached.
// ID is the node's index in the engine's arena and Parent is the arena
// index of its predecessor, or NoParent for the root. Action is the step
// taken from Parent to State and carries no meaning on the root.
type Node struct {
	ID     int
	State  grid.Coordinate
	Parent int
	Action grid.Action
}

// IsRoot reports whether n has no parent.
func (n Node) IsRoot() bool {
	return n.Parent == NoParent
}

// Frontier is an ordered collection of nodes awaiting expansion.
type Frontier interface {
	// Add appends n. Duplicates by State are allowed.
	Add(n Node)
	// Empty reports whether no node is left.
	Empty() bool
	// ContainsState reports whether some resident node has State c.
	ContainsState(c grid.Coordinate) bool
	// RemoveNext evicts and returns the next node per the frontier's order.
	// It returns ErrEmptyFrontier when Empty() is true.
	RemoveNext() (Node, error)
	// Len returns the number of resident nodes.
	Len() int
}

// Kind selects the eviction order of a Frontier.
type Kind int

const (
	// KindStack evicts last-in-first-out (depth-first search).
	KindStack Kind = iota
	// KindQueue evicts first-in-first-out (breadth-first search).
	KindQueue
)

// String returns "stack" or "queue".
func (k Kind) String() string {
	switch k {
	case KindStack:
		return "stack"
	case KindQueue:
		return "queue"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Valid reports whether k names a supported ordering.
func (k Kind) Valid() bool {
	return k == KindStack || k == KindQueue
}

// ParseKind maps "stack"/"dfs" and "queue"/"bfs" (case-insensitive) to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stack", "dfs":
		return KindStack, nil
	case "queue", "bfs":
		return KindQueue, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// New returns an empty Frontier of the requested kind.
func New(kind Kind) (Frontier, error) {
	switch kind {
	case KindStack:
		return NewStack(), nil
	case KindQueue:
		return NewQueue(), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
}
