// Package frontier holds the discovered-but-unexpanded search nodes of a
// maze search run, in one of two eviction orders.
//
// What:
//
//   - Node is an immutable record of (State, Parent, Action). Parent is an
//     index into the engine's node arena rather than a pointer, so parent
//     chains form a forest with no ownership cycles.
//   - Frontier is the capability set the search engine needs:
//     Add, Empty, ContainsState, RemoveNext and Len.
//   - Stack evicts the most recently added node (depth-first order).
//   - Queue evicts the earliest added node still present (breadth-first order).
//
// Stack and Queue share storage and state membership through an embedded
// store; only RemoveNext differs between them.
//
// The base type does not de-duplicate: adding two nodes with the same
// State keeps both. De-duplication is the engine's job, done by checking
// ContainsState before Add.
//
// Complexity:
//
//   - Add, Empty, ContainsState, Len: O(1) (amortized for Add).
//   - RemoveNext:                     O(1) amortized.
//
// Errors:
//
//   - ErrEmptyFrontier: RemoveNext called on an empty frontier. The engine
//     never does this; seeing it means an engine defect.
//   - ErrUnknownKind:   New or ParseKind given an unsupported ordering.
//
// A Frontier is owned by a single search run and is not safe for concurrent use.
package frontier
