package layerfx

import (
	"iter"
	"slices"
)

// NotFound is the index IndexOf returns for an absent node.
const NotFound = -1

// NodeSet is an ordered collection with unique membership.
// Order defines composition order. The zero value is an empty set.
type NodeSet[T comparable] struct {
	nodes []T
}

// Add appends n. It fails with ErrDuplicateNode if n is present.
func (s *NodeSet[T]) Add(n T) error {
	if slices.Contains(s.nodes, n) {
		return ErrDuplicateNode
	}
	s.nodes = append(s.nodes, n)
	return nil
}

// Insert inserts n before position i, clamped to [0, Len()].
// It fails with ErrDuplicateNode if n is present.
func (s *NodeSet[T]) Insert(i int, n T) error {
	if slices.Contains(s.nodes, n) {
		return ErrDuplicateNode
	}
	i = min(max(i, 0), len(s.nodes))
	s.nodes = slices.Insert(s.nodes, i, n)
	return nil
}

// Remove removes n and reports whether it was present.
func (s *NodeSet[T]) Remove(n T) bool {
	i := slices.Index(s.nodes, n)
	if i < 0 {
		return false
	}
	s.nodes = slices.Delete(s.nodes, i, i+1)
	return true
}

// IndexOf returns the position of n, or NotFound.
func (s *NodeSet[T]) IndexOf(n T) int {
	return slices.Index(s.nodes, n)
}

// Contains reports whether n is in the set.
func (s *NodeSet[T]) Contains(n T) bool {
	return slices.Contains(s.nodes, n)
}

// Swap exchanges positions i and j and reports whether it did. Indices
// outside [0, Len()) or i == j leave the set unchanged.
func (s *NodeSet[T]) Swap(i, j int) bool {
	n := len(s.nodes)
	if i < 0 || j < 0 || i >= n || j >= n || i == j {
		return false
	}
	s.nodes[i], s.nodes[j] = s.nodes[j], s.nodes[i]
	return true
}

// Clear empties the set. Nodes are not torn down.
func (s *NodeSet[T]) Clear() {
	clear(s.nodes)
	s.nodes = s.nodes[:0]
}

// Len returns the number of nodes.
func (s *NodeSet[T]) Len() int {
	return len(s.nodes)
}

// Nodes returns the live ordered sequence. Callers must not modify it.
func (s *NodeSet[T]) Nodes() []T {
	return s.nodes
}

// All yields index/node pairs in order.
func (s *NodeSet[T]) All() iter.Seq2[int, T] {
	return slices.All(s.nodes)
}
