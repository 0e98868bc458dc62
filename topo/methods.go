// Package topo: engine method implementations.
//
// Mutators validate before touching any state, so a failed call is always a
// no-op. Removal results follow edgeOrder (insertion order); after a bulk
// removal the order slices are compacted in one pass against the live maps.

package topo

import "slices"

// AddNode inserts a new node with the given id.
// Returns ErrNodeExists if the id is already present; nothing else changes.
// Complexity: O(1) amortized.
func (t *Topo[K]) AddNode(id K) error {
	if t.closed {
		return ErrClosed
	}
	if _, exists := t.nodes[id]; exists {
		return ErrNodeExists
	}
	t.nodes[id] = struct{}{}
	t.nodeOrder = append(t.nodeOrder, id)

	return nil
}

// AddEdge records a new edge id with the ordered endpoint pair (from, to).
// Returns ErrEdgeExists if the edge id is already present, ErrNodeNotFound
// if either endpoint is not a current node. Self-loops (from == to) are
// permitted. Validation precedes insertion.
// Complexity: O(1) amortized.
func (t *Topo[K]) AddEdge(id, from, to K) error {
	if t.closed {
		return ErrClosed
	}
	if _, exists := t.edges[id]; exists {
		return ErrEdgeExists
	}
	if !t.hasNode(from) || !t.hasNode(to) {
		return ErrNodeNotFound
	}
	t.edges[id] = endpoints[K]{from: from, to: to}
	t.edgeOrder = append(t.edgeOrder, id)

	return nil
}

// RemoveEdge deletes the edge with the given id.
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(E) for the order-index removal.
func (t *Topo[K]) RemoveEdge(id K) error {
	if t.closed {
		return ErrClosed
	}
	if _, exists := t.edges[id]; !exists {
		return ErrEdgeNotFound
	}
	delete(t.edges, id)
	if i := slices.Index(t.edgeOrder, id); i >= 0 {
		t.edgeOrder = slices.Delete(t.edgeOrder, i, i+1)
	}

	return nil
}

// RemoveEdgesBetween removes every edge connecting n1 and n2 and returns the
// removed edge ids in insertion order. For a directed engine only edges with
// endpoints exactly (n1, n2) match; for an undirected engine either
// orientation matches. Both nodes must exist (ErrNodeNotFound otherwise);
// having no matching edges is not an error and yields an empty result.
// Complexity: O(E).
func (t *Topo[K]) RemoveEdgesBetween(n1, n2 K) ([]K, error) {
	if t.closed {
		return nil, ErrClosed
	}
	if !t.hasNode(n1) || !t.hasNode(n2) {
		return nil, ErrNodeNotFound
	}

	var removed []K
	for _, eid := range t.edgeOrder {
		if t.connects(t.edges[eid], n1, n2) {
			delete(t.edges, eid)
			removed = append(removed, eid)
		}
	}
	if len(removed) > 0 {
		t.compactEdgeOrder()
	}

	return removed, nil
}

// RemoveNode removes every edge incident to id (as source or destination,
// regardless of directedness) in insertion order, then the node itself.
// Returns the removed edge ids, or ErrNodeNotFound if id is absent.
// Complexity: O(E + V).
func (t *Topo[K]) RemoveNode(id K) ([]K, error) {
	if t.closed {
		return nil, ErrClosed
	}
	if !t.hasNode(id) {
		return nil, ErrNodeNotFound
	}

	// 1) Drop incident edges first so the no-dangling-edges invariant holds
	//    at every step.
	var removed []K
	for _, eid := range t.edgeOrder {
		if ep := t.edges[eid]; ep.from == id || ep.to == id {
			delete(t.edges, eid)
			removed = append(removed, eid)
		}
	}
	if len(removed) > 0 {
		t.compactEdgeOrder()
	}

	// 2) Drop the node and its order entry.
	delete(t.nodes, id)
	if i := slices.Index(t.nodeOrder, id); i >= 0 {
		t.nodeOrder = slices.Delete(t.nodeOrder, i, i+1)
	}

	return removed, nil
}

// EdgesBetween returns the ids of all edges connecting n1 and n2, in
// insertion order, without removing them. Matching follows the engine's
// directedness exactly like RemoveEdgesBetween.
// Complexity: O(E).
func (t *Topo[K]) EdgesBetween(n1, n2 K) ([]K, error) {
	if t.closed {
		return nil, ErrClosed
	}
	if !t.hasNode(n1) || !t.hasNode(n2) {
		return nil, ErrNodeNotFound
	}

	var out []K
	for _, eid := range t.edgeOrder {
		if t.connects(t.edges[eid], n1, n2) {
			out = append(out, eid)
		}
	}

	return out, nil
}

// Endpoints returns the ordered endpoint pair recorded for the given edge id.
// Complexity: O(1).
func (t *Topo[K]) Endpoints(id K) (from, to K, err error) {
	if t.closed {
		return from, to, ErrClosed
	}
	ep, exists := t.edges[id]
	if !exists {
		return from, to, ErrEdgeNotFound
	}

	return ep.from, ep.to, nil
}

// HasNode reports whether id is a current node. O(1).
func (t *Topo[K]) HasNode(id K) bool {
	return t.hasNode(id)
}

// HasEdge reports whether id is a current edge. O(1).
func (t *Topo[K]) HasEdge(id K) bool {
	_, exists := t.edges[id]

	return exists
}

// NodeCount returns the number of current nodes. O(1).
func (t *Topo[K]) NodeCount() int { return len(t.nodes) }

// EdgeCount returns the number of current edges. O(1).
func (t *Topo[K]) EdgeCount() int { return len(t.edges) }

// Nodes returns all node ids in insertion order. The slice is a copy.
// Complexity: O(V).
func (t *Topo[K]) Nodes() []K {
	return slices.Clone(t.nodeOrder)
}

// Edges returns all edge ids in insertion order. The slice is a copy.
// Complexity: O(E).
func (t *Topo[K]) Edges() []K {
	return slices.Clone(t.edgeOrder)
}

// Directed reports the construction-time edge matching semantics.
func (t *Topo[K]) Directed() bool { return t.directed }

// Closed reports whether Close has been called.
func (t *Topo[K]) Closed() bool { return t.closed }

// Clone returns an independent deep copy of the engine: flag, node set,
// edge catalog, and both order indexes.
// Complexity: O(V + E).
func (t *Topo[K]) Clone() *Topo[K] {
	clone := &Topo[K]{
		directed:  t.directed,
		closed:    t.closed,
		nodeOrder: slices.Clone(t.nodeOrder),
		edgeOrder: slices.Clone(t.edgeOrder),
	}
	if !t.closed {
		clone.nodes = make(map[K]struct{}, len(t.nodes))
		for id := range t.nodes {
			clone.nodes[id] = struct{}{}
		}
		clone.edges = make(map[K]endpoints[K], len(t.edges))
		for id, ep := range t.edges {
			clone.edges[id] = ep
		}
	}

	return clone
}

// Clear resets the engine to empty keeping the directedness flag.
// A closed engine stays closed.
// Complexity: O(1) plus garbage.
func (t *Topo[K]) Clear() {
	if t.closed {
		return
	}
	t.nodes = make(map[K]struct{})
	t.edges = make(map[K]endpoints[K])
	t.nodeOrder = nil
	t.edgeOrder = nil
}

// Close releases all internal storage. Every later call on the engine,
// including a second Close, fails with ErrClosed.
func (t *Topo[K]) Close() error {
	if t.closed {
		return ErrClosed
	}
	t.closed = true
	t.nodes = nil
	t.edges = nil
	t.nodeOrder = nil
	t.edgeOrder = nil

	return nil
}

// Internal helpers:
////////////////////

// hasNode is the membership primitive shared by the mutator validations.
func (t *Topo[K]) hasNode(id K) bool {
	_, exists := t.nodes[id]

	return exists
}

// connects reports whether ep links n1 and n2 under the engine's semantics:
// exact (n1, n2) for directed, either orientation for undirected.
func (t *Topo[K]) connects(ep endpoints[K], n1, n2 K) bool {
	if ep.from == n1 && ep.to == n2 {
		return true
	}

	return !t.directed && ep.from == n2 && ep.to == n1
}

// compactEdgeOrder rebuilds edgeOrder in place, keeping only ids still in
// the edge catalog. Relative order is preserved.
func (t *Topo[K]) compactEdgeOrder() {
	kept := t.edgeOrder[:0]
	for _, eid := range t.edgeOrder {
		if _, live := t.edges[eid]; live {
			kept = append(kept, eid)
		}
	}
	t.edgeOrder = kept
}
