// Package graph: Graph method implementations.
//
// The mirror protocol is uniform: delegate to the engine, and on success
// apply the identical id change to the payload map. Engine failures are
// surfaced unchanged with no payload mutation, so atomic rejection carries
// over from the engine for free.

package graph

import "maps"

// AddNode inserts a node with its payload.
// Returns ErrNodeExists if the id is already present.
// Complexity: O(1) amortized.
func (g *Graph[K, N, E]) AddNode(id K, data N) error {
	if err := g.topo.AddNode(id); err != nil {
		return err
	}
	g.nodeData[id] = data

	return nil
}

// AddEdge inserts an edge from 'from' to 'to' with its payload.
// Returns ErrEdgeExists if the edge id is already present, ErrNodeNotFound
// if either endpoint is missing.
// Complexity: O(1) amortized.
func (g *Graph[K, N, E]) AddEdge(id, from, to K, data E) error {
	if err := g.topo.AddEdge(id, from, to); err != nil {
		return err
	}
	g.edgeData[id] = data

	return nil
}

// RemoveEdge deletes the edge and its payload.
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(E).
func (g *Graph[K, N, E]) RemoveEdge(id K) error {
	if err := g.topo.RemoveEdge(id); err != nil {
		return err
	}
	delete(g.edgeData, id)

	return nil
}

// RemoveEdgesBetween removes every edge connecting n1 and n2 together with
// the payloads, honoring the engine's directedness for matching. Returns
// the removed edge ids in insertion order; an empty result is not an error.
// Returns ErrNodeNotFound if either node is missing.
// Complexity: O(E).
func (g *Graph[K, N, E]) RemoveEdgesBetween(n1, n2 K) ([]K, error) {
	removed, err := g.topo.RemoveEdgesBetween(n1, n2)
	if err != nil {
		return nil, err
	}
	for _, eid := range removed {
		delete(g.edgeData, eid)
	}

	return removed, nil
}

// RemoveNode removes the node, every incident edge, and all their payloads.
// Returns the removed edge ids in insertion order, or ErrNodeNotFound if
// the node is missing.
// Complexity: O(E + V).
func (g *Graph[K, N, E]) RemoveNode(id K) ([]K, error) {
	removed, err := g.topo.RemoveNode(id)
	if err != nil {
		return nil, err
	}
	for _, eid := range removed {
		delete(g.edgeData, eid)
	}
	delete(g.nodeData, id)

	return removed, nil
}

// NodeData returns the payload of a single node.
// Returns ErrNodeNotFound if the id is absent.
// Complexity: O(1).
func (g *Graph[K, N, E]) NodeData(id K) (N, error) {
	var zero N
	if g.topo.Closed() {
		return zero, ErrClosed
	}
	data, exists := g.nodeData[id]
	if !exists {
		return zero, ErrNodeNotFound
	}

	return data, nil
}

// EdgeData returns the payload of a single edge.
// Returns ErrEdgeNotFound if the id is absent.
// Complexity: O(1).
func (g *Graph[K, N, E]) EdgeData(id K) (E, error) {
	var zero E
	if g.topo.Closed() {
		return zero, ErrClosed
	}
	data, exists := g.edgeData[id]
	if !exists {
		return zero, ErrEdgeNotFound
	}

	return data, nil
}

// NodesData returns the payloads for the given node ids, output order
// matching input order. The batch is all-or-nothing: if any id is absent
// the call fails with ErrNodeNotFound and no partial result is returned.
// Complexity: O(len(ids)).
func (g *Graph[K, N, E]) NodesData(ids []K) ([]N, error) {
	if g.topo.Closed() {
		return nil, ErrClosed
	}
	// 1) Validate the whole batch before collecting anything.
	for _, id := range ids {
		if _, exists := g.nodeData[id]; !exists {
			return nil, ErrNodeNotFound
		}
	}
	// 2) Gather in input order.
	out := make([]N, 0, len(ids))
	for _, id := range ids {
		out = append(out, g.nodeData[id])
	}

	return out, nil
}

// EdgesData returns the payloads for the given edge ids, output order
// matching input order. All-or-nothing like NodesData, failing with
// ErrEdgeNotFound.
// Complexity: O(len(ids)).
func (g *Graph[K, N, E]) EdgesData(ids []K) ([]E, error) {
	if g.topo.Closed() {
		return nil, ErrClosed
	}
	for _, id := range ids {
		if _, exists := g.edgeData[id]; !exists {
			return nil, ErrEdgeNotFound
		}
	}
	out := make([]E, 0, len(ids))
	for _, id := range ids {
		out = append(out, g.edgeData[id])
	}

	return out, nil
}

// Topology pass-throughs:
////////////////////

// HasNode reports whether id is a current node. O(1).
func (g *Graph[K, N, E]) HasNode(id K) bool { return g.topo.HasNode(id) }

// HasEdge reports whether id is a current edge. O(1).
func (g *Graph[K, N, E]) HasEdge(id K) bool { return g.topo.HasEdge(id) }

// NodeCount returns the number of current nodes. O(1).
func (g *Graph[K, N, E]) NodeCount() int { return g.topo.NodeCount() }

// EdgeCount returns the number of current edges. O(1).
func (g *Graph[K, N, E]) EdgeCount() int { return g.topo.EdgeCount() }

// Nodes returns all node ids in insertion order. O(V).
func (g *Graph[K, N, E]) Nodes() []K { return g.topo.Nodes() }

// Edges returns all edge ids in insertion order. O(E).
func (g *Graph[K, N, E]) Edges() []K { return g.topo.Edges() }

// Endpoints returns the ordered endpoint pair of an edge. O(1).
func (g *Graph[K, N, E]) Endpoints(id K) (from, to K, err error) {
	return g.topo.Endpoints(id)
}

// EdgesBetween returns the ids of all edges connecting n1 and n2 in
// insertion order, without removing them. O(E).
func (g *Graph[K, N, E]) EdgesBetween(n1, n2 K) ([]K, error) {
	return g.topo.EdgesBetween(n1, n2)
}

// Directed reports the construction-time edge matching semantics.
func (g *Graph[K, N, E]) Directed() bool { return g.topo.Directed() }

// Lifecycle:
////////////////////

// Clone returns an independent copy: deep-copied topology and fresh payload
// maps. Payload values themselves are copied by assignment; pointer-typed
// payloads share their referents.
// Complexity: O(V + E).
func (g *Graph[K, N, E]) Clone() *Graph[K, N, E] {
	return &Graph[K, N, E]{
		topo:     g.topo.Clone(),
		nodeData: maps.Clone(g.nodeData),
		edgeData: maps.Clone(g.edgeData),
	}
}

// Clear resets the graph to empty keeping the directedness flag.
// A closed graph stays closed.
func (g *Graph[K, N, E]) Clear() {
	if g.topo.Closed() {
		return
	}
	g.topo.Clear()
	g.nodeData = make(map[K]N)
	g.edgeData = make(map[K]E)
}

// Close releases the engine and both payload maps. Every later call on the
// graph, including a second Close, fails with ErrClosed.
func (g *Graph[K, N, E]) Close() error {
	if err := g.topo.Close(); err != nil {
		return err
	}
	g.nodeData = nil
	g.edgeData = nil

	return nil
}
