// Package topo implements the topology engine behind attrgraph: the
// authoritative sets of node identifiers and edge identifiers, the edge
// endpoint records, and the directed/undirected matching semantics.
//
// The engine knows nothing about payloads. It answers exactly one family of
// questions — which nodes and edges exist, and how edges connect nodes — and
// enforces the structural invariants the graph overlay relies on:
//
//   - every edge's endpoints reference live nodes (no dangling edges);
//   - node identifiers are unique, edge identifiers are unique;
//   - removing a node removes every edge incident to it first;
//   - a rejected operation leaves all state untouched.
//
// Node and edge identifiers share one type parameter K (any comparable type)
// but live in separate namespaces: a node id and an edge id may coincide in
// value without conflict.
//
// Enumeration order is part of the contract: Nodes, Edges, and every
// "removed edge ids" result follow insertion order. The engine keeps explicit
// order slices next to its lookup maps, since Go map iteration order is
// unspecified.
//
// Concurrency: none. The engine assumes a single logical owner; callers that
// need shared access must wrap the whole structure in one mutex, because the
// cross-structure invariants require atomicity across every internal map.
//
// Errors:
//
//	ErrNodeExists   - AddNode called with an id already in the node set.
//	ErrEdgeExists   - AddEdge called with an id already in the edge set.
//	ErrNodeNotFound - an operation referenced a missing node id.
//	ErrEdgeNotFound - an operation referenced a missing edge id.
//	ErrClosed       - any call after Close.
package topo
