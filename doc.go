// Package attrgraph is an in-memory attributed graph container: graph
// topology (nodes, edges, directed or undirected) bundled with one
// caller-supplied payload value per node and per edge, kept consistent
// under every mutation.
//
// 🚀 What is attrgraph?
//
//	A small, generic, zero-dependency container that brings together:
//		• Topology engine: node/edge identifier sets, endpoint records,
//		  directed vs. undirected matching, duplicate/missing-id rejection
//		• Data overlay: per-node and per-edge payload maps mirrored onto the
//		  topology, so payload keys always equal the live id sets
//		• Deterministic enumeration: insertion order everywhere, including
//		  the edge-id sequences returned by bulk removals
//		• Atomic rejection: a failed operation never mutates any state
//
// ✨ Why choose attrgraph?
//
//   - Generic over identifier and payload types – Graph[K, N, E] with any
//     comparable K and arbitrary N, E
//   - Minimal API, clear naming, explicit error sentinels
//   - Pure Go – no cgo, no hidden deps
//   - Single-owner model – no internal locks to reason about; wrap the
//     whole instance in one mutex if it must be shared
//
// Under the hood, everything is organized under two subpackages:
//
//	topo/  — the topology engine: id sets, endpoints, structural invariants
//	graph/ — the attributed container callers use: topology + payloads
//
// Quick ASCII example:
//
//	    3───4        AddNode(3, "a"), AddNode(4, "b"), AddEdge(1, 3, 4, 9.5)
//
//	one undirected edge (id 1, payload 9.5) between nodes 3 and 4;
//	RemoveNode(3) returns [1] and drops both payload entries with it.
//
// Out of scope: graph algorithms, persistence, concurrency —
// attrgraph is the bookkeeping layer those are built on.
//
//	go get github.com/katalvlaran/attrgraph
package attrgraph
