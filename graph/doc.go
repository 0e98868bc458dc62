// Package graph provides the attributed graph container: topology plus one
// caller-supplied payload value per node and per edge, kept in lockstep.
//
// Graph[K, N, E] pairs a topo.Topo[K] engine with two payload maps
// (node id → N, edge id → E). Every mutating operation delegates to the
// engine first; the payload maps change only when the engine reports
// success, mirroring exactly the ids the engine added or removed. The two
// layers therefore never diverge: after any operation the key set of the
// node-payload map equals the node-id set, and likewise for edges.
//
// Payload types are fixed per instance at construction. There is no
// payload-only mutation: data enters with AddNode/AddEdge and leaves when
// the id leaves the topology.
//
// Batch reads (NodesData, EdgesData) are all-or-nothing: the input ids are
// validated before any payload is collected, so a caller never observes a
// partial result.
//
// Errors are the engine's sentinels, re-exported here for convenience
// (graph.ErrNodeNotFound is topo.ErrNodeNotFound, and so on).
//
// Concurrency: none. Wrap the whole Graph in one mutex if it
// must be shared; the topology/payload invariant needs atomicity across
// both layers, so fine-grained locking cannot work.
package graph
