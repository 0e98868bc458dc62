// Package graph: the Graph type, construction options, and re-exported
// sentinel errors. Method implementations live in methods.go.

package graph

import "github.com/katalvlaran/attrgraph/topo"

// Sentinel errors, shared with the topology engine so errors.Is works
// across both packages.
var (
	// ErrNodeExists indicates AddNode was called with an id already present.
	ErrNodeExists = topo.ErrNodeExists

	// ErrEdgeExists indicates AddEdge was called with an id already present.
	ErrEdgeExists = topo.ErrEdgeExists

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = topo.ErrNodeNotFound

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = topo.ErrEdgeNotFound

	// ErrClosed indicates the graph was used after Close.
	ErrClosed = topo.ErrClosed
)

// Option configures a Graph before creation.
type Option = topo.Option

// WithDirected selects directed (true) or undirected (false) edge semantics
// for the underlying engine; immutable for the life of the instance.
func WithDirected(directed bool) Option {
	return topo.WithDirected(directed)
}

// Graph is an attributed graph over identifier type K with one payload
// value of type N per node and one of type E per edge.
//
// The engine owns structure, the payload maps own data; methods keep the
// two synchronized by mutating payloads only on engine success.
// The zero value is not usable; construct with New.
type Graph[K comparable, N, E any] struct {
	topo     *topo.Topo[K]
	nodeData map[K]N
	edgeData map[K]E
}

// New creates an empty attributed graph. By default edges are undirected.
// Complexity: O(len(opts)).
func New[K comparable, N, E any](opts ...Option) *Graph[K, N, E] {
	return &Graph[K, N, E]{
		topo:     topo.New[K](opts...),
		nodeData: make(map[K]N),
		edgeData: make(map[K]E),
	}
}
