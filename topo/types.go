// Package topo: central types, sentinel errors, options, and the constructor.
//
// This file declares Topo, Option, the sentinel errors, and New.
// All method implementations live in methods.go.

package topo

import "errors"

// Sentinel errors for topology operations.
var (
	// ErrNodeExists indicates AddNode was called with an id already present.
	ErrNodeExists = errors.New("topo: node already exists")

	// ErrEdgeExists indicates AddEdge was called with an id already present.
	ErrEdgeExists = errors.New("topo: edge already exists")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("topo: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("topo: edge not found")

	// ErrClosed indicates the engine was used after Close.
	ErrClosed = errors.New("topo: use after Close")
)

// endpoints records the ordered (from, to) pair of an edge.
// For undirected engines the order is storage order only; matching treats
// (from, to) and (to, from) as equivalent.
type endpoints[K comparable] struct {
	from K
	to   K
}

// Topo is the topology engine: node-id set, edge-id catalog with endpoint
// records, and insertion-order indexes for deterministic enumeration.
//
// The zero value is not usable; construct with New.
type Topo[K comparable] struct {
	// directed selects edge matching semantics; immutable after New.
	directed bool

	// closed is set by Close; every later call fails with ErrClosed.
	closed bool

	// nodes is the authoritative node-id set.
	nodes map[K]struct{}

	// edges maps edge id → ordered endpoint pair.
	edges map[K]endpoints[K]

	// nodeOrder and edgeOrder record insertion order of the live ids.
	// They are the enumeration order of Nodes/Edges and of every
	// "removed edge ids" result.
	nodeOrder []K
	edgeOrder []K
}

// Option configures an engine before creation.
type Option func(*config)

// config collects construction-time flags so Option stays free of the
// engine's type parameter.
type config struct {
	directed bool
}

// WithDirected selects directed (true) or undirected (false) edge semantics.
// The flag is fixed for the life of the instance.
func WithDirected(directed bool) Option {
	return func(c *config) { c.directed = directed }
}

// New creates an empty engine for node/edge identifiers of type K.
// By default the engine is undirected.
// Complexity: O(len(opts)).
func New[K comparable](opts ...Option) *Topo[K] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Topo[K]{
		directed: cfg.directed,
		nodes:    make(map[K]struct{}),
		edges:    make(map[K]endpoints[K]),
	}
}
