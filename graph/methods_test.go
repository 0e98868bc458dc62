package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/attrgraph/graph"
)

// GraphSuite exercises the attributed container over int ids with int
// payloads on both nodes and edges.
type GraphSuite struct {
	suite.Suite
	g *graph.Graph[int, int, int]
}

func (s *GraphSuite) SetupTest() {
	// Directed by default here; undirected behavior is covered explicitly.
	s.g = graph.New[int, int, int](graph.WithDirected(true))
}

// requireConsistent asserts the cross-layer invariants: payload entries
// exist for exactly the live ids, and no edge dangles.
func (s *GraphSuite) requireConsistent() {
	require := require.New(s.T())

	nodes := s.g.Nodes()
	require.Equal(s.g.NodeCount(), len(nodes))
	nodeData, err := s.g.NodesData(nodes)
	require.NoError(err, "every live node id must have a payload")
	require.Len(nodeData, len(nodes))

	edges := s.g.Edges()
	require.Equal(s.g.EdgeCount(), len(edges))
	edgeData, err := s.g.EdgesData(edges)
	require.NoError(err, "every live edge id must have a payload")
	require.Len(edgeData, len(edges))

	for _, eid := range edges {
		from, to, err := s.g.Endpoints(eid)
		require.NoError(err)
		require.True(s.g.HasNode(from), "edge %d dangles at from=%d", eid, from)
		require.True(s.g.HasNode(to), "edge %d dangles at to=%d", eid, to)
	}
}

func (s *GraphSuite) TestAddNodeStoresPayload() {
	require := require.New(s.T())
	require.NoError(s.g.AddNode(3, 4))
	require.Equal(1, s.g.NodeCount())

	data, err := s.g.NodeData(3)
	require.NoError(err)
	require.Equal(4, data)
	s.requireConsistent()
}

func (s *GraphSuite) TestAddEdgeStoresPayload() {
	require := require.New(s.T())
	require.NoError(s.g.AddNode(3, 4))
	require.NoError(s.g.AddNode(4, 5))
	require.NoError(s.g.AddEdge(1, 3, 4, 6))

	data, err := s.g.EdgeData(1)
	require.NoError(err)
	require.Equal(6, data)
	require.ElementsMatch([]int{3, 4}, s.g.Nodes())
	s.requireConsistent()
}

func (s *GraphSuite) TestDuplicateNodeRejectedAtomically() {
	require := require.New(s.T())
	require.NoError(s.g.AddNode(3, 4))
	require.ErrorIs(s.g.AddNode(3, 99), graph.ErrNodeExists)
	require.Equal(1, s.g.NodeCount())

	// The losing payload must not leak through.
	data, err := s.g.NodeData(3)
	require.NoError(err)
	require.Equal(4, data)
	s.requireConsistent()
}

func (s *GraphSuite) TestDuplicateEdgeRejectedAtomically() {
	require := require.New(s.T())
	require.NoError(s.g.AddNode(3, 0))
	require.NoError(s.g.AddNode(4, 0))
	require.NoError(s.g.AddEdge(1, 3, 4, 6))
	require.ErrorIs(s.g.AddEdge(1, 4, 3, 99), graph.ErrEdgeExists)

	data, err := s.g.EdgeData(1)
	require.NoError(err)
	require.Equal(6, data)
	s.requireConsistent()
}

func (s *GraphSuite) TestAddEdgeMissingEndpointLeavesNoPayload() {
	require := require.New(s.T())
	require.NoError(s.g.AddNode(3, 4))
	require.ErrorIs(s.g.AddEdge(1, 3, 9, 6), graph.ErrNodeNotFound)

	_, err := s.g.EdgeData(1)
	require.ErrorIs(err, graph.ErrEdgeNotFound)
	s.requireConsistent()
}

func (s *GraphSuite) TestRemoveNodeWithEdges() {
	require := require.New(s.T())
	require.NoError(s.g.AddNode(3, 4))
	require.NoError(s.g.AddNode(4, 4))
	require.NoError(s.g.AddEdge(1, 3, 4, 6))

	removed, err := s.g.RemoveNode(3)
	require.NoError(err)
	require.Equal([]int{1}, removed)
	require.Equal(1, s.g.NodeCount())
	require.True(s.g.HasNode(4))
	require.Equal(0, s.g.EdgeCount())

	_, err = s.g.EdgeData(1)
	require.ErrorIs(err, graph.ErrEdgeNotFound, "edge payload must go with the edge")
	_, err = s.g.NodeData(3)
	require.ErrorIs(err, graph.ErrNodeNotFound, "node payload must go with the node")
	s.requireConsistent()
}

func (s *GraphSuite) TestRemoveEdgesBetween() {
	require := require.New(s.T())
	require.NoError(s.g.AddNode(3, 4))
	require.NoError(s.g.AddNode(4, 4))
	require.NoError(s.g.AddEdge(1, 3, 4, 6))
	require.NoError(s.g.AddEdge(2, 3, 4, 6))

	removed, err := s.g.RemoveEdgesBetween(3, 4)
	require.NoError(err)
	require.Len(removed, 2)
	require.ElementsMatch([]int{1, 2}, removed)
	require.Equal(0, s.g.EdgeCount())

	_, err = s.g.EdgesData([]int{1})
	require.ErrorIs(err, graph.ErrEdgeNotFound)
	s.requireConsistent()
}

func (s *GraphSuite) TestRemoveEdgesBetweenHonorsDirection() {
	require := require.New(s.T())
	ug := graph.New[int, string, string]()
	require.NoError(ug.AddNode(1, "a"))
	require.NoError(ug.AddNode(2, "b"))
	require.NoError(ug.AddEdge(10, 2, 1, "reverse"))

	// Undirected: (1,2) matches the stored (2,1).
	removed, err := ug.RemoveEdgesBetween(1, 2)
	require.NoError(err)
	require.Equal([]int{10}, removed)

	// Directed: the reverse orientation does not match.
	require.NoError(s.g.AddNode(1, 0))
	require.NoError(s.g.AddNode(2, 0))
	require.NoError(s.g.AddEdge(10, 2, 1, 0))
	removed, err = s.g.RemoveEdgesBetween(1, 2)
	require.NoError(err)
	require.Empty(removed)
	require.True(s.g.HasEdge(10))
	s.requireConsistent()
}

func (s *GraphSuite) TestRemoveEdgeById() {
	require := require.New(s.T())
	require.ErrorIs(s.g.RemoveEdge(1), graph.ErrEdgeNotFound)

	require.NoError(s.g.AddNode(3, 0))
	require.NoError(s.g.AddNode(4, 0))
	require.NoError(s.g.AddEdge(1, 3, 4, 6))
	require.NoError(s.g.RemoveEdge(1))
	require.False(s.g.HasEdge(1))
	_, err := s.g.EdgeData(1)
	require.ErrorIs(err, graph.ErrEdgeNotFound)
	s.requireConsistent()
}

func (s *GraphSuite) TestNodesDataAllOrNothing() {
	require := require.New(s.T())
	require.NoError(s.g.AddNode(3, 4))
	require.NoError(s.g.AddNode(4, 5))

	// Any missing id fails the whole batch.
	out, err := s.g.NodesData([]int{1, 7})
	require.ErrorIs(err, graph.ErrNodeNotFound)
	require.Nil(out, "no partial result may escape")

	out, err = s.g.NodesData([]int{3, 7})
	require.ErrorIs(err, graph.ErrNodeNotFound)
	require.Nil(out)

	// Output order equals input order, duplicates included.
	out, err = s.g.NodesData([]int{4, 3, 4})
	require.NoError(err)
	require.Equal([]int{5, 4, 5}, out)
}

func (s *GraphSuite) TestEdgesDataAllOrNothing() {
	require := require.New(s.T())
	require.NoError(s.g.AddNode(3, 0))
	require.NoError(s.g.AddNode(4, 0))
	require.NoError(s.g.AddEdge(1, 3, 4, 10))
	require.NoError(s.g.AddEdge(2, 4, 3, 20))

	out, err := s.g.EdgesData([]int{2, 1})
	require.NoError(err)
	require.Equal([]int{20, 10}, out)

	_, err = s.g.EdgesData([]int{1, 9})
	require.ErrorIs(err, graph.ErrEdgeNotFound)
}

func (s *GraphSuite) TestCloneIndependence() {
	require := require.New(s.T())
	require.NoError(s.g.AddNode(3, 4))
	require.NoError(s.g.AddNode(4, 5))
	require.NoError(s.g.AddEdge(1, 3, 4, 6))

	clone := s.g.Clone()
	_, err := clone.RemoveNode(3)
	require.NoError(err)

	// Original keeps both structure and payloads.
	data, err := s.g.NodeData(3)
	require.NoError(err)
	require.Equal(4, data)
	require.True(s.g.HasEdge(1))
	require.False(clone.HasNode(3))
	s.requireConsistent()
}

func (s *GraphSuite) TestClear() {
	require := require.New(s.T())
	require.NoError(s.g.AddNode(3, 4))
	require.NoError(s.g.AddNode(4, 5))
	require.NoError(s.g.AddEdge(1, 3, 4, 6))

	s.g.Clear()
	require.Equal(0, s.g.NodeCount())
	require.Equal(0, s.g.EdgeCount())
	require.True(s.g.Directed(), "Clear must preserve directedness")

	// Cleared ids are reusable with fresh payloads.
	require.NoError(s.g.AddNode(3, 40))
	data, err := s.g.NodeData(3)
	require.NoError(err)
	require.Equal(40, data)
	s.requireConsistent()
}

func (s *GraphSuite) TestCloseSemantics() {
	require := require.New(s.T())
	require.NoError(s.g.AddNode(3, 4))
	require.NoError(s.g.Close())

	require.ErrorIs(s.g.Close(), graph.ErrClosed)
	require.ErrorIs(s.g.AddNode(5, 0), graph.ErrClosed)
	_, err := s.g.NodeData(3)
	require.ErrorIs(err, graph.ErrClosed)
	_, err = s.g.NodesData([]int{3})
	require.ErrorIs(err, graph.ErrClosed)
	_, err = s.g.RemoveNode(3)
	require.ErrorIs(err, graph.ErrClosed)
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

// TestGraphStructPayloads anchors that payload types are free-form structs,
// not just scalars.
func TestGraphStructPayloads(t *testing.T) {
	require := require.New(t)

	type city struct {
		Name string
		Pop  int
	}
	type road struct {
		Km float64
	}

	g := graph.New[string, city, road]()
	require.NoError(g.AddNode("KBP", city{Name: "Boryspil", Pop: 65000}))
	require.NoError(g.AddNode("LWO", city{Name: "Lviv", Pop: 717000}))
	require.NoError(g.AddEdge("KBP-LWO", "KBP", "LWO", road{Km: 540}))

	got, err := g.EdgeData("KBP-LWO")
	require.NoError(err)
	require.Equal(540.0, got.Km)

	removed, err := g.RemoveNode("KBP")
	require.NoError(err)
	require.Equal([]string{"KBP-LWO"}, removed)
	require.Equal(1, g.NodeCount())
}
