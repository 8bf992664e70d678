package topology_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/nsolovey/distvec/topology"
)

type TopologySuite struct {
	suite.Suite
	t *topology.Topology
}

func (s *TopologySuite) SetupTest() {
	s.t = topology.New()
}

func (s *TopologySuite) TestAddNodeIdempotent() {
	require := require.New(s.T())
	s.t.AddNode("A")
	s.t.AddNode("A")
	require.Equal([]topology.NodeID{"A"}, s.t.Nodes())
}

func (s *TopologySuite) TestSetLinkMirrorsBothEndpoints() {
	require := require.New(s.T())
	s.t.AddNode("A")
	s.t.AddNode("B")
	require.NoError(s.t.SetLink("A", "B", 5))

	costAB, ok := s.t.LinkCostOf("A", "B")
	require.True(ok)
	require.Equal(topology.LinkCost(5), costAB)

	costBA, ok := s.t.LinkCostOf("B", "A")
	require.True(ok)
	require.Equal(topology.LinkCost(5), costBA)
}

func (s *TopologySuite) TestSetLinkRejectsSelfLoop() {
	s.t.AddNode("A")
	require.ErrorIs(s.T(), s.t.SetLink("A", "A", 1), topology.ErrSelfLoop)
}

func (s *TopologySuite) TestSetLinkRejectsUnknownNode() {
	s.t.AddNode("A")
	require.ErrorIs(s.T(), s.t.SetLink("A", "Z", 1), topology.ErrUnknownNode)
}

func (s *TopologySuite) TestRemoveNodePurgesIncidentLinks() {
	require := require.New(s.T())
	s.t.AddNode("A")
	s.t.AddNode("B")
	s.t.AddNode("C")
	require.NoError(s.t.SetLink("A", "B", 1))
	require.NoError(s.t.SetLink("B", "C", 2))

	s.t.RemoveNode("B")

	require.False(s.t.HasNode("B"))
	require.Empty(s.t.Neighbors("A"))
	require.Empty(s.t.Neighbors("C"))
}

func (s *TopologySuite) TestRemoveLinkIsSymmetric() {
	require := require.New(s.T())
	s.t.AddNode("A")
	s.t.AddNode("B")
	require.NoError(s.t.SetLink("A", "B", 3))

	s.t.RemoveLink("A", "B")

	_, ok := s.t.LinkCostOf("A", "B")
	require.False(ok)
	_, ok = s.t.LinkCostOf("B", "A")
	require.False(ok)
}

func (s *TopologySuite) TestNeighborsPreserveInsertionOrder() {
	require := require.New(s.T())
	s.t.AddNode("A")
	s.t.AddNode("B")
	s.t.AddNode("C")
	s.t.AddNode("D")
	require.NoError(s.t.SetLink("A", "C", 1))
	require.NoError(s.t.SetLink("A", "B", 1))
	require.NoError(s.t.SetLink("A", "D", 1))

	require.Equal([]topology.NodeID{"C", "B", "D"}, s.t.Neighbors("A"))
}

func (s *TopologySuite) TestEdgesListedFromLowerEndpointOnce() {
	require := require.New(s.T())
	s.t.AddNode("B")
	s.t.AddNode("A")
	require.NoError(s.t.SetLink("B", "A", 7))

	edges := s.t.Edges()
	require.Len(edges, 1)
	require.Equal(topology.NodeID("A"), edges[0].Source)
	require.Equal(topology.NodeID("B"), edges[0].Target)
	require.Equal(topology.LinkCost(7), edges[0].Cost)
}

func (s *TopologySuite) TestMaxLexicographicNode() {
	require := require.New(s.T())
	_, ok := s.t.MaxLexicographicNode()
	require.False(ok)

	s.t.AddNode("A")
	s.t.AddNode("C")
	s.t.AddNode("B")
	max, ok := s.t.MaxLexicographicNode()
	require.True(ok)
	require.Equal(topology.NodeID("C"), max)
}

func TestTopologySuite(t *testing.T) {
	suite.Run(t, new(TopologySuite))
}
