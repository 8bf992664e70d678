package command_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/nsolovey/distvec/command"
	"github.com/nsolovey/distvec/sim"
)

func defaultGraph() map[string]map[string]float64 {
	return map[string]map[string]float64{
		"A": {"B": 5, "E": 1},
		"B": {"A": 5, "D": 4},
		"C": {"E": 4},
		"D": {"B": 4, "E": 2},
		"E": {"A": 1, "C": 4, "D": 2},
	}
}

type FacadeSuite struct {
	suite.Suite
}

func TestFacadeSuite(t *testing.T) {
	suite.Run(t, new(FacadeSuite))
}

func (s *FacadeSuite) TestInitReturnsSnapshotWithNoMessages() {
	f := command.New()
	snap, err := f.Init(defaultGraph())
	s.Require().NoError(err)
	s.Require().Len(snap.Nodes, 5)
	s.Require().Empty(snap.Messages)
}

// Scenario 1 — Default graph convergence (§8).
func (s *FacadeSuite) TestRunToQuiescenceMatchesScenario1() {
	f := command.New(sim.WithMaxSimulatedTime(100))
	_, err := f.Init(defaultGraph())
	s.Require().NoError(err)

	result, err := f.RunToQuiescence()
	s.Require().NoError(err)
	s.Require().False(result.TimedOut)

	routing, err := f.GetRoutingAt(result.MaxTime)
	s.Require().NoError(err)

	expect := map[string]map[string][2]interface{}{
		"A": {"B": {5, "B"}, "C": {5, "E"}, "D": {3, "E"}, "E": {1, "E"}},
		"B": {"A": {5, "A"}, "C": {10, "D"}, "D": {4, "D"}, "E": {6, "D"}},
		"C": {"A": {5, "E"}, "B": {10, "E"}, "D": {6, "E"}, "E": {4, "E"}},
		"D": {"A": {3, "E"}, "B": {4, "B"}, "C": {6, "E"}, "E": {2, "E"}},
		"E": {"A": {1, "A"}, "B": {6, "D"}, "C": {4, "C"}, "D": {2, "D"}},
	}
	for from, dests := range expect {
		for dest, want := range dests {
			entry := routing[from][dest]
			s.Require().Equal(want[0], entry.Cost, "%s->%s cost", from, dest)
		}
	}
}

// Scenario 3 — Node addition in isolation.
func (s *FacadeSuite) TestAddNodeStartsWithNoDirectLinks() {
	f := command.New()
	_, err := f.Init(defaultGraph())
	s.Require().NoError(err)
	_, err = f.RunToQuiescence()
	s.Require().NoError(err)

	snap, err := f.AddNode()
	s.Require().NoError(err)
	s.Require().Len(snap.Nodes, 6)

	log, err := f.GetConnection("F")
	s.Require().NoError(err)
	s.Require().Empty(log.Cost)
}

func (s *FacadeSuite) TestEditNodeRejectsNonIntegerCost() {
	f := command.New()
	_, err := f.Init(defaultGraph())
	s.Require().NoError(err)

	_, err = f.EditNode("A", map[string]float64{"B": 2.5})
	s.Require().ErrorIs(err, command.ErrNonIntegerCost)
}

func (s *FacadeSuite) TestEditNodeRejectsUnknownDestination() {
	f := command.New()
	_, err := f.Init(defaultGraph())
	s.Require().NoError(err)

	_, err = f.EditNode("A", map[string]float64{"Z": 3})
	s.Require().ErrorIs(err, command.ErrUnknownDestination)
}

func (s *FacadeSuite) TestEditNodeRejectsSelfLoop() {
	f := command.New()
	_, err := f.Init(defaultGraph())
	s.Require().NoError(err)

	_, err = f.EditNode("A", map[string]float64{"A": 3})
	s.Require().ErrorIs(err, command.ErrSelfLoop)
}

func (s *FacadeSuite) TestEditNodeDiscardsBlankDestinations() {
	f := command.New()
	_, err := f.Init(defaultGraph())
	s.Require().NoError(err)

	_, err = f.EditNode("A", map[string]float64{"B": 5, "  ": 9})
	s.Require().NoError(err)
}

func (s *FacadeSuite) TestGetSnapshotAtUnknownTimestampIsLookupError() {
	f := command.New()
	_, err := f.Init(defaultGraph())
	s.Require().NoError(err)

	_, err = f.GetSnapshotAt(12345)
	s.Require().ErrorIs(err, command.ErrTimestampNotFound)
}

func (s *FacadeSuite) TestRemoveNodeUnknownIsNodeNotFound() {
	f := command.New()
	_, err := f.Init(defaultGraph())
	s.Require().NoError(err)

	_, err = f.RemoveNode("Z")
	s.Require().ErrorIs(err, command.ErrNodeNotFound)
}

func (s *FacadeSuite) TestResetRestoresInitialSnapshot() {
	f := command.New()
	initial, err := f.Init(defaultGraph())
	s.Require().NoError(err)

	_, err = f.RunToQuiescence()
	s.Require().NoError(err)
	_, err = f.AddNode()
	s.Require().NoError(err)

	reset, err := f.Reset()
	s.Require().NoError(err)
	s.Require().Len(reset.Nodes, len(initial.Nodes))
	s.Require().Empty(reset.Messages)
}

func (s *FacadeSuite) TestConnectedComponentsSingleComponentOnDefaultGraph() {
	f := command.New()
	_, err := f.Init(defaultGraph())
	s.Require().NoError(err)

	comps := f.ConnectedComponents()
	s.Require().Len(comps, 1)
	s.Require().Len(comps[0], 5)
}

func (s *FacadeSuite) TestAdjacencyMatrixIsSymmetric() {
	f := command.New()
	_, err := f.Init(defaultGraph())
	s.Require().NoError(err)

	matrix := f.AdjacencyMatrix()
	s.Require().True(matrix.Symmetric)
	s.Require().Len(matrix.Order, 5)
}

func (s *FacadeSuite) TestVerifyShortestPathsHasNoMismatchesAtQuiescence() {
	f := command.New()
	_, err := f.Init(defaultGraph())
	s.Require().NoError(err)
	_, err = f.RunToQuiescence()
	s.Require().NoError(err)

	result := f.VerifyShortestPaths()
	s.Require().True(result.SingleComponent)
	s.Require().Empty(result.Mismatches)
}

func (s *FacadeSuite) TestMinimumSpanningTreeCoversAllNodes() {
	f := command.New()
	_, err := f.Init(defaultGraph())
	s.Require().NoError(err)

	mst, err := f.MinimumSpanningTree()
	s.Require().NoError(err)
	s.Require().Len(mst.Edges, 4) // 5 nodes -> 4 edges in a spanning tree
}
