package matrixview_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nsolovey/distvec/matrixview"
	"github.com/nsolovey/distvec/topology"
)

func TestBuildAndLookupRoundTrips(t *testing.T) {
	topo := topology.New()
	for _, id := range []string{"A", "B", "C"} {
		topo.AddNode(topology.NodeID(id))
	}
	require.NoError(t, topo.SetLink("A", "B", 5))
	require.NoError(t, topo.SetLink("B", "C", 2))

	m := matrixview.Build(topo)
	require.Equal(t, 3, m.VertexCount())

	cost, ok := m.Lookup("A", "B")
	require.True(t, ok)
	require.Equal(t, topology.LinkCost(5), cost)

	_, ok = m.Lookup("A", "C")
	require.False(t, ok)
}

func TestSymmetricTrueForTopologyMutatedOnlyThroughSetLink(t *testing.T) {
	topo := topology.New()
	for _, id := range []string{"A", "B"} {
		topo.AddNode(topology.NodeID(id))
	}
	require.NoError(t, topo.SetLink("A", "B", 3))

	require.True(t, matrixview.Build(topo).Symmetric())
}

func TestLookupUnknownNodeIsNotFound(t *testing.T) {
	topo := topology.New()
	topo.AddNode("A")

	m := matrixview.Build(topo)
	_, ok := m.Lookup("A", "Z")
	require.False(t, ok)
}
