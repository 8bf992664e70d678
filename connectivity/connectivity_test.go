package connectivity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nsolovey/distvec/connectivity"
	"github.com/nsolovey/distvec/node"
	"github.com/nsolovey/distvec/topology"
)

func TestReachableFromConnectedGraphCoversEveryNode(t *testing.T) {
	topo := topology.New()
	for _, id := range []string{"A", "B", "C"} {
		topo.AddNode(topology.NodeID(id))
	}
	require.NoError(t, topo.SetLink("A", "B", 1))
	require.NoError(t, topo.SetLink("B", "C", 1))

	reachable, err := connectivity.ReachableFrom(topo, "A")
	require.NoError(t, err)
	require.ElementsMatch(t, []node.NodeID{"A", "B", "C"}, reachable)
}

func TestReachableFromUnknownStartErrors(t *testing.T) {
	topo := topology.New()
	_, err := connectivity.ReachableFrom(topo, "Z")
	require.ErrorIs(t, err, connectivity.ErrUnknownStart)
}

func TestComponentsPartitionsDisjointSubgraphs(t *testing.T) {
	topo := topology.New()
	for _, id := range []string{"A", "B", "C", "D"} {
		topo.AddNode(topology.NodeID(id))
	}
	require.NoError(t, topo.SetLink("A", "B", 1))
	require.NoError(t, topo.SetLink("C", "D", 1))

	comps := connectivity.Components(topo)
	require.Len(t, comps, 2)
	require.False(t, connectivity.SingleComponent(topo))
}

func TestSingleComponentTrueForFullyLinkedGraph(t *testing.T) {
	topo := topology.New()
	for _, id := range []string{"A", "B", "C"} {
		topo.AddNode(topology.NodeID(id))
	}
	require.NoError(t, topo.SetLink("A", "B", 1))
	require.NoError(t, topo.SetLink("B", "C", 1))

	require.True(t, connectivity.SingleComponent(topo))
}

func TestSingleComponentTrueForEmptyTopology(t *testing.T) {
	topo := topology.New()
	require.True(t, connectivity.SingleComponent(topo))
}
