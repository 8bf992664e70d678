package shortestpath_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nsolovey/distvec/node"
	"github.com/nsolovey/distvec/shortestpath"
	"github.com/nsolovey/distvec/topology"
)

func buildDefaultGraph(t *testing.T) *topology.Topology {
	t.Helper()
	topo := topology.New()
	for _, id := range []string{"A", "B", "C", "D", "E"} {
		topo.AddNode(topology.NodeID(id))
	}
	links := []struct {
		u, v string
		cost int
	}{
		{"A", "B", 5}, {"A", "E", 1},
		{"B", "D", 4},
		{"C", "E", 4},
		{"D", "E", 2},
	}
	for _, l := range links {
		require.NoError(t, topo.SetLink(topology.NodeID(l.u), topology.NodeID(l.v), topology.LinkCost(l.cost)))
	}
	return topo
}

func TestDijkstraMatchesHandComputedCosts(t *testing.T) {
	topo := buildDefaultGraph(t)

	dist, err := shortestpath.Dijkstra(topo, "A")
	require.NoError(t, err)

	require.Equal(t, 0, dist["A"])
	require.Equal(t, 5, dist["B"])
	require.Equal(t, 5, dist["C"])
	require.Equal(t, 3, dist["D"])
	require.Equal(t, 1, dist["E"])
}

func TestDijkstraUnknownSourceErrors(t *testing.T) {
	topo := buildDefaultGraph(t)
	_, err := shortestpath.Dijkstra(topo, "Z")
	require.ErrorIs(t, err, shortestpath.ErrUnknownSource)
}

func TestDijkstraOmitsUnreachableNodes(t *testing.T) {
	topo := topology.New()
	topo.AddNode("A")
	topo.AddNode("B")

	dist, err := shortestpath.Dijkstra(topo, "A")
	require.NoError(t, err)
	require.NotContains(t, dist, node.NodeID("B"))
}
