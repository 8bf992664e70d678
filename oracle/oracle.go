// Package oracle provides a second, structurally independent recomputation
// of shortest-path cost over a topology.Topology: Bellman-Ford run by
// gonum over an exported gonum.org/v1/gonum/graph/simple.WeightedUndirectedGraph.
//
// Bellman-Ford is the closer structural analogue of the distance-vector
// protocol being simulated — both relax edges toward a fixed point — so
// agreement between this oracle and package shortestpath's Dijkstra run
// is itself evidence the protocol converges to the right answer. Neither
// oracle ever feeds back into the simulation; both exist only to verify
// it.
package oracle

import (
	"sort"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/nsolovey/distvec/node"
	"github.com/nsolovey/distvec/topology"
)

// BellmanFordFrom computes the shortest cost from source to every other
// node reachable in topo using gonum's Bellman-Ford implementation.
// Unreachable nodes are absent from the returned map. Returns false if
// source is not a node of topo.
func BellmanFordFrom(topo *topology.Topology, source node.NodeID) (map[node.NodeID]int, bool) {
	ids := topo.Nodes()
	index := make(map[topology.NodeID]int64, len(ids))
	byIndex := make(map[int64]topology.NodeID, len(ids))
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for i, id := range ids {
		index[id] = int64(i)
		byIndex[int64(i)] = id
	}

	g := simple.NewWeightedUndirectedGraph(0, 0)
	for _, id := range ids {
		g.AddNode(simple.Node(index[id]))
	}
	seen := make(map[[2]int64]bool)
	for _, e := range topo.Edges() {
		u, v := index[e.Source], index[e.Target]
		key := [2]int64{u, v}
		if seen[key] {
			continue
		}
		seen[key] = true
		g.SetWeightedEdge(simple.WeightedEdge{
			F: simple.Node(u),
			T: simple.Node(v),
			W: float64(e.Cost),
		})
	}

	srcIdx, ok := index[topology.NodeID(source)]
	if !ok {
		return nil, false
	}

	shortest, ok := path.BellmanFordFrom(simple.Node(srcIdx), g)
	if !ok {
		return nil, false
	}

	out := make(map[node.NodeID]int)
	out[source] = 0
	for _, id := range ids {
		if id == topology.NodeID(source) {
			continue
		}
		nodes, w := shortest.To(index[id])
		if len(nodes) == 0 {
			continue
		}
		out[node.NodeID(id)] = int(w)
	}
	return out, true
}
