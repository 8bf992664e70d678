// Package connectivity runs breadth-first reachability checks over a
// topology.Topology: whether the graph is a single connected component
// (needed for invariant 3 — the Bellman-Ford correctness check — to be
// meaningful at all) and, more generally, a partition into components.
package connectivity

import (
	"errors"

	"github.com/nsolovey/distvec/node"
	"github.com/nsolovey/distvec/topology"
)

// ErrUnknownStart is returned by ReachableFrom when start does not exist
// in the topology.
var ErrUnknownStart = errors.New("connectivity: unknown start node")

// ReachableFrom returns every node ID reachable from start (including
// start itself), in visit order.
func ReachableFrom(topo *topology.Topology, start node.NodeID) ([]node.NodeID, error) {
	if !topo.HasNode(topology.NodeID(start)) {
		return nil, ErrUnknownStart
	}

	visited := map[node.NodeID]bool{start: true}
	order := []node.NodeID{start}
	queue := []node.NodeID{start}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, nb := range topo.Neighbors(topology.NodeID(id)) {
			nid := node.NodeID(nb)
			if visited[nid] {
				continue
			}
			visited[nid] = true
			order = append(order, nid)
			queue = append(queue, nid)
		}
	}
	return order, nil
}

// Components partitions every node of topo into connected components.
// Components are ordered by their first node in the topology's insertion
// order; within a component, nodes are in breadth-first visit order.
func Components(topo *topology.Topology) [][]node.NodeID {
	visited := make(map[node.NodeID]bool)
	var components [][]node.NodeID

	for _, id := range topo.Nodes() {
		nid := node.NodeID(id)
		if visited[nid] {
			continue
		}
		group, _ := ReachableFrom(topo, nid)
		for _, g := range group {
			visited[g] = true
		}
		components = append(components, group)
	}
	return components
}

// SingleComponent reports whether topo's nodes form at most one connected
// component (an empty topology counts as single) — the precondition for
// invariant 3 (every routing-table cost equals the true shortest path) to
// be meaningful on the whole graph.
func SingleComponent(topo *topology.Topology) bool {
	return len(Components(topo)) <= 1
}
