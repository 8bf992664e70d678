// Package spanningtree extracts a minimum spanning tree from a
// topology.Topology via Kruskal's algorithm — a read-only, non-authoritative
// network-design diagnostic ("what is the cheapest backbone that still
// connects everyone"). It never feeds back into routing.
package spanningtree

import (
	"sort"

	"github.com/nsolovey/distvec/node"
	"github.com/nsolovey/distvec/topology"
)

// Edge is one link selected into the minimum spanning tree.
type Edge struct {
	Source node.NodeID
	Target node.NodeID
	Cost   node.LinkCost
}

// Kruskal computes the minimum spanning tree of topo using a disjoint-set
// union-find with path compression and union by rank. Edges are
// considered in ascending cost, tied broken by the (source, target) order
// topo.Edges() reports them in, for determinism.
//
// Returns ErrDisconnected if topo has more than one node and is not fully
// connected.
func Kruskal(topo *topology.Topology) ([]Edge, node.LinkCost, error) {
	ids := topo.Nodes()
	if len(ids) <= 1 {
		return nil, 0, nil
	}

	edges := topo.Edges()
	sort.SliceStable(edges, func(i, j int) bool { return edges[i].Cost < edges[j].Cost })

	parent := make(map[topology.NodeID]topology.NodeID, len(ids))
	rank := make(map[topology.NodeID]int, len(ids))
	for _, id := range ids {
		parent[id] = id
	}

	var find func(topology.NodeID) topology.NodeID
	find = func(u topology.NodeID) topology.NodeID {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}
	union := func(u, v topology.NodeID) {
		ru, rv := find(u), find(v)
		if ru == rv {
			return
		}
		if rank[ru] < rank[rv] {
			parent[ru] = rv
		} else {
			parent[rv] = ru
			if rank[ru] == rank[rv] {
				rank[ru]++
			}
		}
	}

	var mst []Edge
	var total node.LinkCost
	for _, e := range edges {
		if find(e.Source) == find(e.Target) {
			continue
		}
		union(e.Source, e.Target)
		mst = append(mst, Edge{Source: node.NodeID(e.Source), Target: node.NodeID(e.Target), Cost: node.LinkCost(e.Cost)})
		total += node.LinkCost(e.Cost)
		if len(mst) == len(ids)-1 {
			break
		}
	}

	if len(mst) < len(ids)-1 {
		return nil, 0, ErrDisconnected
	}
	return mst, total, nil
}
