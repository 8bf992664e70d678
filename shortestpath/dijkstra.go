// Package shortestpath recomputes true shortest-path costs over a
// topology.Topology independently of the distance-vector protocol, as an
// oracle to check the protocol's routing tables against (see package
// oracle for the Bellman-Ford second opinion).
//
// Complexity:
//
//   - Time:  O((V + E) log V) via a binary-heap priority queue.
//   - Space: O(V + E).
package shortestpath

import (
	"container/heap"

	"github.com/nsolovey/distvec/node"
	"github.com/nsolovey/distvec/topology"
)

// Dijkstra computes the shortest cost from source to every other node
// reachable in topo. All link costs are assumed strictly positive, which
// the Topology invariant guarantees, so Dijkstra is valid even though the
// protocol itself never runs it.
//
// Unreachable nodes are absent from the returned map.
func Dijkstra(topo *topology.Topology, source node.NodeID) (map[node.NodeID]int, error) {
	if !topo.HasNode(topology.NodeID(source)) {
		return nil, ErrUnknownSource
	}

	dist := make(map[node.NodeID]int)
	visited := make(map[node.NodeID]bool)

	pq := make(nodePQ, 0)
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: source, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u := item.id
		if visited[u] {
			continue
		}
		visited[u] = true
		dist[u] = item.dist

		for _, v := range topo.Neighbors(topology.NodeID(u)) {
			nv := node.NodeID(v)
			if visited[nv] {
				continue
			}
			cost, _ := topo.LinkCostOf(topology.NodeID(u), v)
			newDist := item.dist + int(cost)
			if existing, ok := dist[nv]; ok && newDist >= existing {
				continue
			}
			heap.Push(&pq, &nodeItem{id: nv, dist: newDist})
		}
	}

	return dist, nil
}

type nodeItem struct {
	id   node.NodeID
	dist int
}

type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
