// Package matrixview projects a topology.Topology into a dense N×N
// adjacency matrix: an alternate, array-indexed read path for
// get_connection-style queries, and a direct witness of the graph
// symmetry invariant via Symmetric.
package matrixview

import "github.com/nsolovey/distvec/topology"

// Matrix is a dense adjacency-matrix view of a Topology at the moment it
// was built. Order maps row/column index back to node ID; Data[i][j]
// holds the link cost between Order[i] and Order[j], or zero if no link
// exists.
type Matrix struct {
	Order []topology.NodeID
	Data  [][]topology.LinkCost

	index map[topology.NodeID]int
}

// Build extracts a Matrix from topo's current nodes and links, with rows
// and columns ordered by topo.Nodes() (insertion order).
func Build(topo *topology.Topology) Matrix {
	order := topo.Nodes()
	n := len(order)

	index := make(map[topology.NodeID]int, n)
	for i, id := range order {
		index[id] = i
	}

	data := make([][]topology.LinkCost, n)
	for i := range data {
		data[i] = make([]topology.LinkCost, n)
	}
	for _, e := range topo.Edges() {
		i, j := index[e.Source], index[e.Target]
		data[i][j] = e.Cost
		data[j][i] = e.Cost
	}

	return Matrix{Order: order, Data: data, index: index}
}

// VertexCount returns the matrix's dimension.
func (m Matrix) VertexCount() int { return len(m.Order) }

// Lookup returns the link cost between u and v, and whether a link
// exists — an alternate implementation path to Topology.LinkCostOf for
// callers that already hold a Matrix.
func (m Matrix) Lookup(u, v topology.NodeID) (topology.LinkCost, bool) {
	i, ok := m.index[u]
	if !ok {
		return 0, false
	}
	j, ok := m.index[v]
	if !ok {
		return 0, false
	}
	cost := m.Data[i][j]
	return cost, cost != 0
}

// Symmetric reports whether the matrix is symmetric — Data[i][j] ==
// Data[j][i] for every pair — which directly witnesses invariant 1 for
// any topology reachable only through Topology's mutation methods.
func (m Matrix) Symmetric() bool {
	n := len(m.Order)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if m.Data[i][j] != m.Data[j][i] {
				return false
			}
		}
	}
	return true
}
