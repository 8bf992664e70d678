// Package topogen builds deterministic adjacency fixtures beyond the
// five-node running example, in the map[node.NodeID]map[node.NodeID]node.LinkCost
// shape sim.New accepts, for property-based tests and stress-test example
// programs.
//
// Every generator here is deterministic given its inputs (and, where
// randomness is involved, a seed) — the point is a reproducible fixture,
// not a realistic one.
package topogen

import (
	"math/rand"

	"github.com/nsolovey/distvec/node"
)

// excelColumnID returns the Excel-style column name for idx (0 -> "A",
// 25 -> "Z", 26 -> "AA", ...). Up to "Z" this agrees with the IDs
// sim.Simulation.AddNode allocates; past "Z" it does not, since AddNode
// increments only the last character.
func excelColumnID(idx int) node.NodeID {
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return node.NodeID(runes)
}

func empty(n int) map[node.NodeID]map[node.NodeID]node.LinkCost {
	adj := make(map[node.NodeID]map[node.NodeID]node.LinkCost, n)
	for i := 0; i < n; i++ {
		adj[excelColumnID(i)] = make(map[node.NodeID]node.LinkCost)
	}
	return adj
}

func link(adj map[node.NodeID]map[node.NodeID]node.LinkCost, u, v node.NodeID, cost node.LinkCost) {
	adj[u][v] = cost
	adj[v][u] = cost
}

// Path returns a simple path of n nodes (n >= 2), each link costing cost.
func Path(n int, cost node.LinkCost) map[node.NodeID]map[node.NodeID]node.LinkCost {
	adj := empty(n)
	for i := 1; i < n; i++ {
		link(adj, excelColumnID(i-1), excelColumnID(i), cost)
	}
	return adj
}

// Complete returns a complete graph of n nodes, each link costing cost.
func Complete(n int, cost node.LinkCost) map[node.NodeID]map[node.NodeID]node.LinkCost {
	adj := empty(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			link(adj, excelColumnID(i), excelColumnID(j), cost)
		}
	}
	return adj
}

// Grid returns a rows x cols grid graph (each node linked to its
// immediate row/column neighbors), each link costing cost.
func Grid(rows, cols int, cost node.LinkCost) map[node.NodeID]map[node.NodeID]node.LinkCost {
	adj := empty(rows * cols)
	idx := func(r, c int) int { return r*cols + c }
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				link(adj, excelColumnID(idx(r, c)), excelColumnID(idx(r, c+1)), cost)
			}
			if r+1 < rows {
				link(adj, excelColumnID(idx(r, c)), excelColumnID(idx(r+1, c)), cost)
			}
		}
	}
	return adj
}

// RandomConnected returns a random connected graph of n nodes (n >= 1):
// a random spanning tree (so connectivity is guaranteed) plus up to
// extraEdges random links, all costs drawn from [1, maxCost]. A draw that
// picks the same node twice adds nothing, and a draw that picks an
// already-linked pair overwrites that link's cost. Deterministic for a
// given seed.
func RandomConnected(n, extraEdges int, maxCost node.LinkCost, seed int64) map[node.NodeID]map[node.NodeID]node.LinkCost {
	adj := empty(n)
	if n <= 1 {
		return adj
	}
	rng := rand.New(rand.NewSource(seed))

	randCost := func() node.LinkCost { return node.LinkCost(rng.Intn(int(maxCost)) + 1) }

	// Random spanning tree: attach node i to a uniformly chosen earlier node.
	for i := 1; i < n; i++ {
		parent := rng.Intn(i)
		link(adj, excelColumnID(parent), excelColumnID(i), randCost())
	}

	for e := 0; e < extraEdges; e++ {
		u := rng.Intn(n)
		v := rng.Intn(n)
		if u == v {
			continue
		}
		link(adj, excelColumnID(u), excelColumnID(v), randCost())
	}
	return adj
}
