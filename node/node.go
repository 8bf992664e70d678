// Package node implements one router's view of the distance-vector
// protocol: its direct links, the distance vectors most recently
// advertised by its neighbors, the resulting distance table, and the
// cheapest-route table derived from it.
//
// A Node never talks to other nodes directly. It only ever sees two kinds
// of input — a neighbor's advertised vector, or a replacement set of its
// own direct links — and reports whether its best-cost view changed, so
// the caller (package sim) knows whether to re-broadcast.
package node

import "sort"

// NodeID uniquely identifies a node within a simulation.
type NodeID string

// LinkCost is a strictly positive integer link or path cost.
type LinkCost int

// UnreachableThreshold is the sentinel above which a computed path cost is
// treated as "no route": the destination is dropped from the routing
// table rather than stored with a very large cost.
const UnreachableThreshold LinkCost = 1000

// LinkEntry pairs a neighbor with the cost of the direct link to it.
// Slices of LinkEntry (rather than a plain map) are used wherever
// neighbor order matters, since the protocol's tie-break rule depends on
// the order neighbors were learned in.
type LinkEntry struct {
	Neighbor NodeID
	Cost     LinkCost
}

// RoutingEntry is one row of a routing table: the cheapest known cost to
// a destination and the neighbor to route through to achieve it.
type RoutingEntry struct {
	Cost    LinkCost
	NextHop NodeID
}

// Node holds one router's distance-vector state.
type Node struct {
	id NodeID

	direct      map[NodeID]LinkCost
	neighborAdv map[NodeID]map[NodeID]LinkCost

	// distance[v][d] is the cost to reach d routed through neighbor v.
	distance map[NodeID]map[NodeID]LinkCost
	// columnOrder lists the neighbors with a column in distance, in the
	// order those columns were first created. Best-cost selection breaks
	// ties by walking columns in this order, reproducing the original
	// insertion-ordered-map behavior this protocol depends on.
	columnOrder []NodeID

	routing map[NodeID]RoutingEntry
	shared  map[NodeID]LinkCost
}

// New returns a Node with no direct links and empty tables.
func New(id NodeID) *Node {
	return &Node{
		id:          id,
		direct:      make(map[NodeID]LinkCost),
		neighborAdv: make(map[NodeID]map[NodeID]LinkCost),
		distance:    make(map[NodeID]map[NodeID]LinkCost),
		routing:     make(map[NodeID]RoutingEntry),
		shared:      make(map[NodeID]LinkCost),
	}
}

// ID returns this node's identifier.
func (n *Node) ID() NodeID { return n.id }

// DirectLinks returns this node's current direct links, ordered by when
// each neighbor's distance-table column was first created (see
// columnOrder).
func (n *Node) DirectLinks() []LinkEntry {
	out := make([]LinkEntry, 0, len(n.direct))
	// columnOrder always contains every direct neighbor (a direct link
	// seeds its column's diagonal, see UpdateDirectLinks), plus possibly
	// neighbors known only through advertisements; filter to direct ones.
	for _, v := range n.columnOrder {
		if cost, ok := n.direct[v]; ok {
			out = append(out, LinkEntry{Neighbor: v, Cost: cost})
		}
	}
	return out
}

// ensureColumn records v as having a distance-table column, appending it
// to columnOrder the first time it appears.
func (n *Node) ensureColumn(v NodeID) {
	if _, ok := n.distance[v]; ok {
		return
	}
	n.distance[v] = make(map[NodeID]LinkCost)
	n.columnOrder = append(n.columnOrder, v)
}

func (n *Node) dropColumn(v NodeID) {
	delete(n.distance, v)
	delete(n.neighborAdv, v)
	for i, id := range n.columnOrder {
		if id == v {
			n.columnOrder = append(n.columnOrder[:i], n.columnOrder[i+1:]...)
			break
		}
	}
}

// UpdateFromNeighbor records neighborID's newly advertised vector,
// recomputes only that neighbor's distance-table column, reruns best-cost
// selection over every destination, and reports whether the routing
// table changed.
func (n *Node) UpdateFromNeighbor(neighborID NodeID, advertised map[NodeID]LinkCost) bool {
	// Copy so later mutation by the caller cannot retroactively change
	// what was actually received.
	stored := make(map[NodeID]LinkCost, len(advertised))
	for d, c := range advertised {
		stored[d] = c
	}
	n.neighborAdv[neighborID] = stored

	n.ensureColumn(neighborID)
	n.updateColumn(neighborID)

	return n.recomputeBestCosts()
}

// UpdateDirectLinks replaces this node's direct links wholesale. Neighbors
// no longer present lose their advertisement cache and their distance-
// table column entirely; neighbors still present (or newly present) have
// their diagonal entry seeded with the new direct cost. Every column is
// then recomputed and best-cost selection reruns over all destinations.
func (n *Node) UpdateDirectLinks(newDirect []LinkEntry) bool {
	next := make(map[NodeID]LinkCost, len(newDirect))
	for _, e := range newDirect {
		next[e.Neighbor] = e.Cost
	}

	for v := range n.direct {
		if _, stillPresent := next[v]; !stillPresent {
			n.dropColumn(v)
		}
	}
	n.direct = next

	for _, e := range newDirect {
		n.ensureColumn(e.Neighbor)
		if n.distance[e.Neighbor] == nil {
			n.distance[e.Neighbor] = make(map[NodeID]LinkCost)
		}
		n.distance[e.Neighbor][e.Neighbor] = e.Cost
	}

	for _, v := range n.columnOrder {
		n.updateColumn(v)
	}

	return n.recomputeBestCosts()
}

// updateColumn applies the column-update rule (§4.1) for neighbor v using
// whatever was most recently stored in neighborAdv[v] (or nothing, if v
// is a direct neighbor that has not yet advertised anything — in which
// case only the diagonal entry, seeded elsewhere, survives).
func (n *Node) updateColumn(v NodeID) {
	advertised, haveAdvert := n.neighborAdv[v]
	directCost, isDirect := n.direct[v]
	column := n.distance[v]

	if haveAdvert {
		for dest, cost := range advertised {
			if dest == n.id {
				continue
			}
			if !isDirect {
				// A neighbor that advertises but is not directly linked
				// (an advertisement that was in flight when the link was
				// removed) contributes nothing to its column.
				continue
			}
			column[dest] = directCost + cost
		}
		// Withdraw destinations the neighbor no longer lists, except the
		// self-to-neighbor diagonal entry.
		for dest := range column {
			if dest == v {
				continue
			}
			if _, stillAdvertised := advertised[dest]; !stillAdvertised {
				delete(column, dest)
			}
		}
	}
}

// recomputeBestCosts selects, for every destination appearing in any
// distance-table column, the minimum cost across columns (tie-broken by
// columnOrder), and updates the routing table and shared vector
// accordingly. A destination whose best cost exceeds UnreachableThreshold
// is removed and counts as a change. Routing entries for destinations
// that no longer appear in any column are removed as well. It returns
// whether anything changed.
func (n *Node) recomputeBestCosts() bool {
	allDestinations := make(map[NodeID]struct{})
	for _, v := range n.columnOrder {
		for d := range n.distance[v] {
			allDestinations[d] = struct{}{}
		}
	}

	changed := false
	for d := range allDestinations {
		var best LinkCost
		var bestVia NodeID
		found := false
		for _, v := range n.columnOrder {
			cost, ok := n.distance[v][d]
			if !ok {
				continue
			}
			if !found || cost < best {
				best = cost
				bestVia = v
				found = true
			}
		}
		if !found {
			continue
		}

		if best > UnreachableThreshold {
			delete(n.routing, d)
			delete(n.shared, d)
			changed = true
			continue
		}

		existing, had := n.routing[d]
		if !had || existing.Cost != best {
			n.routing[d] = RoutingEntry{Cost: best, NextHop: bestVia}
			n.shared[d] = best
			changed = true
		}
		// If had && existing.Cost == best: deliberately left untouched,
		// even if bestVia now differs from existing.NextHop. Routes are
		// stable under equal cost (§4.1).
	}
	for d := range n.routing {
		if _, ok := allDestinations[d]; !ok {
			delete(n.routing, d)
			delete(n.shared, d)
			changed = true
		}
	}
	return changed
}

// SnapshotDistanceTable returns a deep copy of the distance table, keyed
// via_neighbor → destination → cost.
func (n *Node) SnapshotDistanceTable() map[NodeID]map[NodeID]LinkCost {
	out := make(map[NodeID]map[NodeID]LinkCost, len(n.distance))
	for v, row := range n.distance {
		cp := make(map[NodeID]LinkCost, len(row))
		for d, c := range row {
			cp[d] = c
		}
		out[v] = cp
	}
	return out
}

// SnapshotRoutingTable returns a copy of the routing table, keyed by
// destination.
func (n *Node) SnapshotRoutingTable() map[NodeID]RoutingEntry {
	out := make(map[NodeID]RoutingEntry, len(n.routing))
	for d, e := range n.routing {
		out[d] = e
	}
	return out
}

// SharedVector returns a copy of the vector this node would advertise to
// its neighbors right now (destination → cost, no next-hop).
func (n *Node) SharedVector() map[NodeID]LinkCost {
	out := make(map[NodeID]LinkCost, len(n.shared))
	for d, c := range n.shared {
		out[d] = c
	}
	return out
}

// DirectCostTo returns the direct link cost from this node to v, and
// whether such a link currently exists.
func (n *Node) DirectCostTo(v NodeID) (LinkCost, bool) {
	c, ok := n.direct[v]
	return c, ok
}

// Destinations returns the routing table's destinations in sorted order;
// used by callers that need a deterministic iteration order (snapshots,
// tests) without depending on Go's randomized map order.
func (n *Node) Destinations() []NodeID {
	out := make([]NodeID, 0, len(n.routing))
	for d := range n.routing {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
