// Package topology holds the authoritative undirected, weighted graph of
// node identifiers and link costs that backs a distance-vector simulation's
// connections map.
//
// A Topology is always undirected, always weighted, never has self-loops,
// and never has parallel edges: SetLink either creates a single link or
// overwrites its cost. Mutations always mirror both endpoints, so the
// graph-symmetry invariant cannot be violated from outside this package.
package topology

import (
	"errors"
	"sort"
	"sync"
)

// ErrSelfLoop is returned by SetLink when asked to link a node to itself.
var ErrSelfLoop = errors.New("topology: a node cannot link to itself")

// ErrUnknownNode is returned when an operation references a node ID that
// has not been added to the Topology.
var ErrUnknownNode = errors.New("topology: unknown node")

// NodeID uniquely identifies a node within a Topology.
type NodeID string

// LinkCost is a strictly positive integer cost for traversing a link.
type LinkCost int

// Topology is the registry of nodes and the symmetric weighted links
// between them.
//
// muNodes guards the node set; muLinks guards the adjacency map. The two
// are kept separate (rather than one coarse lock) so that a read of one
// node's neighbors never blocks an unrelated node's insertion.
type Topology struct {
	muNodes sync.RWMutex
	muLinks sync.RWMutex

	nodes map[NodeID]struct{}
	// order preserves insertion order of nodes, for deterministic
	// iteration in callers that snapshot the whole topology.
	order []NodeID

	// adjacency[u] is an insertion-ordered list of u's neighbors paired
	// with the link cost; order matters because Node's tie-break rule
	// (§4.1) depends on neighbor iteration order.
	adjacency map[NodeID][]neighborEntry
}

type neighborEntry struct {
	id   NodeID
	cost LinkCost
}

// New returns an empty Topology.
func New() *Topology {
	return &Topology{
		nodes:     make(map[NodeID]struct{}),
		adjacency: make(map[NodeID][]neighborEntry),
	}
}

// AddNode inserts id with no links if it is not already present.
// Thread-safe.
func (t *Topology) AddNode(id NodeID) {
	t.muNodes.Lock()
	defer t.muNodes.Unlock()

	if _, ok := t.nodes[id]; ok {
		return
	}
	t.nodes[id] = struct{}{}
	t.order = append(t.order, id)

	t.muLinks.Lock()
	if _, ok := t.adjacency[id]; !ok {
		t.adjacency[id] = nil
	}
	t.muLinks.Unlock()
}

// RemoveNode deletes id and every link incident to it. Removing an absent
// node is a no-op.
func (t *Topology) RemoveNode(id NodeID) {
	t.muNodes.Lock()
	defer t.muNodes.Unlock()

	if _, ok := t.nodes[id]; !ok {
		return
	}
	delete(t.nodes, id)
	for i, n := range t.order {
		if n == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}

	t.muLinks.Lock()
	defer t.muLinks.Unlock()
	for _, nbr := range t.adjacency[id] {
		t.adjacency[nbr.id] = removeNeighbor(t.adjacency[nbr.id], id)
	}
	delete(t.adjacency, id)
}

// HasNode reports whether id has been added.
func (t *Topology) HasNode(id NodeID) bool {
	t.muNodes.RLock()
	defer t.muNodes.RUnlock()

	_, ok := t.nodes[id]
	return ok
}

// Nodes returns all node IDs in insertion order.
func (t *Topology) Nodes() []NodeID {
	t.muNodes.RLock()
	defer t.muNodes.RUnlock()

	out := make([]NodeID, len(t.order))
	copy(out, t.order)
	return out
}

// MaxLexicographicNode returns the lexicographically greatest node ID, and
// false if the topology has no nodes.
func (t *Topology) MaxLexicographicNode() (NodeID, bool) {
	t.muNodes.RLock()
	defer t.muNodes.RUnlock()

	var max NodeID
	found := false
	for id := range t.nodes {
		if !found || id > max {
			max = id
			found = true
		}
	}
	return max, found
}

// SetLink creates or overwrites the undirected link between u and v with
// the given cost, mirroring both directions. Both nodes must already
// exist (ErrUnknownNode) and u must differ from v (ErrSelfLoop).
func (t *Topology) SetLink(u, v NodeID, cost LinkCost) error {
	if u == v {
		return ErrSelfLoop
	}
	if !t.HasNode(u) || !t.HasNode(v) {
		return ErrUnknownNode
	}

	t.muLinks.Lock()
	defer t.muLinks.Unlock()

	t.adjacency[u] = upsertNeighbor(t.adjacency[u], v, cost)
	t.adjacency[v] = upsertNeighbor(t.adjacency[v], u, cost)
	return nil
}

// RemoveLink removes the undirected link between u and v, if present, from
// both endpoints. Removing an absent link is a no-op.
func (t *Topology) RemoveLink(u, v NodeID) {
	t.muLinks.Lock()
	defer t.muLinks.Unlock()

	t.adjacency[u] = removeNeighbor(t.adjacency[u], v)
	t.adjacency[v] = removeNeighbor(t.adjacency[v], u)
}

// Neighbors returns id's direct neighbors in insertion order. Returns an
// empty slice for an unknown node.
func (t *Topology) Neighbors(id NodeID) []NodeID {
	t.muLinks.RLock()
	defer t.muLinks.RUnlock()

	entries := t.adjacency[id]
	out := make([]NodeID, len(entries))
	for i, e := range entries {
		out[i] = e.id
	}
	return out
}

// DirectLinks returns a fresh copy of id's neighbor-to-cost mapping.
func (t *Topology) DirectLinks(id NodeID) map[NodeID]LinkCost {
	t.muLinks.RLock()
	defer t.muLinks.RUnlock()

	entries := t.adjacency[id]
	out := make(map[NodeID]LinkCost, len(entries))
	for _, e := range entries {
		out[e.id] = e.cost
	}
	return out
}

// LinkCostOf returns the cost of the link between u and v, and whether it
// exists.
func (t *Topology) LinkCostOf(u, v NodeID) (LinkCost, bool) {
	t.muLinks.RLock()
	defer t.muLinks.RUnlock()

	for _, e := range t.adjacency[u] {
		if e.id == v {
			return e.cost, true
		}
	}
	return 0, false
}

// Edges returns each undirected edge exactly once, as (lower, higher, cost)
// ordered by the lower-ordered endpoint — matching the snapshot JSON
// contract's "listed from the lower-ordered endpoint" rule.
func (t *Topology) Edges() []Edge {
	t.muLinks.RLock()
	defer t.muLinks.RUnlock()

	seen := make(map[[2]NodeID]bool)
	var out []Edge
	for u, entries := range t.adjacency {
		for _, e := range entries {
			lo, hi := u, e.id
			if hi < lo {
				lo, hi = hi, lo
			}
			key := [2]NodeID{lo, hi}
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, Edge{Source: lo, Target: hi, Cost: e.cost})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Source != out[j].Source {
			return out[i].Source < out[j].Source
		}
		return out[i].Target < out[j].Target
	})
	return out
}

// Edge is one undirected link, reported with its lower-ordered endpoint
// first.
type Edge struct {
	Source NodeID
	Target NodeID
	Cost   LinkCost
}

func upsertNeighbor(entries []neighborEntry, id NodeID, cost LinkCost) []neighborEntry {
	for i, e := range entries {
		if e.id == id {
			entries[i].cost = cost
			return entries
		}
	}
	return append(entries, neighborEntry{id: id, cost: cost})
}

func removeNeighbor(entries []neighborEntry, id NodeID) []neighborEntry {
	for i, e := range entries {
		if e.id == id {
			return append(entries[:i], entries[i+1:]...)
		}
	}
	return entries
}
