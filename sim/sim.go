// Package sim drives the distance-vector protocol: it owns the node
// registry, the master topology, and the queue of in-flight
// advertisements, and advances simulated time one event at a time.
//
// Package sim is deliberately silent about history — recording snapshots
// as time advances is the job of package history, orchestrated by
// package command. Simulation only ever reports what changed on a given
// call, so a caller can decide what (if anything) to log.
package sim

import (
	"sort"

	"github.com/nsolovey/distvec/advertisement"
	"github.com/nsolovey/distvec/node"
	"github.com/nsolovey/distvec/topology"
)

// Message is a read-only view of one in-flight advertisement, shaped for
// the snapshot JSON contract (§6): Progress is already normalized to
// [0, 1].
type Message struct {
	Source      node.NodeID
	Destination node.NodeID
	Progress    float64
}

// GraphSnapshot is the full observable state of the topology at an
// instant: every node, every undirected link, and every message in
// flight.
type GraphSnapshot struct {
	Nodes    []node.NodeID
	Links    []topology.Edge
	Messages []Message
}

// Simulation is the authoritative distance-vector engine: node registry,
// topology, advertisement queue, and simulated clock.
type Simulation struct {
	topo  *topology.Topology
	nodes map[node.NodeID]*node.Node

	queue []*advertisement.Advertisement

	timeFromStart float64

	tickStep         float64
	maxSimulatedTime float64
}

// New constructs a Simulation from an initial adjacency
// (nodeID -> neighborID -> cost). The adjacency is expected to already be
// symmetric (§3 invariant 1); callers that accept raw user input should
// validate it first (package command does this for edit_node).
func New(connections map[node.NodeID]map[node.NodeID]node.LinkCost, opts ...Option) *Simulation {
	s := &Simulation{
		topo:             topology.New(),
		nodes:            make(map[node.NodeID]*node.Node),
		tickStep:         DefaultTickStep,
		maxSimulatedTime: DefaultMaxSimulatedTime,
	}
	for _, opt := range opts {
		opt(s)
	}

	ids := make([]node.NodeID, 0, len(connections))
	for id := range connections {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		s.topo.AddNode(topology.NodeID(id))
		s.nodes[id] = node.New(id)
	}
	for _, id := range ids {
		dests := make([]node.NodeID, 0, len(connections[id]))
		for d := range connections[id] {
			dests = append(dests, d)
		}
		sort.Slice(dests, func(i, j int) bool { return dests[i] < dests[j] })
		for _, d := range dests {
			_ = s.topo.SetLink(topology.NodeID(id), topology.NodeID(d), topology.LinkCost(connections[id][d]))
		}
	}
	for _, id := range ids {
		s.nodes[id].UpdateDirectLinks(directLinksOf(s.topo, id))
	}

	return s
}

// directLinksOf reads id's current neighbors from topo, in topology
// insertion order, as node.LinkEntry values.
func directLinksOf(topo *topology.Topology, id node.NodeID) []node.LinkEntry {
	neighbors := topo.Neighbors(topology.NodeID(id))
	out := make([]node.LinkEntry, 0, len(neighbors))
	for _, nb := range neighbors {
		cost, _ := topo.LinkCostOf(topology.NodeID(id), nb)
		out = append(out, node.LinkEntry{Neighbor: node.NodeID(nb), Cost: node.LinkCost(cost)})
	}
	return out
}

// TimeFromStart returns the simulated clock's current value.
func (s *Simulation) TimeFromStart() float64 { return s.timeFromStart }

// TickStep returns the configured convergence-episode step size.
func (s *Simulation) TickStep() float64 { return s.tickStep }

// MaxSimulatedTime returns the configured convergence-episode safety
// bound.
func (s *Simulation) MaxSimulatedTime() float64 { return s.maxSimulatedTime }

// Topology returns the Simulation's underlying topology, for read-only
// diagnostics (package connectivity, spanningtree, matrixview, oracle,
// shortestpath) that operate on topology.Topology directly. Mutating it
// outside Simulation's own methods would violate the invariants those
// methods maintain.
func (s *Simulation) Topology() *topology.Topology { return s.topo }

// NodeIDs returns every registered node ID, in topology insertion order.
func (s *Simulation) NodeIDs() []node.NodeID {
	ids := s.topo.Nodes()
	out := make([]node.NodeID, len(ids))
	for i, id := range ids {
		out[i] = node.NodeID(id)
	}
	return out
}

// Node returns the Node registered under id, or nil if it is not
// registered.
func (s *Simulation) Node(id node.NodeID) *node.Node {
	return s.nodes[id]
}

// DirectLinksOf returns a copy of id's current direct links, keyed by
// neighbor.
func (s *Simulation) DirectLinksOf(id node.NodeID) map[node.NodeID]node.LinkCost {
	raw := s.topo.DirectLinks(topology.NodeID(id))
	out := make(map[node.NodeID]node.LinkCost, len(raw))
	for nb, cost := range raw {
		out[node.NodeID(nb)] = node.LinkCost(cost)
	}
	return out
}

// Run enqueues one broadcast from every registered node to each of its
// direct neighbors, initiating convergence.
func (s *Simulation) Run() {
	for _, id := range s.topo.Nodes() {
		s.Broadcast(node.NodeID(id))
	}
}

// Broadcast enqueues an advertisement from id to every one of its direct
// neighbors, carrying a snapshot of id's current shared vector.
func (s *Simulation) Broadcast(id node.NodeID) {
	n := s.nodes[id]
	if n == nil {
		return
	}
	shared := n.SharedVector()
	for _, link := range n.DirectLinks() {
		ad := advertisement.New(id, link.Neighbor, float64(link.Cost), shared)
		s.queue = append(s.queue, &ad)
	}
}

// Tick advances simulated time by dt (or, if dt is nil, by the minimum
// remaining time across the queue — the time to the next delivery),
// delivers every advertisement whose remaining time has elapsed, and
// re-broadcasts from any node whose routing table changed as a result.
//
// Returns the set of nodes that received at least one advertisement
// (deduplicated, first-seen order) and whether the queue is now empty.
func (s *Simulation) Tick(dt *float64) (delivered []node.NodeID, quiescent bool) {
	if len(s.queue) == 0 {
		return nil, true
	}

	var step float64
	if dt != nil {
		step = *dt
	} else {
		step = s.queue[0].RemainingTime
		for _, ad := range s.queue[1:] {
			if ad.RemainingTime < step {
				step = ad.RemainingTime
			}
		}
	}

	s.timeFromStart += step
	for _, ad := range s.queue {
		ad.Elapse(step)
	}

	deliveredSeen := make(map[node.NodeID]bool)
	rebroadcastSeen := make(map[node.NodeID]bool)
	var rebroadcast []node.NodeID
	remaining := s.queue[:0:0]

	for _, ad := range s.queue {
		if !ad.Delivered() {
			remaining = append(remaining, ad)
			continue
		}
		if !deliveredSeen[ad.Destination] {
			deliveredSeen[ad.Destination] = true
			delivered = append(delivered, ad.Destination)
		}
		dst := s.nodes[ad.Destination]
		if dst == nil {
			continue
		}
		if dst.UpdateFromNeighbor(ad.Source, ad.Payload) && !rebroadcastSeen[ad.Destination] {
			rebroadcastSeen[ad.Destination] = true
			rebroadcast = append(rebroadcast, ad.Destination)
		}
	}
	s.queue = remaining

	for _, id := range rebroadcast {
		s.Broadcast(id)
	}

	return delivered, len(s.queue) == 0
}

// AddNode allocates and registers the next node ID — the successor of
// the current lexicographic maximum, or "A" if the simulation has no
// nodes — with no links, and returns it.
func (s *Simulation) AddNode() node.NodeID {
	var next node.NodeID
	if max, ok := s.topo.MaxLexicographicNode(); ok {
		raw := string(max)
		next = node.NodeID(raw[:len(raw)-1] + string(raw[len(raw)-1]+1))
	} else {
		next = "A"
	}
	s.topo.AddNode(topology.NodeID(next))
	s.nodes[next] = node.New(next)
	return next
}

// RemoveNode deletes name, purges every other node's link to it, forces
// every surviving node to recompute its tables, and re-broadcasts from
// any whose routing table changed. Returns ErrNodeNotFound if name is not
// registered.
func (s *Simulation) RemoveNode(name node.NodeID) error {
	if !s.topo.HasNode(topology.NodeID(name)) {
		return ErrNodeNotFound
	}
	s.topo.RemoveNode(topology.NodeID(name))
	delete(s.nodes, name)

	s.recomputeAllDirectLinksAndBroadcast()
	return nil
}

// EditNode atomically replaces name's direct links with newLinks
// (mirroring the undirected symmetry on both the old and new neighbor
// sets), then forces every node to recompute and re-broadcasts from any
// whose routing table changed. Returns ErrNodeNotFound if name is not
// registered; the caller (package command) is responsible for validating
// newLinks (known destinations, no self-loop, integer costs) before
// calling this.
func (s *Simulation) EditNode(name node.NodeID, newLinks map[node.NodeID]node.LinkCost) error {
	if !s.topo.HasNode(topology.NodeID(name)) {
		return ErrNodeNotFound
	}

	for _, old := range s.topo.Neighbors(topology.NodeID(name)) {
		s.topo.RemoveLink(topology.NodeID(name), old)
	}
	dests := make([]node.NodeID, 0, len(newLinks))
	for d := range newLinks {
		dests = append(dests, d)
	}
	sort.Slice(dests, func(i, j int) bool { return dests[i] < dests[j] })
	for _, d := range dests {
		_ = s.topo.SetLink(topology.NodeID(name), topology.NodeID(d), topology.LinkCost(newLinks[d]))
	}

	s.recomputeAllDirectLinksAndBroadcast()
	return nil
}

// recomputeAllDirectLinksAndBroadcast calls UpdateDirectLinks on every
// registered node (in a deterministic order) and broadcasts from any
// whose routing table changed as a result — the shared tail of
// RemoveNode and EditNode (§4.3).
func (s *Simulation) recomputeAllDirectLinksAndBroadcast() {
	for _, id := range s.topo.Nodes() {
		nid := node.NodeID(id)
		n := s.nodes[nid]
		if n == nil {
			continue
		}
		if n.UpdateDirectLinks(directLinksOf(s.topo, nid)) {
			s.Broadcast(nid)
		}
	}
}

// GraphSnapshot returns the current full graph: every node, every
// undirected link, and every message in flight with its progress along
// its link computed from the source node's *current* direct cost to the
// destination (matching the original implementation's behavior — a link
// edited mid-flight changes the progress of messages already traveling
// it).
func (s *Simulation) GraphSnapshot() GraphSnapshot {
	snap := GraphSnapshot{
		Nodes: s.NodeIDs(),
		Links: s.topo.Edges(),
	}
	for _, ad := range s.queue {
		cost := node.LinkCost(0)
		if src := s.nodes[ad.Source]; src != nil {
			if c, ok := src.DirectCostTo(ad.Destination); ok {
				cost = c
			}
		}
		snap.Messages = append(snap.Messages, Message{
			Source:      ad.Source,
			Destination: ad.Destination,
			Progress:    ad.Progress(cost),
		})
	}
	return snap
}

// RoutingSnapshot returns every node's current routing table, keyed by
// node ID.
func (s *Simulation) RoutingSnapshot() map[node.NodeID]map[node.NodeID]node.RoutingEntry {
	out := make(map[node.NodeID]map[node.NodeID]node.RoutingEntry, len(s.nodes))
	for id, n := range s.nodes {
		out[id] = n.SnapshotRoutingTable()
	}
	return out
}
