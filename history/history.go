// Package history records the three time-indexed logs a convergence
// episode produces — full graph snapshots, all-nodes routing snapshots,
// and per-node distance/routing logs — so a caller can scrub back
// through simulated time after the fact.
//
// Nothing in this package drives a simulation; it only ever appends what
// package sim reports, answers exact-timestamp lookups, and keeps a sorted
// index of the graph and routing timestamps it has seen.
package history

import (
	"sort"

	"github.com/nsolovey/distvec/node"
	"github.com/nsolovey/distvec/sim"
)

// NodeLog is one node's recorded state at a single timestamp.
type NodeLog struct {
	Distance map[node.NodeID]map[node.NodeID]node.LinkCost
	Routing  map[node.NodeID]node.RoutingEntry
}

// History accumulates graph, routing, and per-node snapshots keyed by
// simulated time. Timestamps are kept sorted as they are recorded so
// Timestamps doesn't need to re-sort on every call; the lookup methods
// read the maps directly.
type History struct {
	times []float64

	graphSnapshots   map[float64]sim.GraphSnapshot
	routingSnapshots map[float64]map[node.NodeID]map[node.NodeID]node.RoutingEntry
	nodeSnapshots    map[node.NodeID]map[float64]NodeLog
}

// New returns an empty History.
func New() *History {
	return &History{
		graphSnapshots:   make(map[float64]sim.GraphSnapshot),
		routingSnapshots: make(map[float64]map[node.NodeID]map[node.NodeID]node.RoutingEntry),
		nodeSnapshots:    make(map[node.NodeID]map[float64]NodeLog),
	}
}

// recordTimestamp inserts t into the sorted index if it is not already
// present.
func (h *History) recordTimestamp(t float64) {
	i := sort.SearchFloat64s(h.times, t)
	if i < len(h.times) && h.times[i] == t {
		return
	}
	h.times = append(h.times, 0)
	copy(h.times[i+1:], h.times[i:])
	h.times[i] = t
}

// RecordGraphSnapshot appends a full graph snapshot at t.
func (h *History) RecordGraphSnapshot(t float64, snap sim.GraphSnapshot) {
	h.recordTimestamp(t)
	h.graphSnapshots[t] = snap
}

// RecordRoutingSnapshot appends an all-nodes routing snapshot at t.
func (h *History) RecordRoutingSnapshot(t float64, routing map[node.NodeID]map[node.NodeID]node.RoutingEntry) {
	h.recordTimestamp(t)
	h.routingSnapshots[t] = routing
}

// RecordNodeLog appends id's distance and routing table at t. Only nodes
// that actually received an advertisement during a tick should be
// recorded for that tick's timestamp (§4.4) — callers, not this package,
// decide which nodes qualify.
func (h *History) RecordNodeLog(t float64, id node.NodeID, log NodeLog) {
	if h.nodeSnapshots[id] == nil {
		h.nodeSnapshots[id] = make(map[float64]NodeLog)
	}
	h.nodeSnapshots[id][t] = log
}

// Timestamps returns every recorded timestamp in ascending order.
func (h *History) Timestamps() []float64 {
	out := make([]float64, len(h.times))
	copy(out, h.times)
	return out
}

// SnapshotAt returns the full graph snapshot recorded at t, or
// ErrTimestampNotFound if t was never recorded.
func (h *History) SnapshotAt(t float64) (sim.GraphSnapshot, error) {
	snap, ok := h.graphSnapshots[t]
	if !ok {
		return sim.GraphSnapshot{}, ErrTimestampNotFound
	}
	return snap, nil
}

// RoutingAt returns every node's routing table as recorded at t, or
// ErrTimestampNotFound if t was never recorded.
func (h *History) RoutingAt(t float64) (map[node.NodeID]map[node.NodeID]node.RoutingEntry, error) {
	routing, ok := h.routingSnapshots[t]
	if !ok {
		return nil, ErrTimestampNotFound
	}
	return routing, nil
}

// NodeLogOf returns id's full time-indexed log, or ErrNodeNotFound if id
// was never recorded.
func (h *History) NodeLogOf(id node.NodeID) (map[float64]NodeLog, error) {
	log, ok := h.nodeSnapshots[id]
	if !ok {
		return nil, ErrNodeNotFound
	}
	return log, nil
}

// Reset discards every recorded log, returning the History to its
// just-constructed state.
func (h *History) Reset() {
	h.times = nil
	h.graphSnapshots = make(map[float64]sim.GraphSnapshot)
	h.routingSnapshots = make(map[float64]map[node.NodeID]map[node.NodeID]node.RoutingEntry)
	h.nodeSnapshots = make(map[node.NodeID]map[float64]NodeLog)
}
