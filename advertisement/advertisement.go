// Package advertisement defines the in-flight message a simulation's event
// queue carries between nodes.
package advertisement

import "github.com/nsolovey/distvec/node"

// deliveredEpsilon guards against floating-point accumulation leaving a
// remaining time like 1e-13 instead of exactly zero after repeated ticks.
const deliveredEpsilon = 1e-9

// Advertisement is a value-typed in-flight message carrying a snapshot of
// Source's shared distance vector toward Destination. Nodes are
// referenced by ID, not by pointer, so the queue has no lifetime coupling
// to the node registry that resolves those IDs (see SPEC_FULL.md §9 on
// cyclic references).
type Advertisement struct {
	Source        node.NodeID
	Destination   node.NodeID
	RemainingTime float64
	Payload       map[node.NodeID]node.LinkCost
}

// New returns an Advertisement from source to destination carrying a copy
// of payload, due to arrive after remainingTime (normally the direct link
// cost from source to destination at broadcast time).
func New(source, destination node.NodeID, remainingTime float64, payload map[node.NodeID]node.LinkCost) Advertisement {
	cp := make(map[node.NodeID]node.LinkCost, len(payload))
	for d, c := range payload {
		cp[d] = c
	}
	return Advertisement{Source: source, Destination: destination, RemainingTime: remainingTime, Payload: cp}
}

// Elapse decrements RemainingTime by dt.
func (a *Advertisement) Elapse(dt float64) {
	a.RemainingTime -= dt
}

// Delivered reports whether RemainingTime has reached (or numerically
// settled within epsilon of) zero.
func (a *Advertisement) Delivered() bool {
	return a.RemainingTime <= deliveredEpsilon
}

// Progress returns how far along its link this advertisement has
// traveled, in [0, 1], measured against linkCost, which need not be the
// cost the advertisement was created with (package sim passes the link's
// current cost). Values outside [0, 1] are clamped, and a non-positive
// linkCost yields 1.
func (a *Advertisement) Progress(linkCost node.LinkCost) float64 {
	if linkCost <= 0 {
		return 1
	}
	p := (float64(linkCost) - a.RemainingTime) / float64(linkCost)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
