package command

import (
	"fmt"
	"math"
	"strings"

	"github.com/nsolovey/distvec/node"
)

// validateLinks applies §6's edit_node input validation to a requested
// set of links for owner: non-integer costs and unknown destinations are
// rejected outright; destinations whose name is empty or whitespace-only
// are silently discarded rather than rejected.
func validateLinks(owner node.NodeID, raw map[string]float64, knownNodes map[node.NodeID]bool) (map[node.NodeID]node.LinkCost, error) {
	out := make(map[node.NodeID]node.LinkCost, len(raw))
	for name, cost := range raw {
		if strings.TrimSpace(name) == "" {
			continue
		}
		dest := node.NodeID(name)

		if cost != math.Trunc(cost) {
			return nil, fmt.Errorf("%w: %s -> %s = %v", ErrNonIntegerCost, owner, dest, cost)
		}
		if dest == owner {
			return nil, fmt.Errorf("%w: %s", ErrSelfLoop, owner)
		}
		if !knownNodes[dest] {
			return nil, fmt.Errorf("%w: %s", ErrUnknownDestination, dest)
		}
		out[dest] = node.LinkCost(cost)
	}
	return out, nil
}

// validateAdjacency applies the same per-link rules to a full adjacency
// used by Init, checking each node's links against the adjacency's own
// node set.
func validateAdjacency(raw map[string]map[string]float64) (map[node.NodeID]map[node.NodeID]node.LinkCost, error) {
	known := make(map[node.NodeID]bool, len(raw))
	for name := range raw {
		known[node.NodeID(name)] = true
	}

	out := make(map[node.NodeID]map[node.NodeID]node.LinkCost, len(raw))
	for name, links := range raw {
		owner := node.NodeID(name)
		validated, err := validateLinks(owner, links, known)
		if err != nil {
			return nil, err
		}
		out[owner] = validated
	}
	return out, nil
}
