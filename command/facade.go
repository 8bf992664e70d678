package command

import (
	"fmt"

	"github.com/nsolovey/distvec/history"
	"github.com/nsolovey/distvec/node"
	"github.com/nsolovey/distvec/sim"
)

// Facade wraps one sim.Simulation and its history.History so a caller —
// an HTTP handler, a CLI, a test — only ever holds one value and calls
// methods on it.
type Facade struct {
	opts []sim.Option

	sm   *sim.Simulation
	hist *history.History

	lastAdjacency map[node.NodeID]map[node.NodeID]node.LinkCost
}

// New returns a Facade with no simulation loaded yet; call Init before
// any other command. opts configure the underlying Simulation's tick
// step and convergence cutoff (see package sim), and are reapplied on
// every subsequent Init/Reset.
func New(opts ...sim.Option) *Facade {
	return &Facade{opts: opts}
}

// Init constructs a fresh Simulation from adjacency (validated per §6's
// edit_node rules, applied uniformly here since init accepts the same
// shape) and returns its initial graph snapshot (no messages in flight).
func (f *Facade) Init(adjacency map[string]map[string]float64) (GraphSnapshotDTO, error) {
	validated, err := validateAdjacency(adjacency)
	if err != nil {
		return GraphSnapshotDTO{}, err
	}

	f.lastAdjacency = validated
	f.sm = sim.New(validated, f.opts...)
	f.hist = history.New()

	return toGraphSnapshotDTO(f.sm.GraphSnapshot()), nil
}

// Reset rebuilds the Simulation from the adjacency last passed to Init,
// discarding all subsequent mutations and history.
func (f *Facade) Reset() (GraphSnapshotDTO, error) {
	if f.lastAdjacency == nil {
		return GraphSnapshotDTO{}, fmt.Errorf("command: Reset called before Init")
	}
	f.sm = sim.New(f.lastAdjacency, f.opts...)
	f.hist = history.New()
	return toGraphSnapshotDTO(f.sm.GraphSnapshot()), nil
}

// AddNode allocates a new, unlinked node and returns the updated graph
// snapshot.
func (f *Facade) AddNode() (GraphSnapshotDTO, error) {
	if err := f.requireInit(); err != nil {
		return GraphSnapshotDTO{}, err
	}
	f.sm.AddNode()
	return toGraphSnapshotDTO(f.sm.GraphSnapshot()), nil
}

// RemoveNode deletes name and returns the updated graph snapshot.
func (f *Facade) RemoveNode(name string) (GraphSnapshotDTO, error) {
	if err := f.requireInit(); err != nil {
		return GraphSnapshotDTO{}, err
	}
	if err := f.sm.RemoveNode(node.NodeID(name)); err != nil {
		return GraphSnapshotDTO{}, fmt.Errorf("%w: %s", ErrNodeNotFound, name)
	}
	return toGraphSnapshotDTO(f.sm.GraphSnapshot()), nil
}

// EditNode replaces name's direct links wholesale, validating newLinks
// per §6, and returns the updated graph snapshot.
func (f *Facade) EditNode(name string, newLinks map[string]float64) (GraphSnapshotDTO, error) {
	if err := f.requireInit(); err != nil {
		return GraphSnapshotDTO{}, err
	}

	known := make(map[node.NodeID]bool)
	for _, id := range f.sm.NodeIDs() {
		known[id] = true
	}
	owner := node.NodeID(name)
	if !known[owner] {
		return GraphSnapshotDTO{}, fmt.Errorf("%w: %s", ErrNodeNotFound, name)
	}

	validated, err := validateLinks(owner, newLinks, known)
	if err != nil {
		return GraphSnapshotDTO{}, err
	}

	if err := f.sm.EditNode(owner, validated); err != nil {
		return GraphSnapshotDTO{}, fmt.Errorf("%w: %s", ErrNodeNotFound, name)
	}
	return toGraphSnapshotDTO(f.sm.GraphSnapshot()), nil
}

// GetConnection returns name's current direct links.
func (f *Facade) GetConnection(name string) (ConnectionDTO, error) {
	if err := f.requireInit(); err != nil {
		return ConnectionDTO{}, err
	}
	id := node.NodeID(name)
	n := f.sm.Node(id)
	if n == nil {
		return ConnectionDTO{}, fmt.Errorf("%w: %s", ErrNodeNotFound, name)
	}

	links := f.sm.DirectLinksOf(id)
	cost := make(map[string]int, len(links))
	for nb, c := range links {
		cost[string(nb)] = int(c)
	}
	return ConnectionDTO{Cost: cost}, nil
}

func (f *Facade) requireInit() error {
	if f.sm == nil {
		return fmt.Errorf("command: Init must be called first")
	}
	return nil
}

func toGraphSnapshotDTO(snap sim.GraphSnapshot) GraphSnapshotDTO {
	dto := GraphSnapshotDTO{
		Nodes: make([]NodeDTO, len(snap.Nodes)),
	}
	for i, id := range snap.Nodes {
		dto.Nodes[i] = NodeDTO{ID: string(id)}
	}
	for _, l := range snap.Links {
		dto.Links = append(dto.Links, LinkDTO{Source: string(l.Source), Target: string(l.Target), Label: int(l.Cost)})
	}
	for _, m := range snap.Messages {
		dto.Messages = append(dto.Messages, MessageDTO{Source: string(m.Source), Target: string(m.Destination), Progress: m.Progress})
	}
	return dto
}
