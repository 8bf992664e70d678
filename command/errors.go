// Package command is the stable, language-neutral contract an external
// HTTP layer (or a CLI, or a test) sits behind: one façade type wrapping
// a sim.Simulation and its history.History, exposing the operations of
// §6's command table and nothing else. It contains no HTTP, auth, or
// persistence code — those are external collaborators, not part of this
// module.
package command

import "errors"

// ErrNonIntegerCost is returned by EditNode (and Init) when a requested
// link cost has a fractional part. The sign of the cost is not checked.
var ErrNonIntegerCost = errors.New("command: you can only enter integer costs")

// ErrUnknownDestination is returned by EditNode when a requested neighbor
// is not a node of the current simulation.
var ErrUnknownDestination = errors.New("command: your destination nodes must be valid nodes on the graph")

// ErrSelfLoop is returned by EditNode when a node is linked to itself.
var ErrSelfLoop = errors.New("command: you cannot link a node to itself")

// ErrNodeNotFound is returned by any command naming a node that does not
// exist.
var ErrNodeNotFound = errors.New("command: node not found")

// ErrTimestampNotFound is returned by GetSnapshotAt/GetRoutingAt for a
// timestamp that was never recorded.
var ErrTimestampNotFound = errors.New("command: timestamp not found")
