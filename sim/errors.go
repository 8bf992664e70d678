package sim

import "errors"

// ErrNodeNotFound is returned by any Simulation operation that names a
// node ID which is not currently registered.
var ErrNodeNotFound = errors.New("sim: node not found")

// ErrBadTickStep's message is the panic value of WithTickStep for a
// non-positive step.
var ErrBadTickStep = errors.New("sim: tick step must be positive")

// ErrBadMaxSimulatedTime's message is the panic value of
// WithMaxSimulatedTime for a non-positive bound.
var ErrBadMaxSimulatedTime = errors.New("sim: max simulated time must be positive")
