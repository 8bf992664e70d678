package shortestpath

import "errors"

// ErrUnknownSource is returned when the requested source node does not
// exist in the topology.
var ErrUnknownSource = errors.New("shortestpath: unknown source node")
