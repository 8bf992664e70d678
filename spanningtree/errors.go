package spanningtree

import "errors"

// ErrDisconnected is returned when the topology has more than one node
// and is not fully connected, so no spanning tree exists.
var ErrDisconnected = errors.New("spanningtree: graph is disconnected")
