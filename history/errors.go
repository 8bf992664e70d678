package history

import "errors"

// ErrTimestampNotFound is returned by a lookup for a timestamp that was
// never recorded.
var ErrTimestampNotFound = errors.New("history: timestamp not found")

// ErrNodeNotFound is returned by a per-node log lookup for a node that
// was never recorded.
var ErrNodeNotFound = errors.New("history: node not found")
