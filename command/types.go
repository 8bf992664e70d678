package command

// NodeDTO is one node entry in the stable snapshot JSON contract (§6).
type NodeDTO struct {
	ID string `json:"id"`
}

// LinkDTO is one undirected link entry, listed from the lower-ordered
// endpoint.
type LinkDTO struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Label  int    `json:"label"`
}

// MessageDTO is one in-flight advertisement, with progress already
// normalized to [0, 1].
type MessageDTO struct {
	Source   string  `json:"source"`
	Target   string  `json:"target"`
	Progress float64 `json:"progress"`
}

// GraphSnapshotDTO is the full observable graph at an instant: every
// node, every link, and every message in flight.
type GraphSnapshotDTO struct {
	Nodes    []NodeDTO    `json:"nodes"`
	Links    []LinkDTO    `json:"links"`
	Messages []MessageDTO `json:"messages"`
}

// ConvergenceResult is the outcome of a convergence episode: the
// simulated time it ended at (whether by quiescence or by hitting the
// hard safety bound) and the messages enqueued by the initial run().
type ConvergenceResult struct {
	MaxTime         float64      `json:"max_time"`
	InitialMessages []MessageDTO `json:"initial_messages"`
	TimedOut        bool         `json:"timed_out"`
}

// RoutingEntryDTO is one routing-table row.
type RoutingEntryDTO struct {
	Cost    int    `json:"cost"`
	NextHop string `json:"next_hop"`
}

// RoutingSnapshotDTO is every node's routing table, keyed by node ID then
// by destination.
type RoutingSnapshotDTO map[string]map[string]RoutingEntryDTO

// ConnectionDTO is the get_connection response: a node's direct links.
type ConnectionDTO struct {
	Cost map[string]int `json:"cost"`
}

// NodeLogEntryDTO is one timestamped entry of a node's distance and
// routing table.
type NodeLogEntryDTO struct {
	Distance map[string]map[string]int `json:"distance"`
	Routing  map[string]RoutingEntryDTO `json:"routing"`
}

// NodeLogDTO is a node's full time-indexed log, keyed by a
// decimal-formatted timestamp (JSON object keys cannot be floats).
type NodeLogDTO map[string]NodeLogEntryDTO

// SpanningTreeDTO is the minimum_spanning_tree response.
type SpanningTreeDTO struct {
	Edges     []LinkDTO `json:"edges"`
	TotalCost int       `json:"total_cost"`
}

// MatrixDTO is the adjacency_matrix response.
type MatrixDTO struct {
	Order     []string `json:"order"`
	Data      [][]int  `json:"data"`
	Symmetric bool     `json:"symmetric"`
}

// PathMismatchDTO reports a node/destination pair where the routing
// table's cost disagrees with one of the independent oracles.
type PathMismatchDTO struct {
	Node          string `json:"node"`
	Destination   string `json:"destination"`
	RoutingCost   int    `json:"routing_cost"`
	DijkstraCost  int    `json:"dijkstra_cost"`
	BellmanFord   int    `json:"bellman_ford_cost"`
	DijkstraKnown bool   `json:"dijkstra_known"`
	BellmanKnown  bool   `json:"bellman_ford_known"`
}

// VerifyShortestPathsDTO is the verify_shortest_paths response.
type VerifyShortestPathsDTO struct {
	SingleComponent bool              `json:"single_component"`
	Mismatches      []PathMismatchDTO `json:"mismatches"`
}
