package command

import (
	"errors"

	"github.com/nsolovey/distvec/history"
	"github.com/nsolovey/distvec/node"
)

// RunToQuiescence runs one full convergence episode (§4.3): run(), record
// a snapshot, then repeatedly tick(TickStep) and record a snapshot after
// each tick, until the queue is empty or the hard safety bound is hit.
// Only nodes that actually received an advertisement during a tick have
// their per-node log updated for that tick's timestamp.
func (f *Facade) RunToQuiescence() (ConvergenceResult, error) {
	if err := f.requireInit(); err != nil {
		return ConvergenceResult{}, err
	}

	f.sm.Run()
	f.recordSnapshot()
	initial := toGraphSnapshotDTO(f.sm.GraphSnapshot()).Messages

	step := f.sm.TickStep()
	timedOut := false
	for {
		delivered, quiescent := f.sm.Tick(&step)
		f.recordSnapshot()
		f.recordNodeLogs(delivered)
		if quiescent {
			break
		}
		if f.sm.TimeFromStart() >= f.sm.MaxSimulatedTime() {
			timedOut = true
			break
		}
	}

	return ConvergenceResult{
		MaxTime:         f.sm.TimeFromStart(),
		InitialMessages: initial,
		TimedOut:        timedOut,
	}, nil
}

func (f *Facade) recordSnapshot() {
	t := f.sm.TimeFromStart()
	f.hist.RecordGraphSnapshot(t, f.sm.GraphSnapshot())
	f.hist.RecordRoutingSnapshot(t, f.sm.RoutingSnapshot())
}

func (f *Facade) recordNodeLogs(delivered []node.NodeID) {
	t := f.sm.TimeFromStart()
	for _, id := range delivered {
		n := f.sm.Node(id)
		if n == nil {
			continue
		}
		f.hist.RecordNodeLog(t, id, history.NodeLog{
			Distance: n.SnapshotDistanceTable(),
			Routing:  n.SnapshotRoutingTable(),
		})
	}
}

// GetSnapshotAt returns the full graph snapshot recorded at timestamp.
func (f *Facade) GetSnapshotAt(timestamp float64) (GraphSnapshotDTO, error) {
	if err := f.requireInit(); err != nil {
		return GraphSnapshotDTO{}, err
	}
	snap, err := f.hist.SnapshotAt(timestamp)
	if err != nil {
		if errors.Is(err, history.ErrTimestampNotFound) {
			return GraphSnapshotDTO{}, ErrTimestampNotFound
		}
		return GraphSnapshotDTO{}, err
	}
	return toGraphSnapshotDTO(snap), nil
}

// GetRoutingAt returns every node's routing table as recorded at
// timestamp.
func (f *Facade) GetRoutingAt(timestamp float64) (RoutingSnapshotDTO, error) {
	if err := f.requireInit(); err != nil {
		return nil, err
	}
	routing, err := f.hist.RoutingAt(timestamp)
	if err != nil {
		if errors.Is(err, history.ErrTimestampNotFound) {
			return nil, ErrTimestampNotFound
		}
		return nil, err
	}

	out := make(RoutingSnapshotDTO, len(routing))
	for id, table := range routing {
		row := make(map[string]RoutingEntryDTO, len(table))
		for dest, entry := range table {
			row[string(dest)] = RoutingEntryDTO{Cost: int(entry.Cost), NextHop: string(entry.NextHop)}
		}
		out[string(id)] = row
	}
	return out, nil
}

// GetNodeLog returns name's full time-indexed distance/routing log.
func (f *Facade) GetNodeLog(name string) (NodeLogDTO, error) {
	if err := f.requireInit(); err != nil {
		return nil, err
	}
	log, err := f.hist.NodeLogOf(node.NodeID(name))
	if err != nil {
		if errors.Is(err, history.ErrNodeNotFound) {
			return nil, ErrNodeNotFound
		}
		return nil, err
	}

	out := make(NodeLogDTO, len(log))
	for t, entry := range log {
		distance := make(map[string]map[string]int, len(entry.Distance))
		for via, row := range entry.Distance {
			r := make(map[string]int, len(row))
			for dest, cost := range row {
				r[string(dest)] = int(cost)
			}
			distance[string(via)] = r
		}
		routing := make(map[string]RoutingEntryDTO, len(entry.Routing))
		for dest, re := range entry.Routing {
			routing[string(dest)] = RoutingEntryDTO{Cost: int(re.Cost), NextHop: string(re.NextHop)}
		}
		out[formatTimestamp(t)] = NodeLogEntryDTO{Distance: distance, Routing: routing}
	}
	return out, nil
}
