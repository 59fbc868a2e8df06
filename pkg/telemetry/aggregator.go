// Package telemetry tracks process-wide delivery counters for a pipeline
// run: frames sent by sensors, frames received by collectors, and the relay
// tier's receive/forward totals.
package telemetry

import "sync"

// Snapshot is a point-in-time copy of the counters. All fields are
// monotonically non-decreasing over a run.
type Snapshot struct {
	FramesSent     uint64
	FramesReceived uint64
	SendFailures   uint64
	DecodeFailures uint64

	RelayReceived  uint64
	RelayForwarded uint64

	// Per-zone relay forward counts, empty in single-tier runs.
	ForwardedByZone map[uint32]uint64
}

// DeliveryRatio is received/sent as a percentage, 0 when nothing was sent.
func (s Snapshot) DeliveryRatio() float64 {
	if s.FramesSent == 0 {
		return 0
	}
	return float64(s.FramesReceived) / float64(s.FramesSent) * 100
}

// Aggregator folds events into counters. Delivery is synchronous: the
// simulation is single-threaded run-to-completion, so counters are exact at
// any point a snapshot is taken. The mutex only guards against snapshot
// readers outside the simulation loop.
type Aggregator struct {
	mu   sync.Mutex
	snap Snapshot
}

func NewAggregator() *Aggregator {
	return &Aggregator{snap: Snapshot{ForwardedByZone: make(map[uint32]uint64)}}
}

// Publish implements Publisher.
func (a *Aggregator) Publish(event Event) {
	a.mu.Lock()
	defer a.mu.Unlock()

	switch e := event.(type) {
	case FrameSent:
		a.snap.FramesSent++
	case SendFailed:
		a.snap.SendFailures++
	case FrameReceived:
		a.snap.FramesReceived++
	case DecodeFailed:
		a.snap.DecodeFailures++
	case RelayReceived:
		a.snap.RelayReceived++
	case RelayForwarded:
		a.snap.RelayForwarded++
		a.snap.ForwardedByZone[e.Zone]++
	}
}

// Snapshot implements Reader.
func (a *Aggregator) Snapshot() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := a.snap
	out.ForwardedByZone = make(map[uint32]uint64, len(a.snap.ForwardedByZone))
	for zone, n := range a.snap.ForwardedByZone {
		out.ForwardedByZone[zone] = n
	}
	return out
}
