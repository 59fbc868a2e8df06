package telemetry

import "time"

// Event is one observation from the pipeline. At is virtual simulation
// time, supplied by the emitting agent.
type Event interface {
	At() time.Duration
	EventType() string // for categorization/filtering
}

// FrameSent records a successful transmission from a sensor.
type FrameSent struct {
	at       time.Duration
	SensorID uint32
	CO2PPM   float64
	Bytes    int
}

func (e FrameSent) At() time.Duration { return e.at }
func (e FrameSent) EventType() string { return "frame_sent" }

func NewFrameSent(at time.Duration, sensorID uint32, co2 float64, bytes int) FrameSent {
	return FrameSent{at: at, SensorID: sensorID, CO2PPM: co2, Bytes: bytes}
}

// SendFailed records a transmission the channel refused. No retry follows.
type SendFailed struct {
	at       time.Duration
	SensorID uint32
}

func (e SendFailed) At() time.Duration { return e.at }
func (e SendFailed) EventType() string { return "send_failed" }

func NewSendFailed(at time.Duration, sensorID uint32) SendFailed {
	return SendFailed{at: at, SensorID: sensorID}
}

// FrameReceived records an inbound frame at a collector, well-formed or not.
type FrameReceived struct {
	at        time.Duration
	Collector string
	From      string
	Bytes     int
}

func (e FrameReceived) At() time.Duration { return e.at }
func (e FrameReceived) EventType() string { return "frame_received" }

func NewFrameReceived(at time.Duration, collector, from string, bytes int) FrameReceived {
	return FrameReceived{at: at, Collector: collector, From: from, Bytes: bytes}
}

// DecodeFailed records a frame dropped as malformed after being counted
// received.
type DecodeFailed struct {
	at        time.Duration
	Collector string
	From      string
	Err       error
}

func (e DecodeFailed) At() time.Duration { return e.at }
func (e DecodeFailed) EventType() string { return "decode_failed" }

func NewDecodeFailed(at time.Duration, collector, from string, err error) DecodeFailed {
	return DecodeFailed{at: at, Collector: collector, From: from, Err: err}
}

// RelayReceived records a frame arriving at a zone relay from its sensors.
type RelayReceived struct {
	at   time.Duration
	Zone uint32
}

func (e RelayReceived) At() time.Duration { return e.at }
func (e RelayReceived) EventType() string { return "relay_received" }

func NewRelayReceived(at time.Duration, zone uint32) RelayReceived {
	return RelayReceived{at: at, Zone: zone}
}

// RelayForwarded records a frame passed on unmodified to the collector.
type RelayForwarded struct {
	at   time.Duration
	Zone uint32
}

func (e RelayForwarded) At() time.Duration { return e.at }
func (e RelayForwarded) EventType() string { return "relay_forwarded" }

func NewRelayForwarded(at time.Duration, zone uint32) RelayForwarded {
	return RelayForwarded{at: at, Zone: zone}
}

// Publisher accepts pipeline events. Publish must not block and must not
// fail; agents call it on their hot path.
type Publisher interface {
	Publish(event Event)
}

// Reader exposes the aggregated counters.
type Reader interface {
	Snapshot() Snapshot
}
