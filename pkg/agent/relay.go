package agent

import (
	"fmt"
	"log"

	"carbon-telemetry/pkg/sim"
	"carbon-telemetry/pkg/telemetry"
)

// RelayConfig describes one zone relay.
type RelayConfig struct {
	Zone       uint32
	ListenAddr sim.Addr // sensors in the zone send here
	UplinkAddr sim.Addr
	Collector  sim.Addr
	Verbose    bool
}

// RelayAgent is a pure pass-through: it forwards the exact frame bytes it
// receives and never decodes, so the collector still sees the original
// sensor, zone, and value. It keeps its own receive/forward counters.
type RelayAgent struct {
	cfg   RelayConfig
	sched *sim.Scheduler
	net   *sim.Network
	tel   telemetry.Publisher
	log   *log.Logger

	listen *sim.Endpoint
	uplink *sim.Endpoint
	state  State

	receivedFromSensors  uint64
	forwardedToCollector uint64
}

func NewRelayAgent(cfg RelayConfig, sched *sim.Scheduler, net *sim.Network,
	tel telemetry.Publisher, logger *log.Logger) *RelayAgent {
	return &RelayAgent{
		cfg:   cfg,
		sched: sched,
		net:   net,
		tel:   tel,
		log:   logger,
	}
}

func (r *RelayAgent) State() State { return r.state }

// ReceivedFromSensors is the number of frames that arrived from this zone's
// sensors.
func (r *RelayAgent) ReceivedFromSensors() uint64 { return r.receivedFromSensors }

// ForwardedToCollector is the number of frames successfully passed on.
func (r *RelayAgent) ForwardedToCollector() uint64 { return r.forwardedToCollector }

// Start binds both endpoints: the zone-facing listener and the collector-
// facing uplink.
func (r *RelayAgent) Start() error {
	if r.state != StateIdle {
		return fmt.Errorf("relay zone %d: start from state %s", r.cfg.Zone, r.state)
	}

	listen, err := r.net.Bind(r.cfg.ListenAddr)
	if err != nil {
		return fmt.Errorf("relay zone %d: %w", r.cfg.Zone, err)
	}
	uplink, err := r.net.Bind(r.cfg.UplinkAddr)
	if err != nil {
		listen.Close()
		return fmt.Errorf("relay zone %d: %w", r.cfg.Zone, err)
	}
	r.listen = listen
	r.uplink = uplink
	r.listen.SetReceiver(r.OnReceive)
	r.state = StateRelaying

	r.log.Printf("relay zone %d listening on %s", r.cfg.Zone, r.cfg.ListenAddr)
	return nil
}

// OnReceive drains all pending frames and forwards each one unmodified. A
// refused forward is logged only; the frame is not retried.
func (r *RelayAgent) OnReceive() {
	if r.state != StateRelaying {
		return
	}

	for _, d := range r.listen.ReceiveBatch() {
		r.receivedFromSensors++
		r.tel.Publish(telemetry.NewRelayReceived(r.sched.Now(), r.cfg.Zone))

		if r.uplink.Send(r.cfg.Collector, d.Payload) {
			r.forwardedToCollector++
			r.tel.Publish(telemetry.NewRelayForwarded(r.sched.Now(), r.cfg.Zone))
			if r.cfg.Verbose {
				r.log.Printf("t=%.1fs: relay zone %d forwarded frame from %s",
					r.sched.Now().Seconds(), r.cfg.Zone, d.From)
			}
		} else {
			r.log.Printf("t=%.1fs: relay zone %d failed to forward frame from %s",
				r.sched.Now().Seconds(), r.cfg.Zone, d.From)
		}
	}
}

// Stop closes both endpoints and logs the zone totals. Safe to call more
// than once.
func (r *RelayAgent) Stop() {
	if r.state == StateStopped {
		return
	}
	r.state = StateStopped
	if r.listen != nil {
		r.listen.Close()
	}
	if r.uplink != nil {
		r.uplink.Close()
	}
	r.log.Printf("relay zone %d stopped: received=%d forwarded=%d",
		r.cfg.Zone, r.receivedFromSensors, r.forwardedToCollector)
}
