package agent

import (
	"fmt"
	"log"

	"carbon-telemetry/pkg/aggregate"
	"carbon-telemetry/pkg/sim"
	"carbon-telemetry/pkg/telemetry"
	"carbon-telemetry/pkg/wire"
)

// CollectorConfig describes one collection point.
type CollectorConfig struct {
	Name    string
	Addr    sim.Addr
	Verbose bool
}

// CollectorAgent consumes inbound frames, decodes them, and aggregates
// per-sensor statistics. Every arriving frame counts as received; malformed
// frames are then logged and dropped without touching the store.
type CollectorAgent struct {
	cfg   CollectorConfig
	sched *sim.Scheduler
	net   *sim.Network
	codec wire.Codec
	store *aggregate.Store
	tel   telemetry.Publisher
	log   *log.Logger

	endpoint *sim.Endpoint
	state    State
}

func NewCollectorAgent(cfg CollectorConfig, sched *sim.Scheduler, net *sim.Network,
	codec wire.Codec, tel telemetry.Publisher, logger *log.Logger) *CollectorAgent {
	return &CollectorAgent{
		cfg:   cfg,
		sched: sched,
		net:   net,
		codec: codec,
		store: aggregate.NewStore(),
		tel:   tel,
		log:   logger,
	}
}

func (c *CollectorAgent) State() State { return c.state }

// Store gives read access to the collector's aggregation records. The store
// is owned by this agent; callers must not mutate through it.
func (c *CollectorAgent) Store() *aggregate.Store { return c.store }

// Start binds the inbound endpoint and begins accepting batches.
func (c *CollectorAgent) Start() error {
	if c.state != StateIdle {
		return fmt.Errorf("collector %s: start from state %s", c.cfg.Name, c.state)
	}

	endpoint, err := c.net.Bind(c.cfg.Addr)
	if err != nil {
		return fmt.Errorf("collector %s: %w", c.cfg.Name, err)
	}
	c.endpoint = endpoint
	c.endpoint.SetReceiver(c.OnReceive)
	c.state = StateListening

	c.log.Printf("collector %s listening on %s at %.1fs",
		c.cfg.Name, c.cfg.Addr, c.sched.Now().Seconds())
	return nil
}

// OnReceive drains every pending frame before yielding back to the
// scheduler, so back-to-back arrivals are never left queued across ticks.
func (c *CollectorAgent) OnReceive() {
	if c.state != StateListening {
		return
	}

	for _, d := range c.endpoint.ReceiveBatch() {
		c.tel.Publish(telemetry.NewFrameReceived(c.sched.Now(), c.cfg.Name, string(d.From), len(d.Payload)))

		reading, err := c.codec.Decode(d.Payload)
		if err != nil {
			c.tel.Publish(telemetry.NewDecodeFailed(c.sched.Now(), c.cfg.Name, string(d.From), err))
			c.log.Printf("t=%.1fs: collector %s dropped malformed frame from %s: %v",
				c.sched.Now().Seconds(), c.cfg.Name, d.From, err)
			continue
		}

		c.store.Add(reading.SensorID, reading.CO2PPM)
		if c.cfg.Verbose {
			c.log.Printf("t=%.1fs: collector %s received sensor %d (owner %d) CO2 %.2f ppm [source %s]",
				c.sched.Now().Seconds(), c.cfg.Name, reading.SensorID, reading.OwnerID, reading.CO2PPM, d.From)
		}
	}
}

// Stop closes the inbound endpoint and logs the per-sensor summary. Sensors
// with no readings are omitted, so no zero-count average is ever computed.
// Safe to call more than once.
func (c *CollectorAgent) Stop() {
	if c.state == StateStopped {
		return
	}
	c.state = StateStopped
	if c.endpoint != nil {
		c.endpoint.Close()
	}

	c.log.Printf("collector %s stopped at %.1fs", c.cfg.Name, c.sched.Now().Seconds())
	for _, rec := range c.store.Averages() {
		c.log.Printf("collector %s: sensor %d: %d readings, average CO2 = %.2f ppm",
			c.cfg.Name, rec.SensorID, rec.Count, rec.Average())
	}
}
