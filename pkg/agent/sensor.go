package agent

import (
	"fmt"
	"log"
	"time"

	"carbon-telemetry/pkg/sensor"
	"carbon-telemetry/pkg/sim"
	"carbon-telemetry/pkg/telemetry"
	"carbon-telemetry/pkg/wire"
)

// SensorConfig describes one measurement source.
type SensorConfig struct {
	SensorID uint32
	OwnerID  uint32 // company in single tier, zone in two tier
	Addr     sim.Addr
	Target   sim.Addr // collector or zone relay
	Interval time.Duration
	Verbose  bool
}

// SensorAgent runs the periodic send loop: generate, encode, transmit,
// reschedule. Transmission is fire-and-forget; a refused send is logged,
// skipped from the sent counter, and the loop carries on.
type SensorAgent struct {
	cfg   SensorConfig
	sched *sim.Scheduler
	net   *sim.Network
	gen   *sensor.Generator
	codec wire.Codec
	tel   telemetry.Publisher
	log   *log.Logger

	endpoint *sim.Endpoint
	timer    *sim.Timer
	state    State
}

func NewSensorAgent(cfg SensorConfig, sched *sim.Scheduler, net *sim.Network,
	gen *sensor.Generator, codec wire.Codec, tel telemetry.Publisher, logger *log.Logger) *SensorAgent {
	return &SensorAgent{
		cfg:   cfg,
		sched: sched,
		net:   net,
		gen:   gen,
		codec: codec,
		tel:   tel,
		log:   logger,
	}
}

func (s *SensorAgent) State() State { return s.state }

// Start binds the outbound endpoint and performs the first send-and-
// reschedule cycle immediately.
func (s *SensorAgent) Start() error {
	if s.state != StateIdle {
		return fmt.Errorf("sensor %d: start from state %s", s.cfg.SensorID, s.state)
	}

	endpoint, err := s.net.Bind(s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("sensor %d: %w", s.cfg.SensorID, err)
	}
	s.endpoint = endpoint
	s.state = StateActive

	s.log.Printf("sensor %d (owner %d) started at %.1fs, baseline %.0f ppm",
		s.cfg.SensorID, s.cfg.OwnerID, s.sched.Now().Seconds(), s.gen.Baseline())

	s.cycle()
	return nil
}

// Stop cancels the pending send and releases the endpoint. Safe to call
// more than once.
func (s *SensorAgent) Stop() {
	if s.state == StateStopped {
		return
	}
	s.state = StateStopped
	if s.timer != nil {
		s.timer.Cancel()
		s.timer = nil
	}
	if s.endpoint != nil {
		s.endpoint.Close()
	}
	s.log.Printf("sensor %d stopped at %.1fs", s.cfg.SensorID, s.sched.Now().Seconds())
}

func (s *SensorAgent) cycle() {
	if s.state != StateActive {
		return
	}

	value := s.gen.Generate()
	reading := wire.Reading{
		SensorID:  s.cfg.SensorID,
		OwnerID:   s.cfg.OwnerID,
		CO2PPM:    value,
		Timestamp: s.sched.NowMicros(),
	}
	frame := s.codec.Encode(reading)

	if s.endpoint.Send(s.cfg.Target, frame) {
		s.tel.Publish(telemetry.NewFrameSent(s.sched.Now(), s.cfg.SensorID, value, len(frame)))
		if s.cfg.Verbose {
			s.log.Printf("t=%.1fs: sensor %d (owner %d) transmitted CO2 %.2f ppm",
				s.sched.Now().Seconds(), s.cfg.SensorID, s.cfg.OwnerID, value)
		}
	} else {
		s.tel.Publish(telemetry.NewSendFailed(s.sched.Now(), s.cfg.SensorID))
		s.log.Printf("t=%.1fs: sensor %d failed to send", s.sched.Now().Seconds(), s.cfg.SensorID)
	}

	// Stop may have run inside this cycle's window; only reschedule while
	// still active.
	if s.state == StateActive {
		s.timer = s.sched.Schedule(s.cfg.Interval, s.cycle)
	}
}
