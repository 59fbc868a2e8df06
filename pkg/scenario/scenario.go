// Package scenario assembles agents, network, and telemetry into the two
// deployment topologies and runs them to completion on the virtual clock.
package scenario

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"carbon-telemetry/pkg/agent"
	"carbon-telemetry/pkg/config"
	"carbon-telemetry/pkg/report"
	"carbon-telemetry/pkg/sensor"
	"carbon-telemetry/pkg/sim"
	"carbon-telemetry/pkg/telemetry"
	"carbon-telemetry/pkg/wire"
)

// Run executes the configured scenario and returns its summary.
func Run(cfg *config.Config, logger *log.Logger) (report.Summary, error) {
	switch cfg.Scenario {
	case config.ScenarioConnectivity:
		return runConnectivity(cfg, logger)
	case config.ScenarioHierarchical:
		return runHierarchical(cfg, logger)
	default:
		return report.Summary{}, fmt.Errorf("unknown scenario %q", cfg.Scenario)
	}
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// newNetwork builds the channel. Loss draws use their own source so toggling
// the loss rate never perturbs the generated CO2 values for a given seed.
func newNetwork(cfg *config.Config, sched *sim.Scheduler) *sim.Network {
	return sim.NewNetwork(sched, sim.NetworkConfig{
		PropagationDelay: time.Duration(cfg.Network.DelayMillis) * time.Millisecond,
		LossRate:         cfg.Network.LossRate,
		Rand:             rand.New(rand.NewSource(cfg.Seed + 1)),
	})
}

// runConnectivity is the single-tier topology: every sensor reports straight
// to one collector on the shared subnet.
func runConnectivity(cfg *config.Config, logger *log.Logger) (report.Summary, error) {
	sched := sim.NewScheduler()
	net := newNetwork(cfg, sched)
	agg := telemetry.NewAggregator()
	genRng := rand.New(rand.NewSource(cfg.Seed))

	duration := seconds(cfg.Timing.DurationSeconds)
	interval := seconds(cfg.Timing.IntervalSeconds)

	collectorAddr := sim.Addr(fmt.Sprintf("10.1.1.%d:%d",
		cfg.Topology.Sensors+1, cfg.Network.SensorPort))
	collector := agent.NewCollectorAgent(agent.CollectorConfig{
		Name:    "hq",
		Addr:    collectorAddr,
		Verbose: cfg.Verbose,
	}, sched, net, wire.SingleTier{}, agg, logger)
	if err := collector.Start(); err != nil {
		return report.Summary{}, err
	}

	var startErrs []error
	agents := []agent.Agent{collector}
	for i := 0; i < cfg.Topology.Sensors; i++ {
		s := agent.NewSensorAgent(agent.SensorConfig{
			SensorID: uint32(i + 1),
			OwnerID:  uint32(i%3 + 1),
			Addr:     sim.Addr(fmt.Sprintf("10.1.1.%d", i+1)),
			Target:   collectorAddr,
			Interval: interval,
			Verbose:  cfg.Verbose,
		}, sched, net,
			sensor.NewGenerator(400+float64(i)*100, genRng),
			wire.SingleTier{}, agg, logger)
		agents = append(agents, s)

		// Staggered starts keep reports from colliding on the same tick.
		sensorAgent := s
		sched.ScheduleAt(seconds(1.0+0.5*float64(i)), func() {
			if err := sensorAgent.Start(); err != nil {
				startErrs = append(startErrs, err)
			}
		})
	}

	scheduleStops(sched, duration, agents)
	sched.Run(duration)

	if len(startErrs) > 0 {
		return report.Summary{}, errors.Join(startErrs...)
	}
	return report.Build(cfg.Scenario, duration, agg.Snapshot(),
		collector.Store().Records(), nil), nil
}

// runHierarchical is the two-tier topology: each zone's sensors report to a
// zone relay on subnet 10.1.<zone>.x, and the relays forward over the
// 10.2.1.x backbone to the gateway collector.
func runHierarchical(cfg *config.Config, logger *log.Logger) (report.Summary, error) {
	sched := sim.NewScheduler()
	net := newNetwork(cfg, sched)
	agg := telemetry.NewAggregator()
	genRng := rand.New(rand.NewSource(cfg.Seed))

	duration := seconds(cfg.Timing.DurationSeconds)
	interval := seconds(cfg.Timing.IntervalSeconds)
	perZone := cfg.Topology.SensorsPerZone

	gatewayAddr := sim.Addr(fmt.Sprintf("10.2.1.254:%d", cfg.Network.GatewayPort))
	gateway := agent.NewCollectorAgent(agent.CollectorConfig{
		Name:    "gateway",
		Addr:    gatewayAddr,
		Verbose: cfg.Verbose,
	}, sched, net, wire.TwoTier{}, agg, logger)
	if err := gateway.Start(); err != nil {
		return report.Summary{}, err
	}

	agents := []agent.Agent{gateway}
	relays := make([]*agent.RelayAgent, 0, cfg.Topology.Zones)
	relayAddrs := make([]sim.Addr, cfg.Topology.Zones+1)
	for z := 1; z <= cfg.Topology.Zones; z++ {
		relayAddrs[z] = sim.Addr(fmt.Sprintf("10.1.%d.254:%d", z, cfg.Network.SensorPort))
		r := agent.NewRelayAgent(agent.RelayConfig{
			Zone:       uint32(z),
			ListenAddr: relayAddrs[z],
			UplinkAddr: sim.Addr(fmt.Sprintf("10.2.1.%d", z)),
			Collector:  gatewayAddr,
			Verbose:    cfg.Verbose,
		}, sched, net, agg, logger)
		if err := r.Start(); err != nil {
			return report.Summary{}, err
		}
		relays = append(relays, r)
		agents = append(agents, r)
	}

	var startErrs []error
	for i := 0; i < cfg.Topology.Zones*perZone; i++ {
		zone := i/perZone + 1
		s := agent.NewSensorAgent(agent.SensorConfig{
			SensorID: uint32(i + 1),
			OwnerID:  uint32(zone),
			Addr:     sim.Addr(fmt.Sprintf("10.1.%d.%d", zone, i%perZone+1)),
			Target:   relayAddrs[zone],
			Interval: interval,
			Verbose:  cfg.Verbose,
		}, sched, net,
			sensor.NewGenerator(400+float64(i)*50, genRng),
			wire.TwoTier{}, agg, logger)
		agents = append(agents, s)

		sensorAgent := s
		sched.ScheduleAt(seconds(1.0+0.2*float64(i)), func() {
			if err := sensorAgent.Start(); err != nil {
				startErrs = append(startErrs, err)
			}
		})
	}

	scheduleStops(sched, duration, agents)
	sched.Run(duration)

	if len(startErrs) > 0 {
		return report.Summary{}, errors.Join(startErrs...)
	}

	zones := make([]report.ZoneStats, 0, len(relays))
	for _, r := range relays {
		zones = append(zones, report.ZoneStats{
			Zone:      uint32(len(zones) + 1),
			Received:  r.ReceivedFromSensors(),
			Forwarded: r.ForwardedToCollector(),
		})
	}
	return report.Build(cfg.Scenario, duration, agg.Snapshot(),
		gateway.Store().Records(), zones), nil
}

// scheduleStops queues every agent's Stop at the end of the run. These are
// queued at setup, so at the final tick they run ahead of any send cycle
// that lands on the same timestamp.
func scheduleStops(sched *sim.Scheduler, at time.Duration, agents []agent.Agent) {
	for _, a := range agents {
		stopped := a
		sched.ScheduleAt(at, stopped.Stop)
	}
}
