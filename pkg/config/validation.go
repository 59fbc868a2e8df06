package config

import "fmt"

func (c *Config) validate() error {
	switch c.Scenario {
	case ScenarioConnectivity, ScenarioHierarchical:
	default:
		return fmt.Errorf("%s must be %q or %q, got %q",
			KeyScenario, ScenarioConnectivity, ScenarioHierarchical, c.Scenario)
	}

	if c.Scenario == ScenarioConnectivity && c.Topology.Sensors < 1 {
		return fmt.Errorf("%s must be at least 1", KeySensors)
	}
	if c.Scenario == ScenarioHierarchical {
		if c.Topology.Zones < 1 {
			return fmt.Errorf("%s must be at least 1", KeyZones)
		}
		if c.Topology.SensorsPerZone < 1 {
			return fmt.Errorf("%s must be at least 1", KeySensorsPerZone)
		}
	}

	if c.Timing.DurationSeconds <= 0 {
		return fmt.Errorf("%s must be positive", KeyDurationSeconds)
	}
	if c.Timing.IntervalSeconds <= 0 {
		return fmt.Errorf("%s must be positive", KeyIntervalSeconds)
	}

	if c.Network.LossRate < 0 || c.Network.LossRate >= 1 {
		return fmt.Errorf("%s must be in [0,1)", KeyLossRate)
	}
	if c.Network.DelayMillis < 0 {
		return fmt.Errorf("%s must not be negative", KeyDelayMillis)
	}
	if err := validPort(KeySensorPort, c.Network.SensorPort); err != nil {
		return err
	}
	if err := validPort(KeyGatewayPort, c.Network.GatewayPort); err != nil {
		return err
	}
	if c.Scenario == ScenarioHierarchical && c.Network.SensorPort == c.Network.GatewayPort {
		return fmt.Errorf("%s and %s must differ", KeySensorPort, KeyGatewayPort)
	}

	if c.MQTT.BrokerURL != "" && c.MQTT.Topic == "" {
		return fmt.Errorf("%s is required when %s is set", KeyMQTTTopic, KeyMQTTBrokerURL)
	}

	return nil
}

func validPort(key string, port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("%s must be in 1..65535, got %d", key, port)
	}
	return nil
}
