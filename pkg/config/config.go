package config

type Config struct {
	Scenario string
	Topology TopologyConfig
	Timing   TimingConfig
	Network  NetworkConfig
	Seed     int64
	Verbose  bool
	Output   OutputConfig
	MQTT     MQTTConfig
}

type TopologyConfig struct {
	Sensors        int
	Zones          int
	SensorsPerZone int
}

type TimingConfig struct {
	DurationSeconds float64
	IntervalSeconds float64
}

type NetworkConfig struct {
	SensorPort  int
	GatewayPort int
	LossRate    float64
	DelayMillis int
}

type OutputConfig struct {
	ResultsFile string
	JSONFile    string
}

type MQTTConfig struct {
	BrokerURL string
	Topic     string
	ClientID  string
}

// Load loads configuration from CLI flags, environment variables, and an
// optional config file, in that order of precedence.
func Load() (*Config, error) {
	// Parse CLI flags
	flagSource, showHelp := parseCLIFlags()

	if showHelp {
		printUsage()
		return nil, nil // Return nil to indicate help was shown
	}

	// The config file path itself resolves from flags and environment only.
	pathResolver := NewConfigResolver(flagSource, &EnvSource{})
	fileSource, err := NewFileSource(pathResolver.ResolveString(KeyConfigFile, ""))
	if err != nil {
		return nil, err
	}

	// Create resolver with precedence: CLI flags > Environment variables > Config file
	resolver := NewConfigResolver(flagSource, &EnvSource{}, fileSource)

	// Build configuration using resolver
	cfg := &Config{
		Scenario: resolver.ResolveString(KeyScenario, DefaultScenario),
		Topology: TopologyConfig{
			Sensors:        resolver.ResolveInt(KeySensors, DefaultSensors),
			Zones:          resolver.ResolveInt(KeyZones, DefaultZones),
			SensorsPerZone: resolver.ResolveInt(KeySensorsPerZone, DefaultSensorsPerZone),
		},
		Timing: TimingConfig{
			DurationSeconds: resolver.ResolveFloat(KeyDurationSeconds, 0),
			IntervalSeconds: resolver.ResolveFloat(KeyIntervalSeconds, DefaultIntervalSeconds),
		},
		Network: NetworkConfig{
			SensorPort:  resolver.ResolveInt(KeySensorPort, DefaultSensorPort),
			GatewayPort: resolver.ResolveInt(KeyGatewayPort, DefaultGatewayPort),
			LossRate:    resolver.ResolveFloat(KeyLossRate, DefaultLossRate),
			DelayMillis: resolver.ResolveInt(KeyDelayMillis, DefaultDelayMillis),
		},
		Seed:    int64(resolver.ResolveInt(KeySeed, DefaultSeed)),
		Verbose: resolver.ResolveBool(KeyVerbose, false),
		Output: OutputConfig{
			ResultsFile: resolver.ResolveString(KeyResultsFile, ""),
			JSONFile:    resolver.ResolveString(KeyJSONFile, ""),
		},
		MQTT: MQTTConfig{
			BrokerURL: resolver.ResolveString(KeyMQTTBrokerURL, ""),
			Topic:     resolver.ResolveString(KeyMQTTTopic, DefaultMQTTTopic),
			ClientID:  resolver.ResolveString(KeyMQTTClientID, DefaultMQTTClientID),
		},
	}

	// Each scenario has its own canonical duration.
	if cfg.Timing.DurationSeconds == 0 {
		switch cfg.Scenario {
		case ScenarioHierarchical:
			cfg.Timing.DurationSeconds = DefaultHierarchicalDurationSeconds
		default:
			cfg.Timing.DurationSeconds = DefaultConnectivityDurationSeconds
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
