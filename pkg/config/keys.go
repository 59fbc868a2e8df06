package config

// Configuration key constants
// These constants centralize all environment variable and configuration key names
// to eliminate magic strings and improve maintainability.

const (
	// Scenario selection
	KeyScenario = "SCENARIO"

	// Topology configuration keys
	KeySensors        = "SENSORS"
	KeyZones          = "ZONES"
	KeySensorsPerZone = "SENSORS_PER_ZONE"

	// Timing configuration keys
	KeyDurationSeconds = "DURATION_SECONDS"
	KeyIntervalSeconds = "SEND_INTERVAL_SECONDS"

	// Network configuration keys
	KeySensorPort  = "SENSOR_PORT"
	KeyGatewayPort = "GATEWAY_PORT"
	KeyLossRate    = "LOSS_RATE"
	KeyDelayMillis = "PROPAGATION_DELAY_MS"

	// Run configuration keys
	KeySeed    = "RANDOM_SEED"
	KeyVerbose = "VERBOSE"

	// Output configuration keys
	KeyResultsFile = "RESULTS_FILE"
	KeyJSONFile    = "JSON_FILE"

	// MQTT configuration keys
	KeyMQTTBrokerURL = "MQTT_BROKER_URL"
	KeyMQTTTopic     = "MQTT_TOPIC"
	KeyMQTTClientID  = "MQTT_CLIENT_ID"

	// Config file override
	KeyConfigFile = "CONFIG_FILE"
)

// Scenario names accepted under KeyScenario.
const (
	ScenarioConnectivity = "connectivity"
	ScenarioHierarchical = "hierarchical"
)

// Default values for configuration
const (
	DefaultScenario = ScenarioConnectivity

	// Topology defaults
	DefaultSensors        = 5
	DefaultZones          = 5
	DefaultSensorsPerZone = 2

	// Timing defaults. Duration defaults are per scenario and applied in
	// Load when no explicit value is given.
	DefaultIntervalSeconds             = 5.0
	DefaultConnectivityDurationSeconds = 50.0
	DefaultHierarchicalDurationSeconds = 30.0

	// Network defaults
	DefaultSensorPort  = 9000
	DefaultGatewayPort = 9001
	DefaultLossRate    = 0.0
	DefaultDelayMillis = 2

	// Run defaults
	DefaultSeed = 1

	// MQTT defaults
	DefaultMQTTTopic    = "co2/results"
	DefaultMQTTClientID = "carbonsim"
)

// CLI flag name constants
const (
	// CLI flag names (kebab-case for command line)
	FlagScenario        = "scenario"
	FlagSensors         = "sensors"
	FlagZones           = "zones"
	FlagSensorsPerZone  = "sensors-per-zone"
	FlagDurationSeconds = "duration-seconds"
	FlagIntervalSeconds = "send-interval-seconds"
	FlagSensorPort      = "sensor-port"
	FlagGatewayPort     = "gateway-port"
	FlagLossRate        = "loss-rate"
	FlagDelayMillis     = "propagation-delay-ms"
	FlagSeed            = "random-seed"
	FlagVerbose         = "verbose"
	FlagResultsFile     = "results-file"
	FlagJSONFile        = "json-file"
	FlagMQTTBrokerURL   = "mqtt-broker-url"
	FlagMQTTTopic       = "mqtt-topic"
	FlagMQTTClientID    = "mqtt-client-id"
	FlagConfigFile      = "config-file"
	FlagHelp            = "help"
)

// Help message constants
const (
	AppName        = "Carbon Telemetry Simulator"
	AppDescription = "Simulate CO2 sensor fleets reporting over a lossy network"
	UsageFormat    = "carbonsim [OPTIONS]"

	// Help descriptions
	HelpScenario        = "Scenario to run: connectivity or hierarchical"
	HelpSensors         = "Number of sensors (connectivity scenario)"
	HelpZones           = "Number of zones (hierarchical scenario)"
	HelpSensorsPerZone  = "Sensors per zone (hierarchical scenario)"
	HelpDurationSeconds = "Simulated duration in seconds"
	HelpIntervalSeconds = "Seconds between sensor reports"
	HelpSensorPort      = "Port sensors send to"
	HelpGatewayPort     = "Port the gateway collector listens on"
	HelpLossRate        = "In-flight frame loss probability [0,1)"
	HelpDelayMillis     = "Propagation delay in milliseconds"
	HelpSeed            = "Random seed for reproducible runs"
	HelpVerbose         = "Log every frame sent and received"
	HelpResultsFile     = "Write the text results to this file"
	HelpJSONFile        = "Write the JSON summary to this file"
	HelpMQTTBrokerURL   = "Publish the summary to this MQTT broker"
	HelpMQTTTopic       = "MQTT topic for the summary"
	HelpMQTTClientID    = "MQTT client identifier"
	HelpConfigFile      = "Read settings from this config file"
	HelpShowHelp        = "Show this help message"

	// Help section headers
	HelpOptions         = "Options:"
	HelpEnvironmentVars = "Environment Variables:"
	HelpUsage           = "Usage:"
	HelpNote            = "Note: CLI options override environment variables, which override the config file"
)
