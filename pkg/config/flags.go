package config

import (
	"flag"
	"fmt"
)

// parseCLIFlags parses command-line flags and returns a FlagSource and help flag
func parseCLIFlags() (*FlagSource, bool) {
	flagSource := NewFlagSource()

	// Define CLI flags
	scenario := flag.String(FlagScenario, "", HelpScenario)
	sensors := flag.Int(FlagSensors, 0, HelpSensors)
	zones := flag.Int(FlagZones, 0, HelpZones)
	sensorsPerZone := flag.Int(FlagSensorsPerZone, 0, HelpSensorsPerZone)
	durationSeconds := flag.Float64(FlagDurationSeconds, 0, HelpDurationSeconds)
	intervalSeconds := flag.Float64(FlagIntervalSeconds, 0, HelpIntervalSeconds)
	sensorPort := flag.Int(FlagSensorPort, 0, HelpSensorPort)
	gatewayPort := flag.Int(FlagGatewayPort, 0, HelpGatewayPort)
	lossRate := flag.Float64(FlagLossRate, 0, HelpLossRate)
	delayMillis := flag.Int(FlagDelayMillis, 0, HelpDelayMillis)
	seed := flag.Int(FlagSeed, 0, HelpSeed)
	verbose := flag.Bool(FlagVerbose, false, HelpVerbose)
	resultsFile := flag.String(FlagResultsFile, "", HelpResultsFile)
	jsonFile := flag.String(FlagJSONFile, "", HelpJSONFile)
	mqttBrokerURL := flag.String(FlagMQTTBrokerURL, "", HelpMQTTBrokerURL)
	mqttTopic := flag.String(FlagMQTTTopic, "", HelpMQTTTopic)
	mqttClientID := flag.String(FlagMQTTClientID, "", HelpMQTTClientID)
	configFile := flag.String(FlagConfigFile, "", HelpConfigFile)
	help := flag.Bool(FlagHelp, false, HelpShowHelp)

	flag.Parse()

	if *help {
		return flagSource, true
	}

	// Store non-zero/non-empty values in flag source
	if *scenario != "" {
		flagSource.Set(KeyScenario, *scenario)
	}
	if *sensors != 0 {
		flagSource.Set(KeySensors, *sensors)
	}
	if *zones != 0 {
		flagSource.Set(KeyZones, *zones)
	}
	if *sensorsPerZone != 0 {
		flagSource.Set(KeySensorsPerZone, *sensorsPerZone)
	}
	if *durationSeconds != 0 {
		flagSource.Set(KeyDurationSeconds, *durationSeconds)
	}
	if *intervalSeconds != 0 {
		flagSource.Set(KeyIntervalSeconds, *intervalSeconds)
	}
	if *sensorPort != 0 {
		flagSource.Set(KeySensorPort, *sensorPort)
	}
	if *gatewayPort != 0 {
		flagSource.Set(KeyGatewayPort, *gatewayPort)
	}
	if *lossRate != 0 {
		flagSource.Set(KeyLossRate, *lossRate)
	}
	if *delayMillis != 0 {
		flagSource.Set(KeyDelayMillis, *delayMillis)
	}
	if *seed != 0 {
		flagSource.Set(KeySeed, *seed)
	}
	if *verbose {
		flagSource.Set(KeyVerbose, true)
	}
	if *resultsFile != "" {
		flagSource.Set(KeyResultsFile, *resultsFile)
	}
	if *jsonFile != "" {
		flagSource.Set(KeyJSONFile, *jsonFile)
	}
	if *mqttBrokerURL != "" {
		flagSource.Set(KeyMQTTBrokerURL, *mqttBrokerURL)
	}
	if *mqttTopic != "" {
		flagSource.Set(KeyMQTTTopic, *mqttTopic)
	}
	if *mqttClientID != "" {
		flagSource.Set(KeyMQTTClientID, *mqttClientID)
	}
	if *configFile != "" {
		flagSource.Set(KeyConfigFile, *configFile)
	}

	return flagSource, false
}

// printUsage prints the usage message
func printUsage() {
	fmt.Printf("%s - %s\n", AppName, AppDescription)
	fmt.Println()
	fmt.Printf("%s\n", HelpUsage)
	fmt.Printf("  %s\n", UsageFormat)
	fmt.Println()
	fmt.Printf("%s\n", HelpOptions)
	fmt.Printf("  --%s string         %s (default: %s)\n", FlagScenario, HelpScenario, DefaultScenario)
	fmt.Printf("  --%s int             %s (default: %d)\n", FlagSensors, HelpSensors, DefaultSensors)
	fmt.Printf("  --%s int               %s (default: %d)\n", FlagZones, HelpZones, DefaultZones)
	fmt.Printf("  --%s int    %s (default: %d)\n", FlagSensorsPerZone, HelpSensorsPerZone, DefaultSensorsPerZone)
	fmt.Printf("  --%s float  %s (default: per scenario)\n", FlagDurationSeconds, HelpDurationSeconds)
	fmt.Printf("  --%s float %s (default: %.0f)\n", FlagIntervalSeconds, HelpIntervalSeconds, DefaultIntervalSeconds)
	fmt.Printf("  --%s int         %s (default: %d)\n", FlagSensorPort, HelpSensorPort, DefaultSensorPort)
	fmt.Printf("  --%s int        %s (default: %d)\n", FlagGatewayPort, HelpGatewayPort, DefaultGatewayPort)
	fmt.Printf("  --%s float          %s (default: %.1f)\n", FlagLossRate, HelpLossRate, DefaultLossRate)
	fmt.Printf("  --%s int  %s (default: %d)\n", FlagDelayMillis, HelpDelayMillis, DefaultDelayMillis)
	fmt.Printf("  --%s int         %s (default: %d)\n", FlagSeed, HelpSeed, DefaultSeed)
	fmt.Printf("  --%s                  %s\n", FlagVerbose, HelpVerbose)
	fmt.Printf("  --%s string      %s\n", FlagResultsFile, HelpResultsFile)
	fmt.Printf("  --%s string         %s\n", FlagJSONFile, HelpJSONFile)
	fmt.Printf("  --%s string   %s\n", FlagMQTTBrokerURL, HelpMQTTBrokerURL)
	fmt.Printf("  --%s string        %s (default: %s)\n", FlagMQTTTopic, HelpMQTTTopic, DefaultMQTTTopic)
	fmt.Printf("  --%s string    %s (default: %s)\n", FlagMQTTClientID, HelpMQTTClientID, DefaultMQTTClientID)
	fmt.Printf("  --%s string       %s\n", FlagConfigFile, HelpConfigFile)
	fmt.Printf("  --%s                     %s\n", FlagHelp, HelpShowHelp)
	fmt.Println()
	fmt.Printf("%s\n", HelpEnvironmentVars)
	fmt.Printf("  %-24s %s\n", KeyScenario, HelpScenario)
	fmt.Printf("  %-24s %s\n", KeySensors, HelpSensors)
	fmt.Printf("  %-24s %s\n", KeyZones, HelpZones)
	fmt.Printf("  %-24s %s\n", KeySensorsPerZone, HelpSensorsPerZone)
	fmt.Printf("  %-24s %s\n", KeyDurationSeconds, HelpDurationSeconds)
	fmt.Printf("  %-24s %s\n", KeyIntervalSeconds, HelpIntervalSeconds)
	fmt.Printf("  %-24s %s\n", KeySensorPort, HelpSensorPort)
	fmt.Printf("  %-24s %s\n", KeyGatewayPort, HelpGatewayPort)
	fmt.Printf("  %-24s %s\n", KeyLossRate, HelpLossRate)
	fmt.Printf("  %-24s %s\n", KeyDelayMillis, HelpDelayMillis)
	fmt.Printf("  %-24s %s\n", KeySeed, HelpSeed)
	fmt.Printf("  %-24s %s\n", KeyVerbose, HelpVerbose)
	fmt.Printf("  %-24s %s\n", KeyResultsFile, HelpResultsFile)
	fmt.Printf("  %-24s %s\n", KeyJSONFile, HelpJSONFile)
	fmt.Printf("  %-24s %s\n", KeyMQTTBrokerURL, HelpMQTTBrokerURL)
	fmt.Printf("  %-24s %s\n", KeyMQTTTopic, HelpMQTTTopic)
	fmt.Printf("  %-24s %s\n", KeyMQTTClientID, HelpMQTTClientID)
	fmt.Printf("  %-24s %s\n", KeyConfigFile, HelpConfigFile)
	fmt.Println()
	fmt.Printf("%s\n", HelpNote)
}
