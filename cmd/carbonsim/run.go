package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"carbon-telemetry/pkg/config"
	"carbon-telemetry/pkg/report"
	"carbon-telemetry/pkg/scenario"
)

func run(cfg *config.Config, logger *log.Logger) error {
	logger.Printf("running %s scenario: %.0f simulated seconds, loss rate %.2f, seed %d",
		cfg.Scenario, cfg.Timing.DurationSeconds, cfg.Network.LossRate, cfg.Seed)

	summary, err := scenario.Run(cfg, logger)
	if err != nil {
		return err
	}

	if err := report.WriteText(os.Stdout, summary); err != nil {
		return err
	}

	if cfg.Output.ResultsFile != "" {
		if err := writeFile(cfg.Output.ResultsFile, summary, report.WriteText); err != nil {
			return fmt.Errorf("write results file: %w", err)
		}
		logger.Printf("results written to %s", cfg.Output.ResultsFile)
	}
	if cfg.Output.JSONFile != "" {
		if err := writeFile(cfg.Output.JSONFile, summary, report.WriteJSON); err != nil {
			return fmt.Errorf("write JSON file: %w", err)
		}
		logger.Printf("JSON summary written to %s", cfg.Output.JSONFile)
	}

	if cfg.MQTT.BrokerURL != "" {
		publisher, err := report.NewMQTTPublisher(report.MQTTConfig{
			BrokerURL: cfg.MQTT.BrokerURL,
			Topic:     cfg.MQTT.Topic,
			ClientID:  cfg.MQTT.ClientID,
		})
		if err != nil {
			return err
		}
		if err := publisher.PublishSummary(summary); err != nil {
			return fmt.Errorf("publish summary: %w", err)
		}
		logger.Printf("summary %s published to %s", summary.RunID, cfg.MQTT.Topic)
	}

	return nil
}

func writeFile(path string, s report.Summary, write func(io.Writer, report.Summary) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return write(f, s)
}
