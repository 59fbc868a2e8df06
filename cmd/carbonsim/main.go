package main

import (
	"fmt"
	"log"
	"os"

	"carbon-telemetry/pkg/config"
	"carbon-telemetry/pkg/version"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		info := version.Info()
		fmt.Printf("carbonsim version %s, commit %s, built %s\n", info.Version, info.Commit, info.Built)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	if cfg == nil {
		return // help was shown
	}

	logger := log.New(os.Stderr, "", log.LstdFlags)
	if err := run(cfg, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
