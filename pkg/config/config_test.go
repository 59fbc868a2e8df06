package config

import (
	"flag"
	"os"
	"testing"
)

// resetFlags gives each subtest a fresh flag set so Load can re-parse.
func resetFlags(args ...string) {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	os.Args = append([]string{"carbonsim"}, args...)
}

func TestLoad(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	t.Run("defaults", func(t *testing.T) {
		resetFlags()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if cfg.Scenario != ScenarioConnectivity {
			t.Errorf("expected default scenario %q, got %q", ScenarioConnectivity, cfg.Scenario)
		}
		if cfg.Timing.DurationSeconds != DefaultConnectivityDurationSeconds {
			t.Errorf("expected duration %v, got %v",
				DefaultConnectivityDurationSeconds, cfg.Timing.DurationSeconds)
		}
		if cfg.Network.SensorPort != DefaultSensorPort {
			t.Errorf("expected sensor port %d, got %d", DefaultSensorPort, cfg.Network.SensorPort)
		}
	})

	t.Run("hierarchical duration default", func(t *testing.T) {
		resetFlags()
		os.Setenv(KeyScenario, ScenarioHierarchical)
		defer os.Unsetenv(KeyScenario)

		cfg, err := Load()
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if cfg.Timing.DurationSeconds != DefaultHierarchicalDurationSeconds {
			t.Errorf("expected duration %v, got %v",
				DefaultHierarchicalDurationSeconds, cfg.Timing.DurationSeconds)
		}
	})

	t.Run("flag overrides env", func(t *testing.T) {
		resetFlags("--sensors=9")
		os.Setenv(KeySensors, "3")
		defer os.Unsetenv(KeySensors)

		cfg, err := Load()
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if cfg.Topology.Sensors != 9 {
			t.Errorf("expected flag value 9, got %d", cfg.Topology.Sensors)
		}
	})

	t.Run("env overrides default", func(t *testing.T) {
		resetFlags()
		os.Setenv(KeyLossRate, "0.25")
		os.Setenv(KeyVerbose, "true")
		defer func() {
			os.Unsetenv(KeyLossRate)
			os.Unsetenv(KeyVerbose)
		}()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if cfg.Network.LossRate != 0.25 {
			t.Errorf("expected loss rate 0.25, got %v", cfg.Network.LossRate)
		}
		if !cfg.Verbose {
			t.Error("expected verbose to be set from env")
		}
	})

	t.Run("invalid scenario", func(t *testing.T) {
		resetFlags("--scenario=mesh")

		if _, err := Load(); err == nil {
			t.Fatal("expected error for unknown scenario, got nil")
		}
	})

	t.Run("missing explicit config file", func(t *testing.T) {
		resetFlags("--config-file=/nonexistent/carbonsim.yaml")

		if _, err := Load(); err == nil {
			t.Fatal("expected error for missing config file, got nil")
		}
	})
}

func TestLoadFromConfigFile(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	path := t.TempDir() + "/carbonsim.yaml"
	content := []byte("scenario: hierarchical\nzones: 3\nsensors_per_zone: 4\nloss_rate: 0.1\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	resetFlags("--config-file=" + path)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Scenario != ScenarioHierarchical {
		t.Errorf("expected scenario from file, got %q", cfg.Scenario)
	}
	if cfg.Topology.Zones != 3 || cfg.Topology.SensorsPerZone != 4 {
		t.Errorf("expected topology 3x4 from file, got %dx%d",
			cfg.Topology.Zones, cfg.Topology.SensorsPerZone)
	}
	if cfg.Network.LossRate != 0.1 {
		t.Errorf("expected loss rate 0.1 from file, got %v", cfg.Network.LossRate)
	}
}
