package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/fuel-counter-upper/internal/fuel"
)

const (
	defaultInputPath        = "input.txt"
	defaultVariant          = fuel.VariantSimple
	defaultLogLevel         = "info"
	defaultProgressInterval = time.Second
)

// Config aggregates runtime configuration resolved from multiple sources.
// Precedence: CLI flags > YAML config > Environment variables > Defaults
type Config struct {
	InputPath        string        `yaml:"input"`
	Variant          fuel.Variant  `yaml:"variant"`
	LogLevel         string        `yaml:"log_level"`
	ProgressInterval time.Duration `yaml:"progress_interval"`
}

// yamlConfig represents the YAML configuration file structure.
type yamlConfig struct {
	Input            string `yaml:"input"`
	Variant          string `yaml:"variant"`
	LogLevel         string `yaml:"log_level"`
	ProgressInterval string `yaml:"progress_interval"`
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	ConfigFile       string
	InputPath        *string
	Variant          *string
	LogLevel         *string
	ProgressInterval *time.Duration
}

// Load extracts configuration from multiple sources with precedence:
// CLI flags > YAML config > Environment variables > Defaults
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig()

	// Environment first so the YAML file can override it
	if err := applyEnvConfig(&cfg); err != nil {
		return Config{}, err
	}

	if overrides != nil && overrides.ConfigFile != "" {
		yamlCfg, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("load YAML config: %w", err)
		}
		if err := applyYAMLConfig(&cfg, yamlCfg); err != nil {
			return Config{}, fmt.Errorf("apply YAML config: %w", err)
		}
	}

	if overrides != nil {
		if err := applyCLIOverrides(&cfg, overrides); err != nil {
			return Config{}, err
		}
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// defaultConfig returns a Config with default values.
func defaultConfig() Config {
	return Config{
		InputPath:        defaultInputPath,
		Variant:          defaultVariant,
		LogLevel:         defaultLogLevel,
		ProgressInterval: defaultProgressInterval,
	}
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

// applyYAMLConfig applies YAML configuration to the Config struct.
func applyYAMLConfig(cfg *Config, yamlCfg *yamlConfig) error {
	if yamlCfg.Input != "" {
		cfg.InputPath = yamlCfg.Input
	}

	if yamlCfg.Variant != "" {
		v, err := fuel.ParseVariant(yamlCfg.Variant)
		if err != nil {
			return err
		}
		cfg.Variant = v
	}

	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}

	if yamlCfg.ProgressInterval != "" {
		d, err := time.ParseDuration(yamlCfg.ProgressInterval)
		if err != nil {
			return fmt.Errorf("progress_interval: %w", err)
		}
		cfg.ProgressInterval = d
	}

	return nil
}

// applyEnvConfig applies environment variable configuration.
func applyEnvConfig(cfg *Config) error {
	if input := strings.TrimSpace(os.Getenv("FUEL_INPUT")); input != "" {
		cfg.InputPath = input
	}

	if raw := strings.TrimSpace(os.Getenv("FUEL_VARIANT")); raw != "" {
		v, err := fuel.ParseVariant(raw)
		if err != nil {
			return fmt.Errorf("FUEL_VARIANT: %w", err)
		}
		cfg.Variant = v
	}

	if level := strings.TrimSpace(os.Getenv("LOG_LEVEL")); level != "" {
		cfg.LogLevel = level
	}

	if raw := strings.TrimSpace(os.Getenv("FUEL_PROGRESS_INTERVAL")); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("FUEL_PROGRESS_INTERVAL: %w", err)
		}
		cfg.ProgressInterval = d
	}

	return nil
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) error {
	if overrides.InputPath != nil && *overrides.InputPath != "" {
		cfg.InputPath = *overrides.InputPath
	}

	if overrides.Variant != nil && *overrides.Variant != "" {
		v, err := fuel.ParseVariant(*overrides.Variant)
		if err != nil {
			return fmt.Errorf("parse variant: %w", err)
		}
		cfg.Variant = v
	}

	if overrides.LogLevel != nil && *overrides.LogLevel != "" {
		cfg.LogLevel = *overrides.LogLevel
	}

	if overrides.ProgressInterval != nil {
		cfg.ProgressInterval = *overrides.ProgressInterval
	}

	return nil
}

// validateConfig validates the final configuration.
func validateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.InputPath) == "" {
		return errors.New("input path cannot be empty")
	}
	if _, err := fuel.New(cfg.Variant); err != nil {
		return err
	}
	if _, err := zap.ParseAtomicLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	if cfg.ProgressInterval < 0 {
		return fmt.Errorf("progress interval must be >= 0, got %s", cfg.ProgressInterval)
	}
	return nil
}
