package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/fuel-counter-upper/internal/application"
	"github.com/eugenenazirov/fuel-counter-upper/internal/config"
	"github.com/eugenenazirov/fuel-counter-upper/internal/logging"
)

var newLogger = logging.New

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "fuel: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	kingpinApp := kingpin.New("fuel", "Fuel Counter-Upper - sums the fuel required to launch a list of modules")
	configFile := kingpinApp.Flag("config", "Path to YAML configuration file").String()
	input := kingpinApp.Flag("input", "Path to the module mass list, one integer per line").Short('i').String()
	variant := kingpinApp.Flag("variant", "Fuel variant: simple, or recursive to include fuel for the fuel").String()
	logLevel := kingpinApp.Flag("log-level", "Minimum log level written to stderr").String()
	progressInterval := kingpinApp.Flag("progress-interval", "Minimum delay between progress log entries (negative keeps configured value)").Default("-1s").Duration()

	if _, err := kingpinApp.Parse(args); err != nil {
		return err
	}

	overrides := &config.CLIOverrides{
		ConfigFile: *configFile,
	}

	if *input != "" {
		overrides.InputPath = input
	}

	if *variant != "" {
		overrides.Variant = variant
	}

	if *logLevel != "" {
		overrides.LogLevel = logLevel
	}

	if *progressInterval >= 0 {
		overrides.ProgressInterval = progressInterval
	}

	cfg, err := config.Load(overrides)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	app, err := application.New(cfg, logger, stdout)
	if err != nil {
		logger.Error("failed to initialize application", zap.Error(err))
		return err
	}

	start := time.Now()
	if _, err := app.Run(); err != nil {
		logger.Error("fuel calculation failed",
			zap.String("input", cfg.InputPath),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		return err
	}

	return nil
}
