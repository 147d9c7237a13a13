package application

import (
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/eugenenazirov/fuel-counter-upper/internal/config"
	"github.com/eugenenazirov/fuel-counter-upper/internal/fuel"
	"github.com/eugenenazirov/fuel-counter-upper/internal/masses"
)

// App encapsulates the dependencies of a single fuel calculation run.
type App struct {
	cfg        config.Config
	calculator fuel.Calculator
	logger     *zap.Logger
	out        io.Writer
}

// New initializes the application with all dependencies from the provided configuration.
// The result of Run is written to out.
func New(cfg config.Config, logger *zap.Logger, out io.Writer) (*App, error) {
	calc, err := fuel.New(cfg.Variant)
	if err != nil {
		return nil, fmt.Errorf("failed to select fuel calculator: %w", err)
	}

	return &App{
		cfg:        cfg,
		calculator: calc,
		logger:     logger,
		out:        out,
	}, nil
}

// newProgress throttles progress logging to one entry per interval.
// A zero interval logs every module.
func newProgress(interval time.Duration) *rate.Sometimes {
	if interval <= 0 {
		return &rate.Sometimes{Every: 1}
	}
	return &rate.Sometimes{Interval: interval}
}

// Run loads the mass list, sums the fuel for every module and prints the total.
// Nothing is printed when the input cannot be read or parsed.
func (a *App) Run() (fuel.Report, error) {
	start := time.Now()

	list, err := masses.Load(a.cfg.InputPath)
	if err != nil {
		return fuel.Report{}, fmt.Errorf("load masses: %w", err)
	}
	a.logger.Info("masses loaded",
		zap.String("input", a.cfg.InputPath),
		zap.Int("modules", len(list)),
	)

	progress := newProgress(a.cfg.ProgressInterval)
	total := 0
	for i, mass := range list {
		moduleFuel := a.calculator.ModuleFuel(mass)
		total += moduleFuel
		progress.Do(func() {
			a.logger.Debug("module fuel computed",
				zap.Int("module", i+1),
				zap.Int("mass", mass),
				zap.Int("fuel", moduleFuel),
				zap.Int("running_total", total),
			)
		})
	}

	if _, err := fmt.Fprintln(a.out, total); err != nil {
		return fuel.Report{}, fmt.Errorf("write total: %w", err)
	}

	report := fuel.Report{
		Variant: a.cfg.Variant,
		Modules: len(list),
		Total:   total,
	}
	a.logger.Info("fuel total computed",
		zap.String("variant", string(report.Variant)),
		zap.Int("modules", report.Modules),
		zap.Int("total", report.Total),
		zap.Duration("duration", time.Since(start)),
	)
	return report, nil
}
