package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/katalvlaran/lvstep/bench"
	"github.com/katalvlaran/lvstep/config"
	"github.com/katalvlaran/lvstep/ctxlog"
	"github.com/katalvlaran/lvstep/metrics"
)

// App wires the scenario loader, the comparison runner, logging and metrics.
type App struct {
	outW      io.Writer
	logger    *slog.Logger
	registry  *prometheus.Registry
	recorder  *metrics.Recorder
	scenarios []bench.Scenario
}

// NewApp builds an App: it configures the logger, loads every scenario and
// registers the metric collectors. Logs go to logW, the report to outW.
func NewApp(ctx context.Context, outW, logW io.Writer, cfg *Config) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Logger configured successfully.")

	scenarios, err := config.Load(ctx, cfg.ScenarioPaths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load scenarios: %w", err)
	}
	if cfg.Verify {
		for i := range scenarios {
			scenarios[i].Verify = true
		}
	}
	logger.Debug("Scenarios loaded.", "count", len(scenarios))

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return &App{
		outW:      outW,
		logger:    logger,
		registry:  reg,
		recorder:  metrics.New(reg),
		scenarios: scenarios,
	}, nil
}

// Scenarios returns the loaded scenarios. This is primarily for testing.
func (a *App) Scenarios() []bench.Scenario {
	return a.scenarios
}

// Registry returns the metrics registry. This is primarily for testing.
func (a *App) Registry() *prometheus.Registry {
	return a.registry
}
