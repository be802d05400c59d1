package app

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvstep/bench"
	"github.com/katalvlaran/lvstep/ctxlog"
)

// Run executes every loaded scenario in order and writes the report table.
// The metrics endpoint, when configured, lives as long as ctx.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if cfg.MetricsAddr != "" {
		if _, err := a.startMetricsServer(ctx, cfg.MetricsAddr); err != nil {
			return fmt.Errorf("failed to start metrics server: %w", err)
		}
	}

	if len(a.scenarios) == 0 {
		a.logger.Warn("No scenarios found, nothing to run.")
		return nil
	}

	runner := bench.NewRunner(bench.WithMetrics(a.recorder))
	reports := make([]bench.Report, 0, len(a.scenarios))
	for _, sc := range a.scenarios {
		a.logger.Info("Starting scenario.", "scenario", sc.Name, "vertices", sc.Vertices, "loops", sc.Loops)
		rep, err := runner.Run(ctx, sc)
		if err != nil {
			return fmt.Errorf("scenario %q failed: %w", sc.Name, err)
		}
		reports = append(reports, rep)
	}
	a.logger.Info("All scenarios finished.", "count", len(reports))

	return bench.WriteTable(a.outW, reports)
}
