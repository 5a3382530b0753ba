package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/eytandecker/at502-perf/internal/config"
	"github.com/eytandecker/at502-perf/internal/logger"
	"github.com/eytandecker/at502-perf/internal/metrics"
	"github.com/eytandecker/at502-perf/internal/performance"
	"github.com/eytandecker/at502-perf/internal/store"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:           "at502-perf",
	Short:         "Air Tractor AT-502B performance estimator",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (yaml or json)")
}

// app holds the components shared by every command.
type app struct {
	cfg       *config.Config
	registry  *prometheus.Registry
	sink      *metrics.PromSink
	estimator *performance.Estimator
	runways   *store.RunwayStore
	feedback  *store.FeedbackStore
}

// newApp loads configuration, sets up logging and builds the shared
// components. stderrLogs keeps stdout free for protocol traffic.
func newApp(stderrLogs bool) (*app, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := logger.Setup(logger.Options{
		Level:      cfg.Logging.Level,
		File:       cfg.Logging.File,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		Stderr:     stderrLogs,
	}); err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	reg := prometheus.NewRegistry()
	sink, err := metrics.NewPromSink(reg)
	if err != nil {
		return nil, fmt.Errorf("metrics: %w", err)
	}
	return &app{
		cfg:       cfg,
		registry:  reg,
		sink:      sink,
		estimator: performance.NewEstimator(cfg.Estimator.MemoSize, sink),
		runways:   store.NewRunwayStore(cfg.Store.RunwayFile, logger.New("runway-store")),
		feedback:  store.NewFeedbackStore(cfg.Store.FeedbackFile, logger.New("feedback-store")),
	}, nil
}
