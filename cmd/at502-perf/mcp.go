package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/eytandecker/at502-perf/internal/logger"
	internalmcp "github.com/eytandecker/at502-perf/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Expose the estimator as MCP tools over stdio",
	RunE:  runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	a, err := newApp(true)
	if err != nil {
		return err
	}
	log := logger.New("mcp")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, os.Interrupt)
	defer cancel()

	srv := internalmcp.NewServer(internalmcp.Deps{
		Estimator:       a.estimator,
		Runways:         a.runways,
		Feedback:        a.feedback,
		Logger:          log,
		ProfilePoints:   a.cfg.Chart.Points,
		ProfileMaxAltFt: a.cfg.Chart.MaxAltFt,
	})
	log.Infof("serving MCP over stdio")
	if err := srv.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
