package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/eytandecker/at502-perf/internal/logger"
	"github.com/eytandecker/at502-perf/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the interactive performance form over HTTP",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := newApp(false)
	if err != nil {
		return err
	}
	log := logger.New("http")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr: a.cfg.Server.Addr,
		Handler: web.New(web.Deps{
			Estimator:       a.estimator,
			Runways:         a.runways,
			Feedback:        a.feedback,
			Metrics:         a.sink,
			Gatherer:        a.registry,
			Logger:          log,
			ProfilePoints:   a.cfg.Chart.Points,
			ProfileMaxAltFt: a.cfg.Chart.MaxAltFt,
		}),
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("listening on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	log.Infof("server stopped")
	return nil
}
