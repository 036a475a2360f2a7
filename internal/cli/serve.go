package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/plasticbusters/plasticbusters/internal/adapters/memory"
	"github.com/plasticbusters/plasticbusters/internal/adapters/otel"
	"github.com/plasticbusters/plasticbusters/internal/dashboard"
	"github.com/plasticbusters/plasticbusters/internal/infrastructure/config"
	"github.com/plasticbusters/plasticbusters/internal/infrastructure/logging"
	"github.com/plasticbusters/plasticbusters/internal/ports"
	"github.com/plasticbusters/plasticbusters/internal/session"
	"github.com/plasticbusters/plasticbusters/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Long: `Start the Plastic Busters web server.

Examples:
  plasticbusters serve              # Port from PB_PORT (default 8080)
  plasticbusters serve --port 3000  # Start on port 3000`,
	RunE: runServe,
}

var servePort int

const shutdownTimeout = 5 * time.Second

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "Port to listen on (overrides PB_PORT)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}

	level, _ := cfg.Level()
	logger := logging.New(os.Stderr, cfg.AppEnv, level, version)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metrics := newMetricsExporter(ctx, cfg, logger)
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := metrics.Close(closeCtx); err != nil {
			logger.Warn("metrics exporter close failed", "error", err)
		}
	}()

	server := newServer(cfg, metrics, logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Start(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// newMetricsExporter returns the OTLP exporter, or a no-op one when export is
// disabled or the collector cannot be set up.
func newMetricsExporter(ctx context.Context, cfg *config.Config, logger *slog.Logger) ports.MetricsExporter {
	exp, err := otel.NewExporter(ctx, otel.Config{
		Enabled:  cfg.Otel.Enabled,
		Endpoint: cfg.Otel.Endpoint,
		Insecure: cfg.Otel.Insecure,
	})
	switch {
	case errors.Is(err, otel.ErrDisabled):
		logger.Debug("metrics export disabled")
		return otel.NewNoOpExporter()
	case err != nil:
		logger.Warn("metrics export unavailable, continuing without it", "error", err)
		return otel.NewNoOpExporter()
	}
	logger.Info("metrics export enabled", "endpoint", cfg.Otel.Endpoint)
	return exp
}

// newServer wires a server whose sessions each get their own in-memory store.
func newServer(cfg *config.Config, metrics ports.MetricsExporter, logger *slog.Logger) *web.Server {
	registry := session.NewRegistry(cfg.Session.Max, cfg.Session.TTL, func() *dashboard.Service {
		return dashboard.NewService(memory.NewMeasurementStore(), metrics, logger)
	}, logger)
	return web.NewServer(cfg.Port, registry, logger, cfg.MaxUploadBytes)
}
