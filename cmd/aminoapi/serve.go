package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/platinummonkey/aminoapi/pkg/api"
	"github.com/platinummonkey/aminoapi/pkg/catalog"
	"github.com/platinummonkey/aminoapi/pkg/config"
	"github.com/platinummonkey/aminoapi/pkg/observability"
	"github.com/platinummonkey/aminoapi/pkg/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/errgroup"
)

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the amino acid API",
		Long: `Start the amino acid API and a separate health/metrics server.

Configuration is read from AMINO_* environment variables; flags override
the port and dataset path. The dataset is loaded once at startup and the
process exits if it cannot be loaded.`,
		Example: `  # Embedded dataset on the default ports
  aminoapi serve

  # Custom dataset, reloaded when the file changes
  AMINO_DATASET_WATCH=true aminoapi serve --dataset ./amino_acids.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadFromEnv()
			if cmd.Flags().Changed("port") {
				cfg.Server.Port, _ = cmd.Flags().GetString("port")
			}
			if cmd.Flags().Changed("dataset") {
				cfg.Dataset.Path, _ = cmd.Flags().GetString("dataset")
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("configuration validation failed: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cfg)
		},
	}

	cmd.Flags().StringP("port", "p", "8080", "API port (overrides AMINO_PORT)")
	cmd.Flags().String("dataset", "", "Dataset file, JSON or YAML (overrides AMINO_DATASET_PATH)")
	return cmd
}

// runServe blocks until ctx is cancelled or a server fails
func runServe(ctx context.Context, cfg *config.Config) error {
	logger := observability.NewLogger(cfg.Observability.LogLevel, os.Stdout).
		WithField("service", "aminoapi").
		WithField("version", Version)

	shutdown := observability.NewShutdownManager(logger, cfg.Server.ShutdownTimeout)

	providers, err := observability.InitOTel(ctx, cfg.Observability.OTel(), logger)
	if err != nil {
		return fmt.Errorf("failed to initialize OpenTelemetry: %w", err)
	}
	if providers != nil {
		shutdown.RegisterShutdownFunc(func(ctx context.Context) error {
			return observability.ShutdownOTel(ctx, providers, logger)
		})
	}

	registry := prometheus.NewRegistry()
	var metrics *observability.Metrics
	if cfg.Observability.MetricsEnabled {
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		metrics = observability.NewMetrics(registry)
	}

	cat, err := catalog.New(catalog.Source{Path: cfg.Dataset.Path},
		catalog.WithLogger(logger),
		catalog.WithMetrics(metrics),
	)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	var handler http.Handler = api.NewServer(cat, logger, api.WithMetrics(metrics))
	if providers != nil {
		handler = otelhttp.NewHandler(handler, "aminoapi")
	}

	apiServer := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	checker := observability.NewHealthChecker(Version)
	checker.AddCheck("dataset", cat.HealthCheck)
	healthMux := http.NewServeMux()
	observability.RegisterHealthRoutes(healthMux, checker)
	if cfg.Observability.MetricsEnabled {
		observability.RegisterMetricsEndpoint(healthMux, registry)
	}
	docs, err := swagger.NewSwaggerHandlers()
	if err != nil {
		return err
	}
	docs.RegisterRoutes(healthMux)
	healthServer := &http.Server{
		Addr:        cfg.Server.HealthAddr(),
		Handler:     healthMux,
		ReadTimeout: cfg.Server.ReadTimeout,
		IdleTimeout: cfg.Server.IdleTimeout,
	}

	if cfg.Dataset.ReloadSchedule != "" {
		stopSchedule, err := cat.ScheduleReload(cfg.Dataset.ReloadSchedule)
		if err != nil {
			return err
		}
		shutdown.RegisterShutdownFunc(stopSchedule)
	}

	shutdown.RegisterServer(apiServer)
	shutdown.RegisterServer(healthServer)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error { return listen(apiServer, logger.WithField("server", "api")) })
	g.Go(func() error { return listen(healthServer, logger.WithField("server", "health")) })

	if cfg.Dataset.Watch {
		g.Go(func() error { return cat.Watch(gctx) })
	}
	g.Go(func() error { return shutdown.WaitForShutdown(gctx) })

	return g.Wait()
}

// listen runs srv until it is shut down; a clean shutdown is not an error
func listen(srv *http.Server, logger *observability.Logger) error {
	logger.WithField("addr", srv.Addr).Info("Listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s: %w", srv.Addr, err)
	}
	return nil
}
