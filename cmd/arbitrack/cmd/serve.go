package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"arbitrack/internal/api/handlers"
	"arbitrack/internal/api/middleware"
	"arbitrack/internal/config"
	"arbitrack/internal/engine"
	"arbitrack/internal/notify"
	"arbitrack/internal/settings"
	"arbitrack/internal/store"
	"arbitrack/internal/telemetry"
	"arbitrack/internal/worker"
	"arbitrack/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server, scheduler, and job workers",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Setup(ctx, telemetry.Config{
			Endpoint:    cfg.Telemetry.Endpoint,
			ServiceName: cfg.Telemetry.ServiceName,
			Insecure:    true,
		})
		if err != nil {
			return fmt.Errorf("setting up telemetry: %w", err)
		}
		defer func() {
			flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := shutdown(flushCtx); err != nil {
				log.Warn("telemetry shutdown", "error", err)
			}
		}()
	}

	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	if err := st.Migrate(ctx); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	var notifier notify.Notifier
	if cfg.Notifications.Discord.Enabled {
		notifier = notify.NewDiscordNotifier(cfg.Notifications.Discord.WebhookURL)
		log.Info("discord notifications enabled")
	} else {
		notifier = notify.NewNoOpNotifier(log)
	}

	eng := engine.NewEngine(st, notifier,
		engine.WithLogger(log),
		engine.WithTransactional(cfg.Scoring.Transactional),
	)

	sched, err := engine.NewScheduler(
		st,
		cfg.Schedule.RefreshInterval,
		cfg.Schedule.RecoveryInterval,
		log,
	)
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}
	sched.Start()

	dispatcher := worker.NewDispatcher(st, eng,
		worker.WithLogger(log),
		worker.WithWorkers(cfg.Worker.Workers),
		worker.WithPollInterval(cfg.Worker.PollInterval),
		worker.WithRateLimit(cfg.Worker.RateLimit),
	)
	dispatcherDone := make(chan error, 1)
	go func() {
		dispatcherDone <- dispatcher.Run(ctx)
	}()

	e := buildServer(st, log)

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", "addr", addr)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	<-sched.Stop().Done()
	if err := <-dispatcherDone; err != nil && !errors.Is(err, context.Canceled) {
		log.Warn("dispatcher stopped", "error", err)
	}

	log.Info("server stopped")
	return nil
}

// buildServer assembles the echo instance with middleware, operational
// endpoints, and all versioned API routes.
func buildServer(st store.Store, log *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestLog(log))
	e.Use(middleware.Recovery(log))
	e.Use(middleware.Metrics())

	health := handlers.NewHealthHandler(st)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	humaCfg := huma.DefaultConfig("arbitrack", Version)
	api := humaecho.New(e, humaCfg)

	resolver := settings.NewResolver(st, log)

	handlers.RegisterScoreRoutes(api, handlers.NewScoresHandler(st))
	handlers.RegisterCalcRoutes(api, handlers.NewCalcHandler(resolver))
	handlers.RegisterAlertRoutes(api, handlers.NewAlertsHandler(st))
	handlers.RegisterStoreRoutes(api, handlers.NewStoresHandler(st))
	handlers.RegisterProductRoutes(api, handlers.NewProductsHandler(st))
	handlers.RegisterSettingRoutes(api, handlers.NewSettingsHandler(st))
	handlers.RegisterJobRoutes(api, handlers.NewJobsHandler(st))
	handlers.RegisterRefreshRoutes(api, handlers.NewRefreshHandler(st))

	return e
}
