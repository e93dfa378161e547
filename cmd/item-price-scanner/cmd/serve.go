package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/exilemarket/item-price-scanner/api/openapi"
	"github.com/exilemarket/item-price-scanner/internal/api/handlers"
	"github.com/exilemarket/item-price-scanner/internal/api/middleware"
	"github.com/exilemarket/item-price-scanner/internal/config"
	"github.com/exilemarket/item-price-scanner/internal/engine"
	"github.com/exilemarket/item-price-scanner/internal/store"
	"github.com/exilemarket/item-price-scanner/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and scheduler",
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

	cmdLog := log.NewWithOptions(os.Stderr, log.Options{
		Level: parseLogLevel(cfg.Logging.Level),
	})
	slg := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	cancel()
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	dealLog := logger.NewRotatingFile(
		cfg.Deals.Log.Path,
		cfg.Deals.Log.MaxSizeMB,
		cfg.Deals.Log.MaxBackups,
		cfg.Deals.Log.MaxAgeDays,
	)
	defer dealLog.Close() //nolint:errcheck // best-effort flush on shutdown

	eng, err := buildEngine(cfg, st, slg, dealLog)
	if err != nil {
		return err
	}

	sched, err := engine.NewScheduler(eng, cfg.Schedule.PrepareInterval, slg)
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}
	sched.Start()
	sched.SyncNextRunTimestamp()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestLog(slg))
	e.Use(middleware.Recovery(slg))
	e.Use(middleware.Metrics())

	health := handlers.NewHealthHandler(st)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	openapi.RegisterRoutes(e)

	api := humaecho.New(e, huma.DefaultConfig("item-price-scanner", Version))
	handlers.RegisterScanRoutes(api, handlers.NewScanHandler(eng))
	handlers.RegisterSchemaRoutes(api, handlers.NewSchemasHandler(st))
	handlers.RegisterDealRoutes(api, handlers.NewDealsHandler(st))
	handlers.RegisterJobRoutes(api, handlers.NewJobsHandler(st))
	handlers.RegisterTriggerRoutes(api, handlers.NewPrepareHandler(eng))

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	cmdLog.Info("starting server", "addr", addr, "league", cfg.Source.League)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			cmdLog.Error("server error", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	cmdLog.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	// Let an in-flight prepare run finish before the pool closes.
	select {
	case <-sched.Stop().Done():
	case <-shutdownCtx.Done():
		cmdLog.Warn("scheduler jobs did not finish before shutdown deadline")
	}

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	cmdLog.Info("server stopped")
	return nil
}

// schemasFile is the artifact filename inside the configured schemas dir.
const schemasFile = "columns.json"

func parseLogLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

func schemasPath(cfg *config.Config) string {
	return filepath.Join(cfg.Schemas.Dir, schemasFile)
}
