package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/exilemarket/item-price-scanner/internal/config"
	"github.com/exilemarket/item-price-scanner/internal/dataset"
	"github.com/exilemarket/item-price-scanner/internal/engine"
	"github.com/exilemarket/item-price-scanner/internal/estimator"
	"github.com/exilemarket/item-price-scanner/internal/notify"
	"github.com/exilemarket/item-price-scanner/internal/source"
	"github.com/exilemarket/item-price-scanner/internal/store"
	"github.com/exilemarket/item-price-scanner/pkg/catalog"
	"github.com/exilemarket/item-price-scanner/pkg/logger"
	"github.com/exilemarket/item-price-scanner/pkg/modifier"
	"github.com/exilemarket/item-price-scanner/pkg/normalize"
	"github.com/exilemarket/item-price-scanner/pkg/schema"
)

var prepareCmd = &cobra.Command{
	Use:   "prepare",
	Short: "Run one dataset and schema refresh, then exit",
	Long:  "Scans the full sold-item corpus from the trade index, exports per-category training tables, and persists the resulting column schemas. Useful for initial bootstrap and cron-free deployments.",
	RunE:  runPrepareOnce,
}

func init() {
	rootCmd.AddCommand(prepareCmd)
}

func runPrepareOnce(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	cmdLog := log.NewWithOptions(os.Stderr, log.Options{
		Level: parseLogLevel(cfg.Logging.Level),
	})
	slg := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx := cmd.Context()

	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	eng, err := buildEngine(cfg, st, slg, io.Discard)
	if err != nil {
		return err
	}

	cmdLog.Info("running prepare", "league", cfg.Source.League, "dataset_dir", cfg.Dataset.Dir)

	if err := eng.RunPrepare(ctx); err != nil {
		return fmt.Errorf("running prepare: %w", err)
	}

	cmdLog.Info("prepare complete", "schemas", schemasPath(cfg))
	return nil
}

// buildEngine assembles an Engine from config. dealLog receives JSON deal
// records; one-shot commands pass io.Discard.
func buildEngine(
	cfg *config.Config,
	st store.Store,
	slg *slog.Logger,
	dealLog io.Writer,
) (*engine.Engine, error) {
	registry := catalog.New()

	mods, err := modifier.NewParser(0)
	if err != nil {
		return nil, fmt.Errorf("creating modifier parser: %w", err)
	}
	normalizer := normalize.New(registry, mods)

	src := source.NewScrollClient(
		cfg.Source.BaseURL,
		source.WithPageSize(cfg.Source.PageSize),
		source.WithMaxPages(cfg.Source.MaxPages),
		source.WithScrollTTL(cfg.Source.ScrollTTL),
		source.WithRateLimit(cfg.Source.RateLimit.PerSecond, cfg.Source.RateLimit.Burst),
		source.WithHTTPClient(&http.Client{Timeout: cfg.Source.HTTPTimeout}),
		source.WithLogger(slg),
	)

	var est estimator.Estimator
	switch cfg.Estimator.Backend {
	case "baseline":
		est = estimator.NewBaseline()
	default:
		est = estimator.NewHTTPBackend(
			cfg.Estimator.Endpoint,
			estimator.WithHTTPClient(&http.Client{Timeout: cfg.Estimator.Timeout}),
		)
	}

	var notifier notify.Notifier = notify.NewNoOpNotifier(slg)
	if cfg.Notifications.Discord.Enabled {
		notifier = notify.NewDiscordNotifier(cfg.Notifications.Discord.WebhookURL)
	}

	exporter, err := dataset.NewExporter(cfg.Dataset.Dir, cfg.Dataset.Format, dataset.WithLogger(slg))
	if err != nil {
		return nil, fmt.Errorf("creating dataset exporter: %w", err)
	}

	opts := []engine.Option{
		engine.WithLogger(slg),
		engine.WithFillPolicy(cfg.Schemas.FillPolicy()),
		engine.WithDealRule(engine.DealRule{
			MinProfitChaos: cfg.Deals.MinProfitChaos,
			MinProfitRatio: cfg.Deals.MinProfitRatio,
		}),
		engine.WithDealLog(dealLog),
		engine.WithLeague(cfg.Source.League),
		engine.WithExporter(exporter, schemasPath(cfg)),
		engine.WithMaxPriceChaos(cfg.Dataset.MaxPriceChaos),
	}

	if path := schemasPath(cfg); fileExists(path) {
		artifact, err := schema.Load(path)
		if err != nil {
			return nil, fmt.Errorf("loading column schemas from %s: %w", path, err)
		}
		slg.Info("loaded column schemas", "path", path)
		opts = append(opts, engine.WithArtifact(artifact))
	} else {
		slg.Warn("no column schema artifact on disk, scans will fail until prepare runs", "path", path)
	}

	return engine.NewEngine(st, src, est, notifier, registry, normalizer, opts...), nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
