// Package main implements the entry point for masthead, which builds an
// in-memory catalog of writers, publications, and contributions and logs a
// report of its aggregate queries.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/phrazzld/masthead/internal/config"
	"github.com/phrazzld/masthead/internal/platform/logger"
	"github.com/phrazzld/masthead/internal/service"
	"github.com/phrazzld/masthead/internal/store"
)

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatalf("masthead failed: %v", err)
	}
}

// application holds the wired components of a running process.
type application struct {
	config   *config.Config
	logger   *slog.Logger
	registry *store.Registry
	catalog  service.CatalogService
}

// run loads configuration, wires the application and, when enabled, seeds
// the sample catalog and logs its report.
func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	app, err := newApplication(cfg, l)
	if err != nil {
		return err
	}

	_, err = app.runSampleReport(ctx)
	return err
}

// newApplication wires an empty registry and the catalog service.
func newApplication(cfg *config.Config, l *slog.Logger) (*application, error) {
	l.Info("configuration loaded",
		"log_level", cfg.Log.Level,
		"log_format", cfg.Log.Format,
		"frequent_contributor_threshold", cfg.Catalog.FrequentContributorThreshold,
		"sample_report", cfg.Catalog.SampleReport)

	reg := store.NewRegistry()
	svc, err := service.NewCatalogService(reg, cfg.Catalog.FrequentContributorThreshold, l)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog service: %w", err)
	}

	return &application{
		config:   cfg,
		logger:   l,
		registry: reg,
		catalog:  svc,
	}, nil
}

// runSampleReport seeds the sample catalog and logs its report. It returns
// false without doing anything when the sample report is disabled.
func (a *application) runSampleReport(ctx context.Context) (bool, error) {
	if !a.config.Catalog.SampleReport {
		a.logger.Info("sample report disabled")
		return false, nil
	}

	if err := seedSample(ctx, a.catalog); err != nil {
		return false, fmt.Errorf("failed to seed sample catalog: %w", err)
	}

	report := a.catalog.Report(ctx)
	counts := a.registry.Len()

	a.logger.Info("sample report",
		"writers", counts.Writers,
		"publications", counts.Publications,
		"contributions", counts.Contributions,
		"top_publisher", report.TopPublisher)
	for _, p := range report.Publications {
		a.logger.Info("publication summary",
			"name", p.Name,
			"category", p.Category,
			"titles", p.Titles,
			"frequent_contributors", p.FrequentContributors)
	}
	for _, w := range report.Writers {
		a.logger.Info("writer summary",
			"name", w.Name,
			"contributions", w.Contributions,
			"topic_areas", w.TopicAreas)
	}

	return true, nil
}
