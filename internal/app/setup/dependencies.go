package setup

import (
	"fmt"

	"github.com/LavaJover/shvark-country-service/internal/config"
	"github.com/LavaJover/shvark-country-service/internal/domain"
	"github.com/LavaJover/shvark-country-service/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-country-service/internal/infrastructure/logger"
	"github.com/LavaJover/shvark-country-service/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-country-service/internal/infrastructure/migrate"
	"github.com/LavaJover/shvark-country-service/internal/infrastructure/postgres"
	"github.com/LavaJover/shvark-country-service/internal/infrastructure/postgres/repository"
	"github.com/LavaJover/shvark-country-service/internal/infrastructure/render"
	"github.com/LavaJover/shvark-country-service/internal/infrastructure/sources"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

type Dependencies struct {
	Config         *config.CountryConfig
	DB             *gorm.DB
	Registry       *prometheus.Registry
	Metrics        *metrics.RefreshMetrics
	SourceClient   *sources.HTTPClient
	Renderer       *render.PNGRenderer
	EventPublisher *kafka.KafkaPublisher
	AuditLogger    domain.RefreshAuditLogger
	Repositories   *Repositories
}

type Repositories struct {
	CountryRepo domain.CountryRepository
	SummaryRepo domain.SummaryRepository
}

func InitializeDependencies(cfg *config.CountryConfig) (*Dependencies, error) {
	db := postgres.MustInitDB(cfg)

	if err := migrate.RunMigrations(db, cfg.CountryDB.MigrationsPath); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	var publisher *kafka.KafkaPublisher
	if cfg.KafkaService.Enabled() {
		publisher = kafka.NewKafkaPublisher([]string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)})
	}

	return &Dependencies{
		Config:         cfg,
		DB:             db,
		Registry:       registry,
		Metrics:        metrics.NewRefreshMetrics(registry),
		SourceClient:   sources.NewHTTPClient(cfg.Sources.Timeout),
		Renderer:       render.NewPNGRenderer(),
		EventPublisher: publisher,
		AuditLogger:    logger.NewPGRefreshLogger(db),
		Repositories: &Repositories{
			CountryRepo: repository.NewDefaultCountryRepository(db),
			SummaryRepo: repository.NewDefaultSummaryRepository(db),
		},
	}, nil
}

func (d *Dependencies) Close() {
	if d.EventPublisher != nil {
		_ = d.EventPublisher.Close()
	}
	if sqlDB, err := d.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
