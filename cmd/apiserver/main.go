// API server entry point for BullsEye-Radar.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/turtacn/BullsEye-Radar/internal/application/chart"
	"github.com/turtacn/BullsEye-Radar/internal/application/dataset"
	"github.com/turtacn/BullsEye-Radar/internal/config"
	"github.com/turtacn/BullsEye-Radar/internal/infrastructure/database/postgres"
	"github.com/turtacn/BullsEye-Radar/internal/infrastructure/database/postgres/repositories"
	"github.com/turtacn/BullsEye-Radar/internal/infrastructure/database/redis"
	"github.com/turtacn/BullsEye-Radar/internal/infrastructure/messaging/kafka"
	"github.com/turtacn/BullsEye-Radar/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/BullsEye-Radar/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/BullsEye-Radar/internal/infrastructure/storage/minio"
	httpserver "github.com/turtacn/BullsEye-Radar/internal/interfaces/http"
	"github.com/turtacn/BullsEye-Radar/internal/interfaces/http/handlers"
)

// Build-time variables injected via ldflags.
var (
	version = "dev"
)

const defaultConfigPath = "configs/config.yaml"

func main() {
	configPath := flag.String("config", defaultConfigPath, "path to configuration file")
	httpPort := flag.Int("http-port", 0, "HTTP server port (overrides config)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if *httpPort > 0 {
		cfg.Server.Port = *httpPort
	}

	logger, err := logging.NewLogger(logging.LogConfig{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logger.Info("Starting BullsEye-Radar API server",
		logging.String("version", version),
		logging.Int("http_port", cfg.Server.Port),
	)

	if err := run(cfg, logger); err != nil {
		logger.Error("Server exited with error", logging.Err(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger logging.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Postgres is required; everything else degrades gracefully.
	conn, err := postgres.NewConnection(ctx, cfg.Database, logger.Named("postgres"))
	if err != nil {
		return fmt.Errorf("postgres connection: %w", err)
	}
	defer conn.Close()

	if err := postgres.RunMigrations(postgres.BuildDSN(cfg.Database), cfg.Database.MigrationPath); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	repo := repositories.NewDatasetRepository(conn.Pool(), logger)

	pingers := map[string]handlers.Pinger{
		"postgres": conn.HealthCheck,
	}

	var cache redis.Cache
	redisClient, err := redis.NewClient(cfg.Redis, logger.Named("redis"))
	if err != nil {
		logger.Warn("Redis unavailable, chart caching disabled", logging.Err(err))
	} else {
		defer redisClient.Close() //nolint:errcheck
		cache = redis.NewRedisCache(redisClient, logger,
			redis.WithPrefix(cfg.Redis.KeyPrefix),
			redis.WithDefaultTTL(cfg.Chart.CacheTTL),
		)
		pingers["redis"] = redisClient.Ping
	}

	var artifacts minio.ArtifactStore
	minioClient, err := minio.NewClient(cfg.MinIO, logger.Named("minio"))
	if err != nil {
		logger.Warn("MinIO unavailable, CSV archival disabled", logging.Err(err))
	} else {
		if err := minioClient.EnsureBucket(ctx); err != nil {
			logger.Warn("Failed to ensure MinIO bucket, CSV archival disabled", logging.Err(err))
		} else {
			artifacts = minio.NewArtifactStore(minioClient, logger)
			pingers["minio"] = minioClient.HealthCheck
		}
	}

	var publisher kafka.EventPublisher
	producer, err := kafka.NewProducer(cfg.Kafka, logger.Named("kafka"))
	if err != nil {
		logger.Warn("Kafka unavailable, dataset events disabled", logging.Err(err))
	} else {
		defer producer.Close() //nolint:errcheck
		publisher = producer
	}

	collector, err := prometheus.NewMetricsCollector(prometheus.CollectorConfig{
		Namespace:            "bullseye",
		EnableProcessMetrics: true,
		EnableGoMetrics:      true,
	}, logger)
	if err != nil {
		return fmt.Errorf("metrics collector: %w", err)
	}
	metrics := prometheus.NewAppMetrics(collector)

	chartSvc := chart.NewService(repo, cache, metrics, logger, cfg.Chart)
	datasetSvc := dataset.NewService(repo, artifacts, publisher, metrics, logger)

	router := httpserver.NewRouter(httpserver.RouterConfig{
		DatasetHandler: handlers.NewDatasetHandler(datasetSvc, chartSvc, cfg.Server.MaxUploadBytes, logger),
		ChartHandler:   handlers.NewChartHandler(chartSvc, logger),
		HealthHandler:  handlers.NewHealthHandler(version, pingers),
		Logger:         logger,
		Metrics:        metrics,
		MetricsHandler: collector.Handler(),
		Mode:           cfg.Server.Mode,
	})

	srv := httpserver.NewServer(cfg.Server, router, logger)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("Received shutdown signal", logging.String("signal", sig.String()))
	}

	return srv.Stop(context.Background())
}

// loadConfig reads the config file when present, else falls back to
// environment variables plus defaults.
func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); err == nil {
		return config.Load(path)
	}
	fmt.Fprintf(os.Stderr, "config file %s not found, using environment and defaults\n", path)
	return config.LoadFromEnv()
}

//Personal.AI order the ending
