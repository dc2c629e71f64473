// Package config provides configuration loading, defaults, and validation for
// the BullsEye-Radar service.
package config

import (
	"time"

	"github.com/turtacn/BullsEye-Radar/internal/domain/layout"
)

// ─────────────────────────────────────────────────────────────────────────────
// Default value constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	DefaultServerPort     = 8080
	DefaultServerMode     = "debug"
	DefaultUploadBytesCap = 8 << 20 // 8 MiB CSV uploads

	DefaultDBHost         = "localhost"
	DefaultDBPort         = 5432
	DefaultDBName         = "bullseye"
	DefaultDBMaxOpenConns = 25
	DefaultMigrationPath  = "migrations"

	DefaultRedisAddr      = "localhost:6379"
	DefaultRedisKeyPrefix = "bullseye:"

	DefaultKafkaBroker = "localhost:9092"
	DefaultKafkaTopic  = "bullseye.dataset.events"

	DefaultMinIOEndpoint = "localhost:9000"
	DefaultMinIOBucket   = "bullseye-uploads"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"

	DefaultChartCacheTTL = 10 * time.Minute
)

// ApplyDefaults fills every zero-value field in cfg with the service default.
// It must be called after unmarshalling raw config data and before Validate()
// so that optional-but-defaulted fields are never seen as missing.  Fields that
// have already been set by the caller (non-zero values) are left unchanged so
// that explicit configuration always wins.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}

	// ── Server ────────────────────────────────────────────────────────────────
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = DefaultServerMode
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15 * time.Second
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 15 * time.Second
	}
	if cfg.Server.MaxUploadBytes == 0 {
		cfg.Server.MaxUploadBytes = DefaultUploadBytesCap
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 30 * time.Second
	}

	// ── Database ──────────────────────────────────────────────────────────────
	if cfg.Database.Host == "" {
		cfg.Database.Host = DefaultDBHost
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = DefaultDBPort
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "bullseye"
	}
	if cfg.Database.DBName == "" {
		cfg.Database.DBName = DefaultDBName
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = DefaultDBMaxOpenConns
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 10
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 30 * time.Minute
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.MigrationPath == "" {
		cfg.Database.MigrationPath = DefaultMigrationPath
	}

	// ── Redis ─────────────────────────────────────────────────────────────────
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = DefaultRedisAddr
	}
	// DB is an int; 0 is a valid explicit value so we cannot distinguish "not
	// set" from "set to 0".  We leave it as-is (0 is also the default).
	if cfg.Redis.PoolSize == 0 {
		cfg.Redis.PoolSize = 10
	}
	if cfg.Redis.DialTimeout == 0 {
		cfg.Redis.DialTimeout = 5 * time.Second
	}
	if cfg.Redis.ReadTimeout == 0 {
		cfg.Redis.ReadTimeout = 3 * time.Second
	}
	if cfg.Redis.WriteTimeout == 0 {
		cfg.Redis.WriteTimeout = 3 * time.Second
	}
	if cfg.Redis.DefaultTTL == 0 {
		cfg.Redis.DefaultTTL = time.Hour
	}
	if cfg.Redis.KeyPrefix == "" {
		cfg.Redis.KeyPrefix = DefaultRedisKeyPrefix
	}

	// ── Kafka ─────────────────────────────────────────────────────────────────
	if len(cfg.Kafka.Brokers) == 0 {
		cfg.Kafka.Brokers = []string{DefaultKafkaBroker}
	}
	if cfg.Kafka.Topic == "" {
		cfg.Kafka.Topic = DefaultKafkaTopic
	}
	if cfg.Kafka.BatchTimeout == 0 {
		cfg.Kafka.BatchTimeout = 100 * time.Millisecond
	}
	if cfg.Kafka.WriteTimeout == 0 {
		cfg.Kafka.WriteTimeout = 10 * time.Second
	}
	if cfg.Kafka.MaxRetries == 0 {
		cfg.Kafka.MaxRetries = 3
	}

	// ── MinIO ─────────────────────────────────────────────────────────────────
	if cfg.MinIO.Endpoint == "" {
		cfg.MinIO.Endpoint = DefaultMinIOEndpoint
	}
	if cfg.MinIO.Bucket == "" {
		cfg.MinIO.Bucket = DefaultMinIOBucket
	}

	// ── Log ───────────────────────────────────────────────────────────────────
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}

	// ── Chart ─────────────────────────────────────────────────────────────────
	if cfg.Chart.MaxSegments == 0 {
		cfg.Chart.MaxSegments = layout.DefaultMaxSegments
	}
	if cfg.Chart.RadiusOrder == "" {
		cfg.Chart.RadiusOrder = string(layout.OrderInnermostFirst)
	}
	if cfg.Chart.CacheTTL == 0 {
		cfg.Chart.CacheTTL = DefaultChartCacheTTL
	}
}

//Personal.AI order the ending
