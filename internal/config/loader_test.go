package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalYAML = `
server:
  port: 9090
  mode: release
database:
  host: db.internal
  user: radar
  password: secret
  db_name: bullseye
redis:
  addr: cache.internal:6379
kafka:
  brokers:
    - broker.internal:9092
minio:
  endpoint: objects.internal:9000
log:
  level: debug
  format: console
chart:
  max_segments: 6
  radius_order: outermost_first
`

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeTempConfig(t, minimalYAML))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "cache.internal:6379", cfg.Redis.Addr)
	assert.Equal(t, []string{"broker.internal:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "objects.internal:9000", cfg.MinIO.Endpoint)
	assert.Equal(t, 6, cfg.Chart.MaxSegments)
	assert.Equal(t, "outermost_first", cfg.Chart.RadiusOrder)
}

func TestLoad_DefaultsApplied(t *testing.T) {
	cfg, err := Load(writeTempConfig(t, minimalYAML))
	require.NoError(t, err)

	// Fields the YAML never mentions.
	assert.Equal(t, DefaultKafkaTopic, cfg.Kafka.Topic)
	assert.Equal(t, DefaultMinIOBucket, cfg.MinIO.Bucket)
	assert.Equal(t, DefaultRedisKeyPrefix, cfg.Redis.KeyPrefix)
	assert.Equal(t, DefaultChartCacheTTL, cfg.Chart.CacheTTL)
	assert.Equal(t, int64(DefaultUploadBytesCap), cfg.Server.MaxUploadBytes)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidConfigRejected(t *testing.T) {
	_, err := Load(writeTempConfig(t, `
server:
  port: 70000
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.port")
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("BULLSEYE_DATABASE_HOST", "env-db")
	t.Setenv("BULLSEYE_REDIS_ADDR", "env-cache:6379")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "env-db", cfg.Database.Host)
	assert.Equal(t, "env-cache:6379", cfg.Redis.Addr)
	// Everything else falls back to defaults.
	assert.Equal(t, DefaultServerPort, cfg.Server.Port)
}

func TestMustLoad_PanicsOnError(t *testing.T) {
	assert.Panics(t, func() {
		MustLoad(filepath.Join(t.TempDir(), "absent.yaml"))
	})
}

//Personal.AI order the ending
