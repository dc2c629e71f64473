package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// baseConfig returns a config that passes validation; tests mutate one field
// at a time.
func baseConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

func TestValidate_Defaults(t *testing.T) {
	assert.NoError(t, baseConfig().Validate())
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"bad port", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"bad mode", func(c *Config) { c.Server.Mode = "prod" }, "server.mode"},
		{"no db host", func(c *Config) { c.Database.Host = "" }, "database.host"},
		{"bad db port", func(c *Config) { c.Database.Port = -1 }, "database.port"},
		{"no db user", func(c *Config) { c.Database.User = "" }, "database.user"},
		{"no db name", func(c *Config) { c.Database.DBName = "" }, "database.db_name"},
		{"no redis addr", func(c *Config) { c.Redis.Addr = "" }, "redis.addr"},
		{"no brokers", func(c *Config) { c.Kafka.Brokers = nil }, "kafka.brokers"},
		{"no topic", func(c *Config) { c.Kafka.Topic = "" }, "kafka.topic"},
		{"no minio endpoint", func(c *Config) { c.MinIO.Endpoint = "" }, "minio.endpoint"},
		{"no bucket", func(c *Config) { c.MinIO.Bucket = "" }, "minio.bucket"},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }, "log.level"},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
		{"bad max segments", func(c *Config) { c.Chart.MaxSegments = 0 }, "chart.max_segments"},
		{"bad radius order", func(c *Config) { c.Chart.RadiusOrder = "sideways" }, "chart.radius_order"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := baseConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestApplyDefaults_NilSafe(t *testing.T) {
	assert.NotPanics(t, func() { ApplyDefaults(nil) })
}

func TestApplyDefaults_DoesNotOverrideExplicit(t *testing.T) {
	cfg := &Config{}
	cfg.Server.Port = 9999
	cfg.Chart.MaxSegments = 2
	ApplyDefaults(cfg)
	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, 2, cfg.Chart.MaxSegments)
}

//Personal.AI order the ending
