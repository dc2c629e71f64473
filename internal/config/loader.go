package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix used by all service settings.
const envPrefix = "BULLSEYE"

// newViper builds a pre-configured Viper instance with the service's standard
// settings: YAML file type, BULLSEYE_ env prefix, automatic env binding, and a
// key replacer that maps "." → "_" so that nested keys like "database.host"
// resolve to "BULLSEYE_DATABASE_HOST".
// knownKeys lists every configuration key the service understands.  Viper only
// consults environment variables for keys it already knows about, so each key
// is registered with a zero default; the real default values are applied later
// by ApplyDefaults.
var knownKeys = []string{
	"server.port", "server.mode", "server.read_timeout", "server.write_timeout",
	"server.max_upload_bytes", "server.shutdown_timeout",
	"database.host", "database.port", "database.user", "database.password",
	"database.db_name", "database.ssl_mode", "database.max_open_conns",
	"database.max_idle_conns", "database.conn_max_lifetime", "database.migration_path",
	"redis.addr", "redis.password", "redis.db", "redis.pool_size",
	"redis.dial_timeout", "redis.read_timeout", "redis.write_timeout",
	"redis.default_ttl", "redis.key_prefix",
	"kafka.brokers", "kafka.topic", "kafka.batch_timeout", "kafka.write_timeout",
	"kafka.max_retries",
	"minio.endpoint", "minio.access_key", "minio.secret_key", "minio.bucket",
	"minio.use_ssl",
	"log.level", "log.format",
	"chart.max_segments", "chart.radius_order", "chart.cache_ttl",
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range knownKeys {
		v.SetDefault(key, nil)
	}
	return v
}

// Load reads the YAML file at configPath, merges any BULLSEYE_* environment
// variable overrides, applies service defaults for unset fields, and validates
// the result.  It returns a fully-populated *Config or a descriptive error.
func Load(configPath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: failed to read config file %q: %w", configPath, err)
	}

	return unmarshalAndFinalize(v)
}

// LoadFromEnv builds a Config entirely from BULLSEYE_* environment variables,
// with no config file required.  This is the preferred loading strategy for
// containerised (12-factor) deployments.
//
// Environment variable naming convention:
//
//	BULLSEYE_<SECTION>_<FIELD>   e.g.  BULLSEYE_DATABASE_HOST, BULLSEYE_REDIS_ADDR
func LoadFromEnv() (*Config, error) {
	v := newViper()
	// No config file — rely solely on env vars and defaults.
	return unmarshalAndFinalize(v)
}

// unmarshalAndFinalize unmarshals viper state into a Config struct, applies
// defaults, and validates the result.
func unmarshalAndFinalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}

	return cfg, nil
}

// Watch monitors configPath for changes and invokes onChange with the newly
// parsed Config whenever the file is modified on disk.  It is intended for
// hot-reloading non-critical settings such as log level and chart defaults;
// callers are responsible for applying only the safe subset of changes at
// runtime.
//
// Watch is non-blocking; it starts a background goroutine managed by viper.
// If the changed file fails to parse or validate, onChange is NOT called.
func Watch(configPath string, onChange func(*Config)) {
	v := newViper()
	v.SetConfigFile(configPath)

	// Initial read — errors are ignored here; callers should call Load first.
	_ = v.ReadInConfig()

	v.WatchConfig()
	v.OnConfigChange(func(_ fsnotify.Event) {
		cfg, err := unmarshalAndFinalize(v)
		if err != nil {
			// Config change produced an invalid config; skip the callback to
			// prevent the application from entering a broken state.
			return
		}
		onChange(cfg)
	})
}

// MustLoad is a convenience wrapper around Load that panics on any error.
// It is intended for use in main() where a config-load failure is always fatal.
func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(fmt.Sprintf("config: MustLoad failed: %v", err))
	}
	return cfg
}

//Personal.AI order the ending
