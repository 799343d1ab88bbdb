// Package config loads the service configuration from a YAML file with
// environment variable overrides; with no file present the environment alone
// is enough to run.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the configuration settings.
type Config struct {
	Postgres      PostgresConfig      `yaml:"postgres"`
	NATS          NATSConfig          `yaml:"nats"`
	Redis         RedisConfig         `yaml:"redis"`
	Osu           OsuConfig           `yaml:"osu"`
	Sources       SourcesConfig       `yaml:"sources"`
	Cache         CacheConfig         `yaml:"cache"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// PostgresConfig holds Postgres configuration.
type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

// NATSConfig holds NATS configuration.
type NATSConfig struct {
	URL string `yaml:"url"`
}

// RedisConfig holds the optional Redis cache backend. An empty address keeps
// every cache in process memory.
type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// OsuConfig holds osu! API v2 credentials and endpoints.
type OsuConfig struct {
	ClientID     int    `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	APIBaseURL   string `yaml:"api_base_url"`
	TokenURL     string `yaml:"token_url"`
}

// SourcesConfig holds the rank-count source endpoints, one per regime.
type SourcesConfig struct {
	StatsBaseURL string `yaml:"stats_base_url"`
	DeltaBaseURL string `yaml:"delta_base_url"`
}

// CacheConfig holds the TTLs for the three read caches.
type CacheConfig struct {
	ConfigTTL  time.Duration `yaml:"config_ttl"`
	ProfileTTL time.Duration `yaml:"profile_ttl"`
	CountsTTL  time.Duration `yaml:"counts_ttl"`
}

// ObservabilityConfig holds configuration for observability components.
type ObservabilityConfig struct {
	MetricsAddress string `yaml:"metrics_address"`
	Environment    string `yaml:"environment"`
}

const (
	defaultOsuAPIBaseURL = "https://osu.ppy.sh/api/v2"
	defaultOsuTokenURL   = "https://osu.ppy.sh/oauth/token"
	defaultStatsBaseURL  = "https://osustats.ppy.sh"
	defaultDeltaBaseURL  = "https://api.respektive.pw"

	defaultConfigTTL  = 5 * time.Minute
	defaultProfileTTL = 10 * time.Minute
	defaultCountsTTL  = 5 * time.Minute
)

// LoadConfig loads the configuration from a YAML file, falling back to
// environment variables when the file is missing.
func LoadConfig(filename string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(filename)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)

	if cfg.Postgres.DSN == "" {
		return nil, fmt.Errorf("postgres DSN not set (DATABASE_URL)")
	}
	if cfg.NATS.URL == "" {
		return nil, fmt.Errorf("NATS URL not set (NATS_URL)")
	}
	if cfg.Osu.ClientID == 0 || cfg.Osu.ClientSecret == "" {
		return nil, fmt.Errorf("osu! API credentials not set (OSU_CLIENT_ID, OSU_CLIENT_SECRET)")
	}

	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Postgres.DSN = v
	}
	if v := os.Getenv("NATS_URL"); v != "" {
		cfg.NATS.URL = v
	}
	if v := os.Getenv("REDIS_ADDRESS"); v != "" {
		cfg.Redis.Address = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("OSU_CLIENT_ID"); v != "" {
		if _, err := fmt.Sscanf(v, "%d", &cfg.Osu.ClientID); err != nil {
			cfg.Osu.ClientID = 0
		}
	}
	if v := os.Getenv("OSU_CLIENT_SECRET"); v != "" {
		cfg.Osu.ClientSecret = v
	}
	if v := os.Getenv("OSU_API_BASE_URL"); v != "" {
		cfg.Osu.APIBaseURL = v
	}
	if v := os.Getenv("OSU_TOKEN_URL"); v != "" {
		cfg.Osu.TokenURL = v
	}
	if v := os.Getenv("STATS_BASE_URL"); v != "" {
		cfg.Sources.StatsBaseURL = v
	}
	if v := os.Getenv("DELTA_BASE_URL"); v != "" {
		cfg.Sources.DeltaBaseURL = v
	}
	if v := os.Getenv("CONFIG_CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Cache.ConfigTTL = d
		}
	}
	if v := os.Getenv("PROFILE_CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Cache.ProfileTTL = d
		}
	}
	if v := os.Getenv("COUNTS_CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Cache.CountsTTL = d
		}
	}
	if v := os.Getenv("METRICS_ADDRESS"); v != "" {
		cfg.Observability.MetricsAddress = v
	}
	if v := os.Getenv("ENV"); v != "" {
		cfg.Observability.Environment = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Osu.APIBaseURL == "" {
		cfg.Osu.APIBaseURL = defaultOsuAPIBaseURL
	}
	if cfg.Osu.TokenURL == "" {
		cfg.Osu.TokenURL = defaultOsuTokenURL
	}
	if cfg.Sources.StatsBaseURL == "" {
		cfg.Sources.StatsBaseURL = defaultStatsBaseURL
	}
	if cfg.Sources.DeltaBaseURL == "" {
		cfg.Sources.DeltaBaseURL = defaultDeltaBaseURL
	}
	if cfg.Cache.ConfigTTL <= 0 {
		cfg.Cache.ConfigTTL = defaultConfigTTL
	}
	if cfg.Cache.ProfileTTL <= 0 {
		cfg.Cache.ProfileTTL = defaultProfileTTL
	}
	if cfg.Cache.CountsTTL <= 0 {
		cfg.Cache.CountsTTL = defaultCountsTTL
	}
}
