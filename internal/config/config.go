package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port" env:"TRAINADAPT_PORT"`

	// logging
	LogLevel    string `toml:"log_level" env:"TRAINADAPT_LOG_LEVEL"`
	LogsPath    string `toml:"logs_path"`
	LogToStdout bool   `toml:"log_to_stdout"`

	SentryEnabled bool `toml:"sentry_enabled"`

	// postgres
	PostgresHost   string `toml:"postgres_host" env:"TRAINADAPT_POSTGRES_HOST"`
	PostgresPort   string `toml:"postgres_port" env:"TRAINADAPT_POSTGRES_PORT"`
	PostgresDBName string `toml:"postgres_db_name" env:"TRAINADAPT_POSTGRES_DB_NAME"`

	// redis
	RedisHost string `toml:"redis_host" env:"TRAINADAPT_REDIS_HOST"`
	RedisPort string `toml:"redis_port" env:"TRAINADAPT_REDIS_PORT"`

	// prometheus metrics server
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// optional path to a TOML file with extra exercise catalog entries
	ExerciseCatalogPath string `toml:"exercise_catalog_path"`

	AnalyzeRateLimitAllowedPerMin int `toml:"analyze_rate_limit_allowed_per_min"`
	// analysis results are cached in redis for this many seconds
	AnalysisCacheTTLSeconds int `toml:"analysis_cache_ttl_seconds"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// Load reads the TOML config for the given environment, then applies
// env var overrides on top of it.
func Load(env, path string) (*Config, error) {
	var tomlConfig Toml
	if _, err := toml.DecodeFile(path, &tomlConfig); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	cfg, err := tomlConfig.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config for env %s is empty", env)
	}

	if err := envconfig.Process(context.Background(), cfg); err != nil {
		return nil, fmt.Errorf("process env overrides: %w", err)
	}

	return cfg, nil
}
