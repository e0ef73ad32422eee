package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strengthlab/trainadapt/internal/config"
)

const testConfigToml = `
[development]
environment = "development"
host = "localhost"
port = 9000
log_level = "trace"
log_to_stdout = true
sentry_enabled = false
postgres_host = "localhost"
postgres_port = "5432"
postgres_db_name = "trainadapt"
redis_host = "localhost"
redis_port = "6379"
prometheus_metrics_host = "localhost"
prometheus_metrics_port = "2112"
analyze_rate_limit_allowed_per_min = 30
analysis_cache_ttl_seconds = 300

[production]
environment = "production"
port = 9000
log_level = "debug"
logs_path = "/var/log/trainadapt/service.log"
sentry_enabled = true
postgres_host = "db.internal"
postgres_port = "5432"
postgres_db_name = "trainadapt"
redis_host = "redis.internal"
redis_port = "6379"
prometheus_metrics_port = "2112"
analyze_rate_limit_allowed_per_min = 60
analysis_cache_ttl_seconds = 300
`

func writeTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(testConfigToml), 0o644))
	return path
}

func TestLoad_Development(t *testing.T) {
	cfg, err := config.Load("development", writeTestConfig(t))
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "trace", cfg.LogLevel)
	assert.True(t, cfg.LogToStdout)
	assert.False(t, cfg.SentryEnabled)
	assert.Equal(t, "trainadapt", cfg.PostgresDBName)
	assert.Equal(t, 30, cfg.AnalyzeRateLimitAllowedPerMin)
	assert.Equal(t, 300, cfg.AnalysisCacheTTLSeconds)
}

func TestLoad_EnvAliases(t *testing.T) {
	path := writeTestConfig(t)

	devCfg, err := config.Load("dev", path)
	require.NoError(t, err)
	assert.Equal(t, "development", devCfg.Environment)

	prodCfg, err := config.Load("prod", path)
	require.NoError(t, err)
	assert.Equal(t, "production", prodCfg.Environment)
	assert.Equal(t, "db.internal", prodCfg.PostgresHost)
	assert.True(t, prodCfg.SentryEnabled)
}

func TestLoad_EnvVarOverrides(t *testing.T) {
	t.Setenv("TRAINADAPT_PORT", "9123")
	t.Setenv("TRAINADAPT_REDIS_HOST", "redis.override")

	cfg, err := config.Load("development", writeTestConfig(t))
	require.NoError(t, err)

	assert.Equal(t, 9123, cfg.Port)
	assert.Equal(t, "redis.override", cfg.RedisHost)
	// untouched fields keep their TOML values
	assert.Equal(t, "localhost", cfg.PostgresHost)
}

func TestLoad_UnknownEnv(t *testing.T) {
	_, err := config.Load("staging", writeTestConfig(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown env")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load("development", filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}
