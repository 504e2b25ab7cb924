package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"CI", "ENV", "SECRETS_DIR", "SERVER_PORT", "SERVER_HOST", "CORS_ALLOWED_ORIGINS", "LOG_LEVEL",
	"DATABASE_URL", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSL_MODE",
	"REDIS_HOST", "REDIS_PORT", "REDIS_PASSWORD", "REDIS_URL", "S3_BUCKET_NAME", "AWS_REGION",
	"PARSER_TIMEOUT", "PARSER_USER_AGENT", "PARSER_EXTRA_NAV_PHRASES", "PARSE_RATE_LIMIT", "PARSE_CACHE_TTL",
	"TEST_DB_PASSWORD", "TEST_REDIS_PASSWORD", "TEST_REDIS_URL",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
	t.Setenv("SECRETS_DIR", t.TempDir())
}

func TestLoadConfigWithDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "0.0.0.0:8080", cfg.ServerAddr())
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "postgres", cfg.DBPassword)
	assert.Equal(t, "mealrank", cfg.DBName)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, DefaultParserTimeout, cfg.ParserTimeout)
	assert.Equal(t, DefaultParseRateLimit, cfg.ParseRateLimit)
	assert.Equal(t, DefaultParseCacheTTL, cfg.ParseCacheTTL)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
	assert.Empty(t, cfg.ParserExtraNavPhrases)
	assert.Equal(t, "host=localhost port=5432 user=postgres password=postgres dbname=mealrank sslmode=disable", cfg.DatabaseDSN())
}

func TestLoadConfigFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/meals?sslmode=disable")
	t.Setenv("PARSER_TIMEOUT", "5s")
	t.Setenv("PARSE_RATE_LIMIT", "10")
	t.Setenv("PARSE_CACHE_TTL", "30m")
	t.Setenv("PARSER_EXTRA_NAV_PHRASES", " shop now, ,print recipe ")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com,https://b.example.com")
	t.Setenv("LOG_LEVEL", "info")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.ServerPort)
	assert.Equal(t, "postgres://u:p@db:5432/meals?sslmode=disable", cfg.DatabaseDSN())
	assert.Equal(t, 5*time.Second, cfg.ParserTimeout)
	assert.Equal(t, 10, cfg.ParseRateLimit)
	assert.Equal(t, 30*time.Minute, cfg.ParseCacheTTL)
	assert.Equal(t, []string{"shop now", "print recipe"}, cfg.ParserExtraNavPhrases)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSOrigins)
}

func TestLoadConfigRejectsMalformedValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("PARSER_TIMEOUT", "soon")
	_, err := LoadConfig()
	assert.ErrorContains(t, err, "PARSER_TIMEOUT")

	clearEnv(t)
	t.Setenv("PARSE_RATE_LIMIT", "many")
	_, err = LoadConfig()
	assert.ErrorContains(t, err, "PARSE_RATE_LIMIT")
}

func TestLoadConfigProductionReadsSecrets(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "db_password"), []byte("s3cret\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "redis_password"), []byte("r3dis"), 0o600))
	t.Setenv("SECRETS_DIR", dir)
	t.Setenv("ENV", "production")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.DBPassword)
	assert.Equal(t, "r3dis", cfg.RedisPassword)
	assert.Equal(t, "require", cfg.DBSSLMode)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfigProductionRequiresPassword(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENV", "production")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "db_password")
}

func TestLoadConfigCI(t *testing.T) {
	clearEnv(t)
	t.Setenv("CI", "true")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "TEST_DB_PASSWORD")

	t.Setenv("TEST_DB_PASSWORD", "ci-pass")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "ci-pass", cfg.DBPassword)
}

func TestGetEnvironment(t *testing.T) {
	clearEnv(t)
	assert.Equal(t, Development, GetEnvironment())

	t.Setenv("ENV", "Production")
	assert.Equal(t, Production, GetEnvironment())
	assert.True(t, IsProduction())

	t.Setenv("ENV", "test")
	assert.Equal(t, Test, GetEnvironment())

	t.Setenv("CI", "true")
	assert.Equal(t, CI, GetEnvironment())
}

func TestValidateConfigReportsAllProblems(t *testing.T) {
	clearEnv(t)
	cfg := &Config{
		ServerPort:     "http",
		LogLevel:       "loud",
		ParserTimeout:  0,
		ParseRateLimit: -1,
		S3Bucket:       "images",
	}

	err := ValidateConfig(cfg)
	require.Error(t, err)
	for _, field := range []string{"SERVER_PORT", "DB_HOST", "DB_NAME", "LOG_LEVEL", "PARSER_TIMEOUT", "PARSE_RATE_LIMIT", "AWS_REGION"} {
		assert.Contains(t, err.Error(), field)
	}
}

func TestValidationError(t *testing.T) {
	assert.Equal(t, "DB_HOST: is required", ValidationError{Field: "DB_HOST", Message: "is required"}.Error())
}
