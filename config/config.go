package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort  string
	ServerHost  string
	CORSOrigins []string
	LogLevel    string

	// Database configuration. DatabaseURL wins over the individual fields.
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// Image storage; inline storage is used when S3Bucket is empty
	S3Bucket string
	S3Region string

	// Recipe parser
	ParserTimeout         time.Duration
	ParserUserAgent       string
	ParserExtraNavPhrases []string
	ParseRateLimit        int
	ParseCacheTTL         time.Duration
}

// Defaults applied when a variable is unset.
const (
	DefaultParserTimeout  = 15 * time.Second
	DefaultParseRateLimit = 30
	DefaultParseCacheTTL  = time.Hour
)

// LoadConfig creates a new Config instance with values from environment variables or secrets
func LoadConfig() (*Config, error) {
	env := GetEnvironment()
	cfg := &Config{}

	switch env {
	case CI:
		if err := loadCIConfig(cfg); err != nil {
			return nil, fmt.Errorf("failed to load CI configuration: %w", err)
		}
	case Development, Test:
		if err := loadDevConfig(cfg); err != nil {
			return nil, fmt.Errorf("failed to load development configuration: %w", err)
		}
	case Production:
		if err := loadProdConfig(cfg); err != nil {
			return nil, fmt.Errorf("failed to load production configuration: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown environment: %s", env)
	}

	if err := loadParserConfig(cfg); err != nil {
		return nil, err
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadCIConfig loads configuration for CI where secrets arrive as environment variables
func loadCIConfig(cfg *Config) error {
	loadCommon(cfg)

	cfg.DBPassword = getEnv("TEST_DB_PASSWORD", os.Getenv("DB_PASSWORD"))
	if cfg.DBPassword == "" && cfg.DatabaseURL == "" {
		return fmt.Errorf("TEST_DB_PASSWORD environment variable is required in CI environment")
	}
	cfg.RedisPassword = getEnv("TEST_REDIS_PASSWORD", cfg.RedisPassword)
	cfg.RedisURL = getEnv("TEST_REDIS_URL", cfg.RedisURL)
	return nil
}

// loadDevConfig loads configuration for development and test with local defaults
func loadDevConfig(cfg *Config) error {
	loadCommon(cfg)
	cfg.DBPassword = getEnv("DB_PASSWORD", "postgres")
	return nil
}

// loadProdConfig loads configuration for production; credentials come from Docker secrets
func loadProdConfig(cfg *Config) error {
	loadCommon(cfg)
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	cfg.DBSSLMode = getEnv("DB_SSL_MODE", "require")

	if v := readSecret("db_user"); v != "" {
		cfg.DBUser = v
	}
	if v := readSecret("db_password"); v != "" {
		cfg.DBPassword = v
	}
	if v := readSecret("redis_password"); v != "" {
		cfg.RedisPassword = v
	}
	if v := readSecret("database_url"); v != "" {
		cfg.DatabaseURL = v
	}
	return nil
}

func loadCommon(cfg *Config) {
	cfg.ServerPort = getEnv("SERVER_PORT", "8080")
	cfg.ServerHost = getEnv("SERVER_HOST", "0.0.0.0")
	cfg.CORSOrigins = getEnvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"})
	cfg.LogLevel = getEnv("LOG_LEVEL", "debug")

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	cfg.DBHost = getEnv("DB_HOST", "localhost")
	cfg.DBPort = getEnv("DB_PORT", "5432")
	cfg.DBUser = getEnv("DB_USER", "postgres")
	cfg.DBPassword = os.Getenv("DB_PASSWORD")
	cfg.DBName = getEnv("DB_NAME", "mealrank")
	cfg.DBSSLMode = getEnv("DB_SSL_MODE", "disable")

	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPort = getEnv("REDIS_PORT", "6379")
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	cfg.RedisURL = os.Getenv("REDIS_URL")
	cfg.RedisDB = 0

	cfg.S3Bucket = os.Getenv("S3_BUCKET_NAME")
	cfg.S3Region = os.Getenv("AWS_REGION")
}

func loadParserConfig(cfg *Config) error {
	var err error
	if cfg.ParserTimeout, err = getEnvDuration("PARSER_TIMEOUT", DefaultParserTimeout); err != nil {
		return err
	}
	if cfg.ParseCacheTTL, err = getEnvDuration("PARSE_CACHE_TTL", DefaultParseCacheTTL); err != nil {
		return err
	}
	if cfg.ParseRateLimit, err = getEnvInt("PARSE_RATE_LIMIT", DefaultParseRateLimit); err != nil {
		return err
	}
	cfg.ParserUserAgent = os.Getenv("PARSER_USER_AGENT")
	cfg.ParserExtraNavPhrases = getEnvList("PARSER_EXTRA_NAV_PHRASES", nil)
	return nil
}

// DatabaseDSN returns a connection string usable by both gorm's postgres driver
// and lib/pq.
func (c *Config) DatabaseDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// ServerAddr is the listen address for the HTTP server.
func (c *Config) ServerAddr() string {
	return c.ServerHost + ":" + c.ServerPort
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

func getEnvDuration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}

// getEnvList splits a comma separated variable, dropping blank entries.
func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
