package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// ValidateConfig checks the loaded configuration and reports every problem at once
func ValidateConfig(cfg *Config) error {
	env := GetEnvironment()
	var errs []ValidationError

	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port <= 0 || port > 65535 {
		errs = append(errs, ValidationError{"SERVER_PORT", fmt.Sprintf("must be a valid port, got %q", cfg.ServerPort)})
	}
	if cfg.DatabaseURL == "" {
		if cfg.DBHost == "" {
			errs = append(errs, ValidationError{"DB_HOST", "is required when DATABASE_URL is not set"})
		}
		if cfg.DBName == "" {
			errs = append(errs, ValidationError{"DB_NAME", "is required when DATABASE_URL is not set"})
		}
		if env == Production && cfg.DBPassword == "" {
			errs = append(errs, ValidationError{"db_password", "secret is required in production"})
		}
	}
	if !logLevels[strings.ToLower(cfg.LogLevel)] {
		errs = append(errs, ValidationError{"LOG_LEVEL", fmt.Sprintf("unknown level %q", cfg.LogLevel)})
	}
	if cfg.ParserTimeout <= 0 {
		errs = append(errs, ValidationError{"PARSER_TIMEOUT", "must be positive"})
	}
	if cfg.ParseRateLimit < 0 {
		errs = append(errs, ValidationError{"PARSE_RATE_LIMIT", "must not be negative"})
	}
	if cfg.ParseCacheTTL < 0 {
		errs = append(errs, ValidationError{"PARSE_CACHE_TTL", "must not be negative"})
	}
	if cfg.S3Bucket != "" && cfg.S3Region == "" {
		errs = append(errs, ValidationError{"AWS_REGION", "is required when S3_BUCKET_NAME is set"})
	}

	if len(errs) == 0 {
		return nil
	}
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return fmt.Errorf("configuration validation failed:\n%s", strings.Join(msgs, "\n"))
}
