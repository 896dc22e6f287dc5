// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// DatabaseConfig provides database connection settings.
type DatabaseConfig interface {
	GetDatabaseURL() string
}

// JWTConfig provides JWT validation settings for middleware.
type JWTConfig interface {
	GetJWTAccessSecret() string
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
	GetRateLimitPerMinute() int
}

// RedisConfig provides the Redis connection used by the cache and task queue.
type RedisConfig interface {
	GetRedisURL() string
	GetRosterCacheTTL() time.Duration
}

// SchedulerConfig provides task worker settings.
type SchedulerConfig interface {
	RedisConfig
	GetWorkerConcurrency() int
}

// MinIOConfig provides settings for MinIO S3-compatible storage.
type MinIOConfig interface {
	GetMinIOEndpoint() string
	GetMinIOAccessKey() string
	GetMinIOSecretKey() string
	GetMinIOUseSSL() bool
	GetMinioBucketImports() string
	IsMinIOEnabled() bool
}

// SMTPConfig provides settings for the SMTP sender.
type SMTPConfig interface {
	GetSMTPHost() string
	GetSMTPPort() int
	GetSMTPUsername() string
	GetSMTPPassword() string
	GetEmailFromName() string
	GetEmailFromAddress() string
	IsEmailEnabled() bool
}

// NotificationConfig provides settings for outbound notifications.
type NotificationConfig interface {
	SMTPConfig
	GetAppBaseURL() string
}

// LifecycleConfig provides settings for the prospect/merchant lifecycle.
type LifecycleConfig interface {
	IsDemoMode() bool
	GetDefaultCurrency() string
	GetCloseDateHorizon() time.Duration
}

// AboutConfig provides settings for about-text generation.
type AboutConfig interface {
	GetAboutLookupFile() string
	GetAboutLookupObject() string
	GetGeminiAPIKey() string
	GetGeminiModel() string
}

// TerritoryConfig provides the territory map location.
type TerritoryConfig interface {
	GetTerritoriesFile() string
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                string
	HTTPAddr           string
	DatabaseURL        string
	JWTAccessSecret    string
	CORSAllowAll       bool
	CORSOrigins        []string
	CORSAllowCreds     bool
	RateLimitPerMinute int
	RedisURL           string
	RosterCacheTTL     time.Duration
	WorkerConcurrency  int
	MinIOEndpoint      string
	MinIOAccessKey     string
	MinIOSecretKey     string
	MinIOUseSSL        bool
	MinioBucketImports string
	SMTPHost           string
	SMTPPort           int
	SMTPUsername       string
	SMTPPassword       string
	EmailFromName      string
	EmailFromAddress   string
	AppBaseURL         string
	DemoMode           bool
	DefaultCurrency    string
	CloseDateHorizon   time.Duration
	AboutLookupFile    string
	AboutLookupObject  string
	GeminiAPIKey       string
	GeminiModel        string
	TerritoriesFile    string
}

// =============================================================================
// Interface Implementations
// =============================================================================

// DatabaseConfig implementation
func (c *Config) GetDatabaseURL() string { return c.DatabaseURL }

// JWTConfig implementation
func (c *Config) GetJWTAccessSecret() string { return c.JWTAccessSecret }

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string        { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool      { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string   { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool    { return c.CORSAllowCreds }
func (c *Config) GetRateLimitPerMinute() int { return c.RateLimitPerMinute }

// RedisConfig / SchedulerConfig implementation
func (c *Config) GetRedisURL() string              { return c.RedisURL }
func (c *Config) GetRosterCacheTTL() time.Duration { return c.RosterCacheTTL }
func (c *Config) GetWorkerConcurrency() int        { return c.WorkerConcurrency }

// MinIOConfig implementation
func (c *Config) GetMinIOEndpoint() string      { return c.MinIOEndpoint }
func (c *Config) GetMinIOAccessKey() string     { return c.MinIOAccessKey }
func (c *Config) GetMinIOSecretKey() string     { return c.MinIOSecretKey }
func (c *Config) GetMinIOUseSSL() bool          { return c.MinIOUseSSL }
func (c *Config) GetMinioBucketImports() string { return c.MinioBucketImports }
func (c *Config) IsMinIOEnabled() bool          { return c.MinIOEndpoint != "" }

// SMTPConfig implementation
func (c *Config) GetSMTPHost() string         { return c.SMTPHost }
func (c *Config) GetSMTPPort() int            { return c.SMTPPort }
func (c *Config) GetSMTPUsername() string     { return c.SMTPUsername }
func (c *Config) GetSMTPPassword() string     { return c.SMTPPassword }
func (c *Config) GetEmailFromName() string    { return c.EmailFromName }
func (c *Config) GetEmailFromAddress() string { return c.EmailFromAddress }
func (c *Config) IsEmailEnabled() bool        { return c.SMTPHost != "" }
func (c *Config) GetAppBaseURL() string       { return c.AppBaseURL }

// LifecycleConfig implementation
func (c *Config) IsDemoMode() bool                   { return c.DemoMode }
func (c *Config) GetDefaultCurrency() string         { return c.DefaultCurrency }
func (c *Config) GetCloseDateHorizon() time.Duration { return c.CloseDateHorizon }

// AboutConfig implementation
func (c *Config) GetAboutLookupFile() string   { return c.AboutLookupFile }
func (c *Config) GetAboutLookupObject() string { return c.AboutLookupObject }
func (c *Config) GetGeminiAPIKey() string      { return c.GeminiAPIKey }
func (c *Config) GetGeminiModel() string       { return c.GeminiModel }

// TerritoryConfig implementation
func (c *Config) GetTerritoriesFile() string { return c.TerritoriesFile }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:4200"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:                getEnv("APP_ENV", "development"),
		HTTPAddr:           getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		JWTAccessSecret:    getEnv("JWT_ACCESS_SECRET", ""),
		CORSAllowAll:       corsAllowAll,
		CORSOrigins:        corsOrigins,
		CORSAllowCreds:     strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),
		RateLimitPerMinute: mustInt(getEnv("RATE_LIMIT_PER_MINUTE", "600")),
		RedisURL:           getEnv("REDIS_URL", ""),
		RosterCacheTTL:     mustDuration(getEnv("ROSTER_CACHE_TTL", "5m")),
		WorkerConcurrency:  mustInt(getEnv("WORKER_CONCURRENCY", "5")),
		MinIOEndpoint:      getEnv("MINIO_ENDPOINT", ""),
		MinIOAccessKey:     getEnv("MINIO_ACCESS_KEY", ""),
		MinIOSecretKey:     getEnv("MINIO_SECRET_KEY", ""),
		MinIOUseSSL:        strings.EqualFold(getEnv("MINIO_USE_SSL", "false"), "true"),
		MinioBucketImports: getEnv("MINIO_BUCKET_IMPORTS", "crm-imports"),
		SMTPHost:           getEnv("SMTP_HOST", ""),
		SMTPPort:           mustInt(getEnv("SMTP_PORT", "587")),
		SMTPUsername:       getEnv("SMTP_USERNAME", ""),
		SMTPPassword:       getEnv("SMTP_PASSWORD", ""),
		EmailFromName:      getEnv("EMAIL_FROM_NAME", "Beauty CRM"),
		EmailFromAddress:   getEnv("EMAIL_FROM_ADDRESS", ""),
		AppBaseURL:         strings.TrimRight(getEnv("APP_BASE_URL", ""), "/"),
		DemoMode:           strings.EqualFold(getEnv("DEMO_MODE", "false"), "true"),
		DefaultCurrency:    strings.ToUpper(getEnv("DEFAULT_CURRENCY", "MYR")),
		CloseDateHorizon:   mustDuration(getEnv("CLOSE_DATE_HORIZON", "2160h")),
		AboutLookupFile:    getEnv("ABOUT_LOOKUP_FILE", ""),
		AboutLookupObject:  getEnv("ABOUT_LOOKUP_OBJECT", ""),
		GeminiAPIKey:       getEnv("GEMINI_API_KEY", ""),
		GeminiModel:        getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		TerritoriesFile:    getEnv("TERRITORIES_FILE", ""),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.JWTAccessSecret == "" {
		return fmt.Errorf("JWT_ACCESS_SECRET is required")
	}
	if c.IsEmailEnabled() && c.EmailFromAddress == "" {
		return fmt.Errorf("EMAIL_FROM_ADDRESS is required when SMTP_HOST is set")
	}
	if c.CORSAllowAll && c.CORSAllowCreds {
		return fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}
	if c.AboutLookupObject != "" && !c.IsMinIOEnabled() {
		return fmt.Errorf("ABOUT_LOOKUP_OBJECT requires MINIO_ENDPOINT")
	}
	if c.CloseDateHorizon <= 0 {
		return fmt.Errorf("CLOSE_DATE_HORIZON must be a positive duration")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func mustInt(value string) int {
	result, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
