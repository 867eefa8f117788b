package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/platinummonkey/aminoapi/pkg/observability"
	"github.com/robfig/cron/v3"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Server ServerConfig

	// Dataset configuration
	Dataset DatasetConfig

	// Observability configuration
	Observability ObservabilityConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	// Health/metrics server (separate port for k8s probes)
	HealthPort string
}

// Addr is the API listen address
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, s.Port)
}

// HealthAddr is the health and metrics listen address
func (s ServerConfig) HealthAddr() string {
	return net.JoinHostPort(s.Host, s.HealthPort)
}

// DatasetConfig selects the amino acid dataset
type DatasetConfig struct {
	// Path to a JSON or YAML file; empty uses the embedded dataset
	Path string

	// Watch reloads the file when it changes
	Watch bool

	// ReloadSchedule reloads the file on a cron schedule; empty disables it
	ReloadSchedule string
}

// ObservabilityConfig holds observability settings
type ObservabilityConfig struct {
	// Logging
	LogLevel observability.LogLevel

	// Metrics
	MetricsEnabled bool

	// OpenTelemetry
	OTelEnabled        bool
	OTelEndpoint       string
	OTelServiceName    string
	OTelServiceVersion string
	OTelInsecure       bool // Use insecure gRPC connection
}

// OTel converts the settings for observability.InitOTel
func (o ObservabilityConfig) OTel() observability.OTelConfig {
	return observability.OTelConfig{
		Enabled:        o.OTelEnabled,
		Endpoint:       o.OTelEndpoint,
		ServiceName:    o.OTelServiceName,
		ServiceVersion: o.OTelServiceVersion,
		Insecure:       o.OTelInsecure,
	}
}

// LoadConfig loads configuration from environment variables and validates it
func LoadConfig() (*Config, error) {
	cfg := LoadFromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// LoadFromEnv reads environment variables without validating, so callers can
// apply overrides first and call Validate afterwards
func LoadFromEnv() *Config {
	return &Config{
		Server:        loadServerConfig(),
		Dataset:       loadDatasetConfig(),
		Observability: loadObservabilityConfig(),
	}
}

// loadServerConfig loads server configuration from environment
func loadServerConfig() ServerConfig {
	return ServerConfig{
		Host:            getEnv("AMINO_HOST", "0.0.0.0"),
		Port:            getEnv("AMINO_PORT", "8080"),
		ReadTimeout:     getEnvDuration("AMINO_READ_TIMEOUT", 15*time.Second),
		WriteTimeout:    getEnvDuration("AMINO_WRITE_TIMEOUT", 15*time.Second),
		IdleTimeout:     getEnvDuration("AMINO_IDLE_TIMEOUT", 60*time.Second),
		ShutdownTimeout: getEnvDuration("AMINO_SHUTDOWN_TIMEOUT", 30*time.Second),
		HealthPort:      getEnv("AMINO_HEALTH_PORT", "9090"),
	}
}

// loadDatasetConfig loads dataset configuration from environment
func loadDatasetConfig() DatasetConfig {
	return DatasetConfig{
		Path:           getEnv("AMINO_DATASET_PATH", ""),
		Watch:          getEnvBool("AMINO_DATASET_WATCH", false),
		ReloadSchedule: getEnv("AMINO_DATASET_RELOAD_SCHEDULE", ""),
	}
}

// loadObservabilityConfig loads observability configuration from environment
func loadObservabilityConfig() ObservabilityConfig {
	return ObservabilityConfig{
		LogLevel:           parseLogLevel(getEnv("AMINO_LOG_LEVEL", "info")),
		MetricsEnabled:     getEnvBool("AMINO_METRICS_ENABLED", true),
		OTelEnabled:        getEnvBool("AMINO_OTEL_ENABLED", false),
		OTelEndpoint:       getEnv("AMINO_OTEL_ENDPOINT", "localhost:4317"),
		OTelServiceName:    getEnv("AMINO_OTEL_SERVICE_NAME", "aminoapi"),
		OTelServiceVersion: getEnv("AMINO_OTEL_SERVICE_VERSION", "1.0.0"),
		OTelInsecure:       getEnvBool("AMINO_OTEL_INSECURE", true),
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Validate server config
	if c.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}
	if c.Server.HealthPort == "" {
		return fmt.Errorf("health port is required")
	}
	if err := validatePort(c.Server.Port); err != nil {
		return fmt.Errorf("server port: %w", err)
	}
	if err := validatePort(c.Server.HealthPort); err != nil {
		return fmt.Errorf("health port: %w", err)
	}
	if c.Server.Port == c.Server.HealthPort {
		return fmt.Errorf("server port and health port must be different")
	}

	// Watching and scheduled reloads need a file
	if c.Dataset.Watch && c.Dataset.Path == "" {
		return fmt.Errorf("dataset watch requires a dataset path")
	}
	if c.Dataset.ReloadSchedule != "" && c.Dataset.Path == "" {
		return fmt.Errorf("dataset reload schedule requires a dataset path")
	}
	if c.Dataset.ReloadSchedule != "" {
		if _, err := cron.ParseStandard(c.Dataset.ReloadSchedule); err != nil {
			return fmt.Errorf("dataset reload schedule: %w", err)
		}
	}

	// Validate OpenTelemetry config
	if c.Observability.OTelEnabled {
		if c.Observability.OTelEndpoint == "" {
			return fmt.Errorf("OpenTelemetry endpoint is required when OTel is enabled")
		}
		if c.Observability.OTelServiceName == "" {
			return fmt.Errorf("OpenTelemetry service name is required when OTel is enabled")
		}
	}

	return nil
}

func validatePort(port string) error {
	n, err := strconv.Atoi(port)
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("invalid port %q", port)
	}
	return nil
}

// parseLogLevel parses a log level string
func parseLogLevel(level string) observability.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return observability.DebugLevel
	case "info":
		return observability.InfoLevel
	case "warn", "warning":
		return observability.WarnLevel
	case "error":
		return observability.ErrorLevel
	default:
		return observability.InfoLevel
	}
}

// getEnv returns an environment variable value or a default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool returns a boolean environment variable or a default
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return strings.ToLower(value) == "true" || value == "1"
	}
	return defaultValue
}

// getEnvDuration returns a duration environment variable or a default
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
