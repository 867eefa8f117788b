package config

import (
	"strings"
	"testing"
	"time"

	"github.com/platinummonkey/aminoapi/pkg/observability"
)

var allEnvVars = []string{
	"AMINO_HOST", "AMINO_PORT", "AMINO_HEALTH_PORT",
	"AMINO_READ_TIMEOUT", "AMINO_WRITE_TIMEOUT", "AMINO_IDLE_TIMEOUT", "AMINO_SHUTDOWN_TIMEOUT",
	"AMINO_DATASET_PATH", "AMINO_DATASET_WATCH", "AMINO_DATASET_RELOAD_SCHEDULE",
	"AMINO_LOG_LEVEL", "AMINO_METRICS_ENABLED",
	"AMINO_OTEL_ENABLED", "AMINO_OTEL_ENDPOINT", "AMINO_OTEL_SERVICE_NAME",
	"AMINO_OTEL_SERVICE_VERSION", "AMINO_OTEL_INSECURE",
}

// clearEnv blanks every variable the package reads; empty values fall back to defaults
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range allEnvVars {
		t.Setenv(key, "")
	}
}

// TestGetEnv tests the getEnv helper function
func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		envValue     string
		defaultValue string
		want         string
	}{
		{name: "returns env value when set", envValue: "custom", defaultValue: "default", want: "custom"},
		{name: "returns default when env not set", envValue: "", defaultValue: "default", want: "default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("AMINO_TEST_VAR", tt.envValue)

			got := getEnv("AMINO_TEST_VAR", tt.defaultValue)
			if got != tt.want {
				t.Errorf("getEnv() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestGetEnvBool tests the getEnvBool helper function
func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		name         string
		envValue     string
		defaultValue bool
		want         bool
	}{
		{name: "returns true for 'true'", envValue: "true", want: true},
		{name: "returns true for 'TRUE'", envValue: "TRUE", want: true},
		{name: "returns true for '1'", envValue: "1", want: true},
		{name: "returns false for 'false'", envValue: "false", defaultValue: true, want: false},
		{name: "returns false for anything else", envValue: "yes", defaultValue: true, want: false},
		{name: "returns default when not set", envValue: "", defaultValue: true, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("AMINO_TEST_BOOL", tt.envValue)

			got := getEnvBool("AMINO_TEST_BOOL", tt.defaultValue)
			if got != tt.want {
				t.Errorf("getEnvBool() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestGetEnvDuration tests the getEnvDuration helper function
func TestGetEnvDuration(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		want     time.Duration
	}{
		{name: "parses seconds", envValue: "5s", want: 5 * time.Second},
		{name: "parses minutes", envValue: "2m", want: 2 * time.Minute},
		{name: "returns default for invalid", envValue: "soon", want: time.Second},
		{name: "returns default when not set", envValue: "", want: time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("AMINO_TEST_DURATION", tt.envValue)

			got := getEnvDuration("AMINO_TEST_DURATION", time.Second)
			if got != tt.want {
				t.Errorf("getEnvDuration() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestParseLogLevel tests log level parsing
func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  observability.LogLevel
	}{
		{"debug", observability.DebugLevel},
		{"DEBUG", observability.DebugLevel},
		{"info", observability.InfoLevel},
		{"warn", observability.WarnLevel},
		{"warning", observability.WarnLevel},
		{"error", observability.ErrorLevel},
		{"verbose", observability.InfoLevel},
		{"", observability.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLogLevel(tt.input); got != tt.want {
				t.Errorf("parseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestLoadConfig_Defaults tests that an empty environment yields the documented defaults
func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Server.Host != "0.0.0.0" || cfg.Server.Port != "8080" || cfg.Server.HealthPort != "9090" {
		t.Errorf("unexpected server defaults: %+v", cfg.Server)
	}
	if cfg.Server.ReadTimeout != 15*time.Second || cfg.Server.WriteTimeout != 15*time.Second {
		t.Errorf("unexpected read/write timeouts: %v/%v", cfg.Server.ReadTimeout, cfg.Server.WriteTimeout)
	}
	if cfg.Server.IdleTimeout != 60*time.Second {
		t.Errorf("IdleTimeout = %v, want 60s", cfg.Server.IdleTimeout)
	}
	if cfg.Server.ShutdownTimeout != 30*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 30s", cfg.Server.ShutdownTimeout)
	}
	if cfg.Dataset.Path != "" || cfg.Dataset.Watch || cfg.Dataset.ReloadSchedule != "" {
		t.Errorf("unexpected dataset defaults: %+v", cfg.Dataset)
	}

	obs := cfg.Observability
	if obs.LogLevel != observability.InfoLevel {
		t.Errorf("LogLevel = %v, want info", obs.LogLevel)
	}
	if !obs.MetricsEnabled {
		t.Error("MetricsEnabled should default to true")
	}
	if obs.OTelEnabled {
		t.Error("OTelEnabled should default to false")
	}
	if obs.OTelEndpoint != "localhost:4317" || obs.OTelServiceName != "aminoapi" || obs.OTelServiceVersion != "1.0.0" {
		t.Errorf("unexpected OTel defaults: %+v", obs)
	}
	if !obs.OTelInsecure {
		t.Error("OTelInsecure should default to true")
	}
}

// TestLoadConfig_FromEnv tests that environment variables override defaults
func TestLoadConfig_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("AMINO_HOST", "127.0.0.1")
	t.Setenv("AMINO_PORT", "3000")
	t.Setenv("AMINO_HEALTH_PORT", "3001")
	t.Setenv("AMINO_READ_TIMEOUT", "5s")
	t.Setenv("AMINO_DATASET_PATH", "/data/amino.yaml")
	t.Setenv("AMINO_DATASET_WATCH", "true")
	t.Setenv("AMINO_DATASET_RELOAD_SCHEDULE", "@every 10m")
	t.Setenv("AMINO_LOG_LEVEL", "debug")
	t.Setenv("AMINO_METRICS_ENABLED", "false")
	t.Setenv("AMINO_OTEL_ENABLED", "1")
	t.Setenv("AMINO_OTEL_ENDPOINT", "collector:4317")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if got := cfg.Server.Addr(); got != "127.0.0.1:3000" {
		t.Errorf("Addr() = %v, want 127.0.0.1:3000", got)
	}
	if got := cfg.Server.HealthAddr(); got != "127.0.0.1:3001" {
		t.Errorf("HealthAddr() = %v, want 127.0.0.1:3001", got)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("ReadTimeout = %v, want 5s", cfg.Server.ReadTimeout)
	}
	if cfg.Dataset.Path != "/data/amino.yaml" || !cfg.Dataset.Watch || cfg.Dataset.ReloadSchedule != "@every 10m" {
		t.Errorf("unexpected dataset config: %+v", cfg.Dataset)
	}
	if cfg.Observability.LogLevel != observability.DebugLevel {
		t.Errorf("LogLevel = %v, want debug", cfg.Observability.LogLevel)
	}
	if cfg.Observability.MetricsEnabled {
		t.Error("MetricsEnabled should be false")
	}

	otel := cfg.Observability.OTel()
	if !otel.Enabled || otel.Endpoint != "collector:4317" || otel.ServiceName != "aminoapi" {
		t.Errorf("unexpected OTel config: %+v", otel)
	}
}

// TestLoadConfig_Invalid tests that validation failures are wrapped
func TestLoadConfig_Invalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("AMINO_HEALTH_PORT", "8080")

	_, err := LoadConfig()
	if err == nil {
		t.Fatal("expected error for clashing ports")
	}
	if !strings.Contains(err.Error(), "configuration validation failed") {
		t.Errorf("unexpected error: %v", err)
	}
}

// TestLoadFromEnv_DefersValidation tests that overrides can repair an
// environment that would fail validation on its own
func TestLoadFromEnv_DefersValidation(t *testing.T) {
	clearEnv(t)
	t.Setenv("AMINO_DATASET_WATCH", "true")
	t.Setenv("AMINO_HEALTH_PORT", "8080")

	cfg := LoadFromEnv()
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected environment alone to be invalid")
	}

	cfg.Dataset.Path = "amino.yaml"
	cfg.Server.Port = "8081"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() after overrides error = %v", err)
	}
}

// TestConfigValidate tests configuration validation
func TestConfigValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server: ServerConfig{Port: "8080", HealthPort: "9090"},
			Observability: ObservabilityConfig{
				OTelEndpoint:    "localhost:4317",
				OTelServiceName: "aminoapi",
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "missing port", mutate: func(c *Config) { c.Server.Port = "" }, wantErr: "server port is required"},
		{name: "missing health port", mutate: func(c *Config) { c.Server.HealthPort = "" }, wantErr: "health port is required"},
		{name: "non-numeric port", mutate: func(c *Config) { c.Server.Port = "http" }, wantErr: "server port"},
		{name: "port out of range", mutate: func(c *Config) { c.Server.HealthPort = "70000" }, wantErr: "health port"},
		{name: "same ports", mutate: func(c *Config) { c.Server.HealthPort = "8080" }, wantErr: "must be different"},
		{name: "watch without path", mutate: func(c *Config) { c.Dataset.Watch = true }, wantErr: "requires a dataset path"},
		{name: "watch with path", mutate: func(c *Config) { c.Dataset.Watch = true; c.Dataset.Path = "amino.json" }},
		{name: "schedule without path", mutate: func(c *Config) { c.Dataset.ReloadSchedule = "@hourly" }, wantErr: "reload schedule requires"},
		{
			name:    "invalid schedule",
			mutate:  func(c *Config) { c.Dataset.ReloadSchedule = "every tuesday"; c.Dataset.Path = "amino.json" },
			wantErr: "dataset reload schedule:",
		},
		{name: "five-field schedule", mutate: func(c *Config) { c.Dataset.ReloadSchedule = "*/5 * * * *"; c.Dataset.Path = "amino.json" }},
		{name: "descriptor schedule", mutate: func(c *Config) { c.Dataset.ReloadSchedule = "@every 10m"; c.Dataset.Path = "amino.json" }},
		{
			name:    "otel without endpoint",
			mutate:  func(c *Config) { c.Observability.OTelEnabled = true; c.Observability.OTelEndpoint = "" },
			wantErr: "endpoint is required",
		},
		{
			name:    "otel without service name",
			mutate:  func(c *Config) { c.Observability.OTelEnabled = true; c.Observability.OTelServiceName = "" },
			wantErr: "service name is required",
		},
		{name: "otel disabled ignores empty fields", mutate: func(c *Config) { c.Observability.OTelEndpoint = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
