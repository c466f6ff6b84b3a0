package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string        `yaml:"host"`
	Port            string        `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// Health/metrics server (separate port for probes and scraping)
	AdminPort string `yaml:"admin_port"`
}

// ObservabilityConfig holds observability settings
type ObservabilityConfig struct {
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`

	ServiceName    string `yaml:"service_name"`
	ServiceVersion string `yaml:"service_version"`

	OTelEnabled  bool   `yaml:"otel_enabled"`
	OTelEndpoint string `yaml:"otel_endpoint"`
	OTelInsecure bool   `yaml:"otel_insecure"`
}

// LoadConfig loads configuration, starting from defaults, then the YAML
// file named by SHOPFRONT_CONFIG_FILE (if any), then the environment.
func LoadConfig() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("SHOPFRONT_CONFIG_FILE"); path != "" {
		if err := loadFile(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            "8000",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 30 * time.Second,
			AdminPort:       "9090",
		},
		Observability: ObservabilityConfig{
			LogLevel:       "info",
			ServiceName:    "shopfront",
			ServiceVersion: "1.0.0",
			OTelEnabled:    true,
			OTelEndpoint:   "localhost:4317",
			OTelInsecure:   true,
		},
	}
}

func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func applyEnv(cfg *Config) {
	cfg.Server.Host = getEnv("SHOPFRONT_HOST", cfg.Server.Host)
	cfg.Server.Port = getEnv("SHOPFRONT_PORT", cfg.Server.Port)
	cfg.Server.AdminPort = getEnv("SHOPFRONT_ADMIN_PORT", cfg.Server.AdminPort)
	cfg.Server.ReadTimeout = getEnvDuration("SHOPFRONT_READ_TIMEOUT", cfg.Server.ReadTimeout)
	cfg.Server.WriteTimeout = getEnvDuration("SHOPFRONT_WRITE_TIMEOUT", cfg.Server.WriteTimeout)
	cfg.Server.IdleTimeout = getEnvDuration("SHOPFRONT_IDLE_TIMEOUT", cfg.Server.IdleTimeout)
	cfg.Server.ShutdownTimeout = getEnvDuration("SHOPFRONT_SHUTDOWN_TIMEOUT", cfg.Server.ShutdownTimeout)

	cfg.Observability.LogLevel = getEnv("SHOPFRONT_LOG_LEVEL", cfg.Observability.LogLevel)
	cfg.Observability.LogFile = getEnv("SHOPFRONT_LOG_FILE", cfg.Observability.LogFile)
	cfg.Observability.ServiceName = getEnv("SHOPFRONT_SERVICE_NAME", cfg.Observability.ServiceName)
	cfg.Observability.ServiceVersion = getEnv("SHOPFRONT_SERVICE_VERSION", cfg.Observability.ServiceVersion)
	cfg.Observability.OTelEnabled = getEnvBool("SHOPFRONT_OTEL_ENABLED", cfg.Observability.OTelEnabled)
	cfg.Observability.OTelEndpoint = getEnv("SHOPFRONT_OTEL_ENDPOINT", cfg.Observability.OTelEndpoint)
	cfg.Observability.OTelInsecure = getEnvBool("SHOPFRONT_OTEL_INSECURE", cfg.Observability.OTelInsecure)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}
	if c.Server.AdminPort == "" {
		return fmt.Errorf("admin port is required")
	}
	if c.Server.Port == c.Server.AdminPort {
		return fmt.Errorf("server port and admin port must be different")
	}

	if c.Observability.ServiceName == "" {
		return fmt.Errorf("service name is required")
	}
	if c.Observability.OTelEnabled && c.Observability.OTelEndpoint == "" {
		return fmt.Errorf("OpenTelemetry endpoint is required when OTel is enabled")
	}

	return nil
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
