package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the application configuration
type Config struct {
	App      AppConfig      `yaml:"app"`
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Audit    AuditConfig    `yaml:"audit"`
	Log      LogConfig      `yaml:"log"`
}

// AppConfig describes the running service
type AppConfig struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Environment string `yaml:"environment"`
}

// ServerConfig configures the HTTP server
type ServerConfig struct {
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	RequestTimeout  time.Duration `yaml:"request_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// DatabaseConfig selects the SQL driver and connection string
type DatabaseConfig struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

// KafkaConfig configures change event publishing; no brokers disables it
type KafkaConfig struct {
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
}

// AuditConfig tunes the audit logger
type AuditConfig struct {
	RecordViews   bool `yaml:"record_views"`
	FailureBuffer int  `yaml:"failure_buffer"`
}

// LogConfig configures the structured logger
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file overrides a value
func Default() *Config {
	return &Config{
		App: AppConfig{
			Name:        "config-store",
			Version:     "0.1.0",
			Environment: "development",
		},
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 15 * time.Second,
		},
		Database: DatabaseConfig{
			Driver: "sqlite3",
			DSN:    "config_store.db",
		},
		Kafka: KafkaConfig{
			Topic: "config-store.settings.changed.v1",
		},
		Audit: AuditConfig{
			FailureBuffer: 64,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads a YAML file over the defaults and applies environment overrides.
// An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyEnv overrides values from environment variables
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("PORT"); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		c.Server.Port = port
	}
	if v, ok := lookup("DATABASE_DRIVER"); ok && v != "" {
		c.Database.Driver = v
	}
	if v, ok := lookup("DATABASE_DSN"); ok && v != "" {
		c.Database.DSN = v
	}
	if v, ok := lookup("KAFKA_BROKERS"); ok {
		c.Kafka.Brokers = splitList(v)
	}
	if v, ok := lookup("LOG_LEVEL"); ok && v != "" {
		c.Log.Level = v
	}
	return nil
}

// Validate checks the configuration for values the service cannot start with
func (c *Config) Validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("app.name is required")
	}
	if c.Server.Port <= 0 {
		return fmt.Errorf("server.port must be positive")
	}
	switch c.Database.Driver {
	case "sqlite3", "pgx":
	default:
		return fmt.Errorf("database.driver must be sqlite3 or pgx, got %q", c.Database.Driver)
	}
	if c.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required")
	}
	if len(c.Kafka.Brokers) > 0 && c.Kafka.Topic == "" {
		return fmt.Errorf("kafka.topic is required when brokers are set")
	}
	if c.Audit.FailureBuffer < 0 {
		return fmt.Errorf("audit.failure_buffer must not be negative")
	}
	return nil
}

func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
