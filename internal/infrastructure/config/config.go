package config

import (
	"net"
	"strconv"
	"time"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Host              string        `mapstructure:"host" yaml:"host" json:"host" validate:"required"`
	Port              int           `mapstructure:"port" yaml:"port" json:"port" validate:"min=1,max=65535"`
	ReadTimeout       time.Duration `mapstructure:"read_timeout" yaml:"read_timeout" json:"read_timeout" validate:"min=0"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" yaml:"read_header_timeout" json:"read_header_timeout" validate:"min=0"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout" yaml:"write_timeout" json:"write_timeout" validate:"min=0"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout" yaml:"idle_timeout" json:"idle_timeout" validate:"min=0"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout" json:"shutdown_timeout" validate:"min=0"`
	MaxHeaderBytes    int           `mapstructure:"max_header_bytes" yaml:"max_header_bytes" json:"max_header_bytes" validate:"min=0"`
}

// Address returns the host:port the API listener binds to
func (s ServerConfig) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// LogConfig represents logging configuration
type LogConfig struct {
	Level       string `mapstructure:"level" yaml:"level" json:"level" validate:"oneof=debug info warn warning error"`
	Development bool   `mapstructure:"development" yaml:"development" json:"development"`
}

// MetricsConfig represents Prometheus configuration. The exposition, health
// and API docs endpoints are served on their own admin listener and only when
// ListenAddress is set. An empty DocsPath turns the Swagger UI off.
type MetricsConfig struct {
	Enabled       bool   `mapstructure:"enabled" yaml:"enabled" json:"enabled"`
	ListenAddress string `mapstructure:"listen_address" yaml:"listen_address" json:"listen_address" validate:"omitempty,hostname_port"`
	Path          string `mapstructure:"path" yaml:"path" json:"path" validate:"required,startswith=/"`
	HealthPath    string `mapstructure:"health_path" yaml:"health_path" json:"health_path" validate:"required,startswith=/,nefield=Path"`
	DocsPath      string `mapstructure:"docs_path" yaml:"docs_path" json:"docs_path" validate:"omitempty,startswith=/"`
}

// CORSConfig represents CORS configuration
type CORSConfig struct {
	Enabled      bool     `mapstructure:"enabled" yaml:"enabled" json:"enabled"`
	AllowOrigins []string `mapstructure:"allow_origins" yaml:"allow_origins" json:"allow_origins"`
}

// ExporterConfig toggles a single OpenTelemetry signal
type ExporterConfig struct {
	Enabled  bool   `mapstructure:"enabled" yaml:"enabled" json:"enabled"`
	Exporter string `mapstructure:"exporter" yaml:"exporter" json:"exporter" validate:"oneof=stdout none"`
}

// OtelConfig represents OpenTelemetry configuration
type OtelConfig struct {
	ServiceName string         `mapstructure:"service_name" yaml:"service_name" json:"service_name" validate:"required"`
	Tracing     ExporterConfig `mapstructure:"tracing" yaml:"tracing" json:"tracing"`
	Metrics     ExporterConfig `mapstructure:"metrics" yaml:"metrics" json:"metrics"`
}

// Config represents the application configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server" yaml:"server" json:"server"`
	Log     LogConfig     `mapstructure:"log" yaml:"log" json:"log"`
	Metrics MetricsConfig `mapstructure:"metrics" yaml:"metrics" json:"metrics"`
	CORS    CORSConfig    `mapstructure:"cors" yaml:"cors" json:"cors"`
	Otel    OtelConfig    `mapstructure:"otel" yaml:"otel" json:"otel"`
}

// Default returns the configuration the service runs with when nothing is
// overridden: all interfaces, port 3000, no server timeouts.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            3000,
			ShutdownTimeout: 10 * time.Second,
			MaxHeaderBytes:  1 << 20, // 1MB
		},
		Log: LogConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:    true,
			Path:       "/metrics",
			HealthPath: "/health",
			DocsPath:   "/swagger",
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"*"},
		},
		Otel: OtelConfig{
			ServiceName: "goodbye-api",
			Tracing:     ExporterConfig{Exporter: "stdout"},
			Metrics:     ExporterConfig{Exporter: "stdout"},
		},
	}
}
