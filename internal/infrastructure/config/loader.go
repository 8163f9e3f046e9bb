package config

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const envPrefix = "GOODBYE"

// DefaultSearchPaths are the directories searched for config.yaml when
// LoadConfig is called without explicit paths.
var DefaultSearchPaths = []string{".", "./config", "/etc/goodbye"}

var validate = validator.New()

// LoadConfig loads the application configuration. Values are layered as
// defaults, then config.yaml from the first search path that has one, then
// GOODBYE_* environment variables. A missing config file is not an error.
func LoadConfig(searchPaths ...string) (*Config, error) {
	if len(searchPaths) == 0 {
		searchPaths = DefaultSearchPaths
	}

	v := viper.New()
	setDefaults(v, Default())

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range searchPaths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks struct constraints and the cross-field rules
func Validate(config *Config) error {
	if err := validate.Struct(config); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	if config.CORS.Enabled {
		if len(config.CORS.AllowOrigins) == 0 {
			return fmt.Errorf("cors is enabled but no origins are configured")
		}
		for _, origin := range config.CORS.AllowOrigins {
			if !validOrigin(origin) {
				return fmt.Errorf("invalid cors origin %q: must be \"*\" or start with http:// or https://", origin)
			}
		}
	}
	if config.Metrics.ListenAddress != "" && !config.Metrics.Enabled {
		return fmt.Errorf("metrics listen address is set but metrics are disabled")
	}
	if docs := config.Metrics.DocsPath; docs != "" {
		docs = path.Clean(docs)
		if docs == "/" {
			return fmt.Errorf("metrics docs path must not be the root path")
		}
		for _, p := range []string{config.Metrics.Path, config.Metrics.HealthPath} {
			if p == docs || strings.HasPrefix(p, docs+"/") {
				return fmt.Errorf("metrics docs path %q overlaps %q", docs, p)
			}
		}
	}

	return nil
}

// validOrigin accepts the exact origins gin-contrib/cors can match without
// wildcard or extension schemes enabled
func validOrigin(origin string) bool {
	return origin == "*" ||
		strings.HasPrefix(origin, "http://") ||
		strings.HasPrefix(origin, "https://")
}

// setDefaults registers every key with viper so environment variables are
// picked up by Unmarshal even when no config file mentions the key.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("server.host", d.Server.Host)
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.read_timeout", d.Server.ReadTimeout)
	v.SetDefault("server.read_header_timeout", d.Server.ReadHeaderTimeout)
	v.SetDefault("server.write_timeout", d.Server.WriteTimeout)
	v.SetDefault("server.idle_timeout", d.Server.IdleTimeout)
	v.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout)
	v.SetDefault("server.max_header_bytes", d.Server.MaxHeaderBytes)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.development", d.Log.Development)

	v.SetDefault("metrics.enabled", d.Metrics.Enabled)
	v.SetDefault("metrics.listen_address", d.Metrics.ListenAddress)
	v.SetDefault("metrics.path", d.Metrics.Path)
	v.SetDefault("metrics.health_path", d.Metrics.HealthPath)
	v.SetDefault("metrics.docs_path", d.Metrics.DocsPath)

	v.SetDefault("cors.enabled", d.CORS.Enabled)
	v.SetDefault("cors.allow_origins", d.CORS.AllowOrigins)

	v.SetDefault("otel.service_name", d.Otel.ServiceName)
	v.SetDefault("otel.tracing.enabled", d.Otel.Tracing.Enabled)
	v.SetDefault("otel.tracing.exporter", d.Otel.Tracing.Exporter)
	v.SetDefault("otel.metrics.enabled", d.Otel.Metrics.Enabled)
	v.SetDefault("otel.metrics.exporter", d.Otel.Metrics.Exporter)
}
