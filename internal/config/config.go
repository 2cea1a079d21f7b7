package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Aggregator AggregatorConfig `yaml:"aggregator"`
}

// ServerConfig represents the HTTP server configuration
type ServerConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

// AggregatorConfig represents the upstream market-data aggregator configuration
type AggregatorConfig struct {
	BaseURL        string `yaml:"base_url"`        // Per-token pairs endpoint, address appended as a path segment
	TimeoutSeconds int    `yaml:"timeout_seconds"` // HTTP client timeout in seconds (default: 10)
}

// DefaultAggregatorBaseURL is the DexScreener per-token pairs endpoint.
const DefaultAggregatorBaseURL = "https://api.dexscreener.com/latest/dex/tokens"

// Load loads configuration from a YAML file and environment variables
func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: 8080,
			Host: "0.0.0.0",
		},
		Aggregator: AggregatorConfig{
			BaseURL:        DefaultAggregatorBaseURL,
			TimeoutSeconds: 10,
		},
	}

	// Load from YAML file if it exists
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		} else {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	// Override with environment variables
	cfg.loadEnv()

	return cfg, nil
}

func (c *Config) loadEnv() {
	// Server config
	if port := os.Getenv("SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}
	if host := os.Getenv("SERVER_HOST"); host != "" {
		c.Server.Host = host
	}

	// Aggregator config
	if base := os.Getenv("AGGREGATOR_BASE_URL"); base != "" {
		c.Aggregator.BaseURL = base
	}
	if timeout := os.Getenv("AGGREGATOR_TIMEOUT_SECONDS"); timeout != "" {
		if t, err := strconv.Atoi(timeout); err == nil {
			c.Aggregator.TimeoutSeconds = t
		}
	}
}
