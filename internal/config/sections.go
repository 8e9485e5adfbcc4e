package config

import (
	"fmt"
	"time"
)

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port string `json:"port"`
}

func (c *ServerConfig) SetDefaults() {
	if c.Port == "" {
		c.Port = "8080"
	}
}

// DatabaseConfig holds the postgres connection string.
type DatabaseConfig struct {
	URL string `json:"url"`
}

func (c DatabaseConfig) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("database.url is required")
	}
	return nil
}

// RoutingConfig configures the travel-distance-matrix service. An empty API
// key is allowed: the matrix call will fail and the haversine fallback takes
// over, which matches the legacy behavior when no key was configured.
type RoutingConfig struct {
	APIKey  string        `json:"api_key"`
	BaseURL string        `json:"base_url"`
	Timeout time.Duration `json:"timeout"`
}

func (c *RoutingConfig) SetDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "https://routes.googleapis.com"
	}
	if c.Timeout == 0 {
		c.Timeout = 10 * time.Second
	}
}

// SolverConfig describes how to invoke the external solver process.
type SolverConfig struct {
	// Command is the executable, Args the leading arguments (typically the
	// script path); the serialized instance is appended as --json <payload>.
	Command string        `json:"command"`
	Args    []string      `json:"args"`
	Timeout time.Duration `json:"timeout"`
}

func (c *SolverConfig) SetDefaults() {
	if c.Command == "" {
		c.Command = "python3"
		c.Args = []string{"scripts/load_optimizer.py"}
	}
	if c.Timeout == 0 {
		c.Timeout = 2 * time.Minute
	}
}

func (c SolverConfig) Validate() error {
	if c.Command == "" {
		return fmt.Errorf("solver.command is required")
	}
	return nil
}

// RedisConfig configures the optional distance-matrix cache. An empty Addr
// disables caching entirely.
type RedisConfig struct {
	Addr string        `json:"addr"`
	TTL  time.Duration `json:"ttl"`
}

func (c *RedisConfig) SetDefaults() {
	if c.TTL == 0 {
		c.TTL = 15 * time.Minute
	}
}
