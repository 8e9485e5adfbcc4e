package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config aggregates all settings the service needs. Values are injected at
// construction time; nothing reads process-wide state ad hoc.
type Config struct {
	Server   ServerConfig   `json:"server"`
	Database DatabaseConfig `json:"database"`
	Routing  RoutingConfig  `json:"routing"`
	Solver   SolverConfig   `json:"solver"`
	Redis    RedisConfig    `json:"redis"`
}

// Load reads an optional YAML file, then applies DISPATCH_-prefixed
// environment overrides (DISPATCH_DATABASE__URL -> database.url), then the
// handful of bare variables the legacy deployment exported.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %q: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("DISPATCH_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "dispatch_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("load env overrides: %w", err)
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.applyLegacyEnv()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyLegacyEnv honors the variable names the original deployment used.
func (c *Config) applyLegacyEnv() {
	if v := os.Getenv("DATABASE_URL"); v != "" && c.Database.URL == "" {
		c.Database.URL = v
	}
	if v := os.Getenv("GOOGLE_MAPS_API_KEY"); v != "" && c.Routing.APIKey == "" {
		c.Routing.APIKey = v
	}
	if v := os.Getenv("PORT"); v != "" && c.Server.Port == "" {
		c.Server.Port = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" && c.Redis.Addr == "" {
		c.Redis.Addr = v
	}
}

// SetDefaults applies sane defaults to every section.
func (c *Config) SetDefaults() {
	c.Server.SetDefaults()
	c.Routing.SetDefaults()
	c.Solver.SetDefaults()
	c.Redis.SetDefaults()
}

// Validate checks mandatory fields across sections.
func (c Config) Validate() error {
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Solver.Validate(); err != nil {
		return err
	}
	return nil
}
