package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultPort is used when the server section does not set one.
const DefaultPort = 16181

// LoadAppConfig loads and validates the application configuration. An
// empty path falls back to config.yml in the working directory.
func LoadAppConfig(path string) (AppConfig, error) {
	if path == "" {
		path = "config.yml"
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return AppConfig{}, fmt.Errorf("read config: %w", err)
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("parse config: %w", err)
	}
	// The default must land before validation; gt=0 rejects an unset port.
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultPort
	}
	v := validator.New()
	if err := v.Struct(cfg.Server); err != nil {
		return AppConfig{}, fmt.Errorf("validate server config: %w", err)
	}
	// networks are optional; if present validate each
	for _, n := range cfg.Networks {
		if err := v.Struct(n); err != nil {
			return AppConfig{}, fmt.Errorf("validate network %q: %w", n.Name, err)
		}
	}
	if err := v.Var(cfg.Pricing, "dive,gte=0"); err != nil {
		return AppConfig{}, fmt.Errorf("validate pricing: %w", err)
	}
	return cfg, nil
}

// SelectNetwork chooses a network by name; fallback to first; if none are
// listed, use the top-level network.
func SelectNetwork(cfg AppConfig, name string) NetworkConfig {
	if name != "" {
		for _, n := range cfg.Networks {
			if n.Name == name {
				return n
			}
		}
	}
	if len(cfg.Networks) > 0 {
		return cfg.Networks[0]
	}
	return cfg.Network
}
