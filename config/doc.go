// Package config handles application configuration loading and validation.
//
// Configuration is loaded from a YAML file and validated using struct tags.
// The package supports multiple named networks and allows network selection
// by name, plus a per-operator fare table.
package config
