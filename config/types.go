package config

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"gt=0"`
}

// NetworkConfig names one loadable transit network. Source is a local
// file path or an http(s) URL; the extension picks the format.
type NetworkConfig struct {
	Name   string `yaml:"name" validate:"required"`
	Source string `yaml:"source" validate:"required"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server   ServerConfig    `yaml:"server" validate:"required"`
	Network  NetworkConfig   `yaml:"network"`
	Networks []NetworkConfig `yaml:"networks"`
	Pricing  map[string]int  `yaml:"pricing"`
}
