package server

import "strings"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables the check.
	ApiKey string `mapstructure:"api_key" default:""`
	// Features lists the features to load, comma separated. Empty loads every feature.
	Features string `mapstructure:"features" default:""`
}

// Address returns the listen address for the configured port.
func (c Config) Address() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}

// FeatureEnabled reports whether the named feature should be loaded.
func (c Config) FeatureEnabled(name string) bool {
	if strings.TrimSpace(c.Features) == "" {
		return true
	}
	for _, f := range strings.Split(c.Features, ",") {
		if strings.EqualFold(strings.TrimSpace(f), name) {
			return true
		}
	}
	return false
}
