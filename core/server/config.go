package server

// Config holds configuration for the HTTP query API.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables auth.
	ApiKey string `mapstructure:"api_key" default:""`
	// Metrics exposes Prometheus metrics on /metrics.
	Metrics bool `mapstructure:"metrics" default:"true"`
}

// IsAuthEnabled reports whether requests must carry the API key.
func (c Config) IsAuthEnabled() bool {
	return c.ApiKey != ""
}
