package config

import "time"

// Config holds runtime settings for the Aroha client.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend gRPC endpoint. Empty means
//     no backend is configured and the client runs local-only.
//   - OnlineCheckInterval: how often the client probes server reachability.
//   - DatabasePath: SQLite file holding records and preferences.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	ServerEndpointAddr  string
	OnlineCheckInterval time.Duration
	DatabasePath        string
	LogLevel            string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.OnlineCheckInterval = 3 * time.Second
	c.DatabasePath = "aroha.db"
	c.LogLevel = "warn"
}

// BackendConfigured reports whether a server endpoint is set.
func (c *Config) BackendConfigured() bool {
	return c.ServerEndpointAddr != ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the config file (if present) and command-line flags (if present). Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	return cfg
}
