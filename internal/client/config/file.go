package config

import (
	"github.com/dmitrijs2005/aroha/internal/flagx"
	"github.com/dmitrijs2005/aroha/internal/timex"
)

// FileConfig is a DTO used exclusively for config file decoding. It relies
// on timex.Duration so intervals can be written as "3s" or as integer
// nanoseconds.
type FileConfig struct {
	ServerEndpointAddr  *string         `json:"server_endpoint_addr" yaml:"server_endpoint_addr"`
	OnlineCheckInterval *timex.Duration `json:"online_check_interval" yaml:"online_check_interval"`
	DatabasePath        string          `json:"database_path" yaml:"database_path"`
	LogLevel            string          `json:"log_level" yaml:"log_level"`
}

// parseFile overlays Config with values from the file named by -c/-config.
// JSON and YAML are both accepted (see flagx.DecodeConfigFile). Keys missing
// from the file leave the current value alone; server_endpoint_addr may be
// set to "" to run without a backend.
//
// Panics on read or decode errors.
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	var fc FileConfig
	if err := flagx.DecodeConfigFile(path, &fc); err != nil {
		panic(err)
	}

	if fc.ServerEndpointAddr != nil {
		cfg.ServerEndpointAddr = *fc.ServerEndpointAddr
	}
	if fc.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = fc.OnlineCheckInterval.Duration
	}
	if fc.DatabasePath != "" {
		cfg.DatabasePath = fc.DatabasePath
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
}
