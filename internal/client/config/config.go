// Package config loads the VoiceProof CLI configuration. Sources are applied
// in order, later ones overriding earlier ones: compiled defaults, a JSON
// file (-c/-config), environment variables, and command-line flags.
package config

import "time"

// Config holds the client's runtime settings.
//
// Fields:
//   - BaseURL: scheme://host of the VoiceProof API. One backend serves both
//     the auth and the detection endpoints.
//   - ExpiryCheckInterval: how often the watchdog re-checks session expiry.
//   - RequestTimeout: per-request HTTP timeout.
//   - CredentialDBPath: location of the local credential cache database.
type Config struct {
	BaseURL             string
	ExpiryCheckInterval time.Duration
	RequestTimeout      time.Duration
	CredentialDBPath    string
}

// LoadDefaults populates c with production defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "https://ranajawadapi.duckdns.org"
	c.ExpiryCheckInterval = 60 * time.Second
	c.RequestTimeout = 30 * time.Second
	c.CredentialDBPath = "voiceproof.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the JSON file, the environment, and command-line flags, in that order.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
