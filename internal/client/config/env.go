package config

import (
	"os"
	"strings"
)

// Environment variables recognized by the client.
const (
	envBaseURL = "VOICEPROOF_API_URL"
	envDBPath  = "VOICEPROOF_DB_PATH"
)

// parseEnv overlays cfg with values from the environment. Unset or blank
// variables change nothing.
func parseEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(envBaseURL)); v != "" {
		cfg.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv(envDBPath)); v != "" {
		cfg.CredentialDBPath = v
	}
}
