package config

import (
	"encoding/json"
	"os"

	"github.com/rjawad/voiceproof-cli/internal/flagx"
	"github.com/rjawad/voiceproof-cli/internal/timex"
)

// JsonConfig is the DTO for JSON unmarshalling. Durations accept either
// strings like "60s" or integer nanoseconds (see timex.Duration). Fields the
// file omits stay at their current values.
type JsonConfig struct {
	BaseURL             string         `json:"base_url"`
	ExpiryCheckInterval timex.Duration `json:"expiry_check_interval"`
	RequestTimeout      timex.Duration `json:"request_timeout"`
	CredentialDBPath    string         `json:"credential_db_path"`
}

// parseJson overlays cfg with values from the JSON file named by -c/-config.
// No flag means no file is loaded. Read or parse failures panic; the entry
// point treats a broken explicit config file as fatal.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.ExpiryCheckInterval.Duration > 0 {
		cfg.ExpiryCheckInterval = jc.ExpiryCheckInterval.Duration
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.CredentialDBPath != "" {
		cfg.CredentialDBPath = jc.CredentialDBPath
	}
}
