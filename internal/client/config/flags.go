package config

import (
	"flag"
	"os"
	"time"

	"github.com/rjawad/voiceproof-cli/internal/flagx"
)

// parseFlags overlays cfg with command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the VoiceProof API (default from Config)
//	-i int      expiry check interval in seconds (default from Config)
//
// os.Args is filtered to just these flags so the JSON-config flags handled
// elsewhere do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "base URL of the VoiceProof API")
	expiryCheckInterval := fs.Int("i", int(cfg.ExpiryCheckInterval.Seconds()), "expiry check interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.ExpiryCheckInterval = time.Duration(*expiryCheckInterval) * time.Second
}
