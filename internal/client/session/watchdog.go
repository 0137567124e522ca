package session

import (
	"context"
	"time"

	"github.com/rjawad/voiceproof-cli/internal/logging"
)

// Watchdog periodically re-checks the stored expiry instant and invalidates
// the session once it has passed, with no user action required. Each tick
// reads fresh from the credential store: a new login (possibly from another
// process sharing the store) moves the expiry forward and the watchdog
// follows it.
//
// It is the only component allowed to end a session purely because time
// elapsed; everything else reacts to user actions or server responses.
type Watchdog struct {
	manager   *Manager
	interval  time.Duration
	onExpired func()
	log       logging.Logger
}

// NewWatchdog builds a watchdog over the given manager. onExpired runs on
// the watchdog goroutine after the credentials have been cleared; the owner
// uses it to notify the user and return to the login surface.
func NewWatchdog(manager *Manager, interval time.Duration, onExpired func(), log logging.Logger) *Watchdog {
	return &Watchdog{manager: manager, interval: interval, onExpired: onExpired, log: log}
}

// Run blocks until the session expires or ctx is cancelled. The owning page
// cancels ctx on teardown so no timer outlives it.
func (w *Watchdog) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			tctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			expired := w.manager.IsExpired(tctx)
			if expired {
				w.manager.Logout(tctx)
			}
			cancel()

			if expired {
				w.log.Info(ctx, "session expired, credentials cleared")
				if w.onExpired != nil {
					w.onExpired()
				}
				return
			}

		case <-ctx.Done():
			return
		}
	}
}
