package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/rjawad/voiceproof-cli/internal/client/client"
	"github.com/rjawad/voiceproof-cli/internal/client/config"
	"github.com/rjawad/voiceproof-cli/internal/client/models"
	"github.com/rjawad/voiceproof-cli/internal/client/repositories/credentials"
	"github.com/rjawad/voiceproof-cli/internal/client/services"
	"github.com/rjawad/voiceproof-cli/internal/client/session"
	"github.com/rjawad/voiceproof-cli/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config  *config.Config
	auth    services.AuthService
	detect  services.DetectionService
	session *session.Manager
	api     *client.HTTPClient
	db      *sql.DB
	log     logging.Logger
	reader  *bufio.Reader

	user *models.UserProfile

	// stopWatchdog cancels the running expiry watchdog; nil when none runs.
	stopWatchdog context.CancelFunc
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.NewTextLogger(os.Stderr, slog.LevelWarn)

	db, err := client.InitDatabase(ctx, cfg.CredentialDBPath)
	if err != nil {
		log.Error(ctx, "error initializing credential database", "error", err)
		return nil, err
	}

	store := credentials.NewSQLiteRepository(db)
	sess := session.NewManager(store, log)
	api := client.NewHTTPClient(cfg.BaseURL, cfg.RequestTimeout, sess, log)

	return &App{
		config:  cfg,
		auth:    services.NewAuthService(api, store, sess),
		detect:  services.NewDetectionService(api),
		session: sess,
		api:     api,
		db:      db,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.close()
	a.restoreSession(ctx)
	a.Root(ctx)
}

func (a *App) close() {
	a.endSession()
	if a.api != nil {
		_ = a.api.Close()
	}
	if a.db != nil {
		_ = a.db.Close()
	}
}

// restoreSession picks up credentials persisted by an earlier run, the
// equivalent of loading a protected page with a live token.
func (a *App) restoreSession(ctx context.Context) {
	if !a.session.IsAuthenticated(ctx) {
		return
	}
	if u, ok := a.session.User(ctx); ok {
		a.user = &u
		fmt.Printf("Welcome back, %s (%s)\n", u.DisplayName(), a.session.FormatTimeRemaining(ctx))
		a.startWatchdog(ctx)
	}
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

// beginSession records the freshly authenticated user and starts the expiry
// watchdog for them.
func (a *App) beginSession(ctx context.Context, user models.UserProfile) {
	a.endSession()
	a.user = &user
	a.startWatchdog(ctx)
}

// endSession drops the in-memory user and releases the watchdog timer. The
// persisted credentials are cleared separately by whoever ends the session.
func (a *App) endSession() {
	if a.stopWatchdog != nil {
		a.stopWatchdog()
		a.stopWatchdog = nil
	}
	a.user = nil
}

func (a *App) startWatchdog(ctx context.Context) {
	wctx, cancel := context.WithCancel(ctx)
	a.stopWatchdog = cancel

	w := session.NewWatchdog(a.session, a.config.ExpiryCheckInterval, a.onSessionExpired, a.log)
	go w.Run(wctx)
}

// onSessionExpired runs on the watchdog goroutine once the expiry instant
// has passed. Credentials are already cleared at this point.
func (a *App) onSessionExpired() {
	a.user = nil
	fmt.Println("\nSession expired. Please login again.")
}
