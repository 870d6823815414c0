package client

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-lockr/internal/adapter"
	"github.com/MKhiriev/go-lockr/internal/cli"
	"github.com/MKhiriev/go-lockr/internal/config"
	"github.com/MKhiriev/go-lockr/internal/crypto"
	"github.com/MKhiriev/go-lockr/internal/logger"
	"github.com/MKhiriev/go-lockr/internal/service"
	"github.com/MKhiriev/go-lockr/internal/session"
	"github.com/MKhiriev/go-lockr/internal/store"
	"github.com/MKhiriev/go-lockr/models"
)

// clipboardClearAfter is how long a copied secret stays on the clipboard.
const clipboardClearAfter = 30 * time.Second

type App struct {
	db     *store.DB
	deps   cli.Deps
	logger *logger.Logger
}

// NewApp opens the local cache and wires the client services behind the
// command tree.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	db, err := store.NewConnectSQLite(ctx, cfg.Storage.LocalPath, log)
	if err != nil {
		return nil, fmt.Errorf("open local storage: %w", err)
	}
	if err = db.MigrateSQLite(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate local storage: %w", err)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	sess := session.New(crypto.NewPasscodeHasher(crypto.DefaultArgon2Params()))
	vault := crypto.NewFieldCipher(crypto.NewEnvelope(crypto.WithLogger(log)))
	services := service.NewClientServices(store.NewLocalStorages(db, log), serverAdapter, sess, vault, log)

	return &App{
		db: db,
		deps: cli.Deps{
			Auth:              services.AuthService,
			Vault:             services.VaultService,
			LockJob:           services.LockJob,
			Prompter:          cli.NewTerminalPrompter(),
			Clipboard:         cli.NewSystemClipboard(clipboardClearAfter),
			LockCheckInterval: cfg.Workers.LockCheckInterval,
			BuildInfo:         buildInfo,
			Now:               time.Now,
		},
		logger: log,
	}, nil
}

// Run executes one command line. In shell mode it blocks until the user
// exits or ctx is cancelled.
func (a *App) Run(ctx context.Context, args []string) error {
	a.logger.Debug().Strs("args", redactArgs(args)).Msg("running command")
	return cli.Execute(ctx, a.deps, args)
}

// Close releases the local cache.
func (a *App) Close() error {
	return a.db.Close()
}

// redactArgs hides flag values that may carry secrets before logging.
func redactArgs(args []string) []string {
	out := make([]string, len(args))
	hideNext := false
	for i, arg := range args {
		switch {
		case hideNext:
			out[i] = "***"
			hideNext = false
		case arg == "--password" || arg == "--secret" || arg == "--notes":
			out[i] = arg
			hideNext = true
		default:
			out[i] = arg
			for _, prefix := range []string{"--password=", "--secret=", "--notes="} {
				if len(arg) > len(prefix) && arg[:len(prefix)] == prefix {
					out[i] = prefix + "***"
				}
			}
		}
	}
	return out
}
