package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-lockr/internal/service"
	"github.com/MKhiriev/go-lockr/internal/session"
	"github.com/MKhiriev/go-lockr/internal/store"
	"github.com/MKhiriev/go-lockr/models"
	"github.com/spf13/cobra"
)

// annotationSession marks commands that need a logged-in, refreshed vault.
const annotationSession = "lockr/session"

// Deps are the collaborators of the command tree.
type Deps struct {
	Auth      service.ClientAuthService
	Vault     service.ClientVaultService
	LockJob   service.LockJob
	Prompter  Prompter
	Clipboard Clipboard

	// LockCheckInterval is the auto-lock tick used by the shell.
	LockCheckInterval time.Duration
	BuildInfo         models.AppBuildInfo
	Now               func() time.Time
}

type cli struct {
	Deps

	// shell is set while the interactive loop runs: the session stays
	// unlocked between commands.
	shell bool
}

// NewRootCommand builds the lockr command tree.
func NewRootCommand(d Deps) *cobra.Command {
	if d.Now == nil {
		d.Now = time.Now
	}
	return (&cli{Deps: d}).root()
}

// Execute runs args against a fresh command tree and prints a readable
// error to stderr.
func Execute(ctx context.Context, d Deps, args []string) error {
	cmd := NewRootCommand(d)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), errorStyle.Render("Error: "+describe(err)))
	}
	return err
}

func (c *cli) root() *cobra.Command {
	root := &cobra.Command{
		Use:           "lockr",
		Short:         "A zero-knowledge password vault",
		Version:       c.BuildInfo.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if _, ok := cmd.Annotations[annotationSession]; !ok || c.shell {
				return nil
			}
			return c.restore(cmd.Context())
		},
	}
	root.SetVersionTemplate(c.BuildInfo.String())

	root.AddCommand(
		c.registerCommand(),
		c.loginCommand(),
		c.logoutCommand(),
		c.passcodeCommand(),
		c.entriesCommand(),
		c.categoriesCommand(),
		c.healthCommand(),
		c.generateCommand(),
		c.settingsCommand(),
	)
	if c.shell {
		root.AddCommand(c.lockCommand(), c.unlockCommand())
	} else {
		root.AddCommand(c.shellCommand())
	}
	return root
}

// restore loads the cached login and the remote vault.
func (c *cli) restore(ctx context.Context) error {
	if _, err := c.Auth.RestoreSession(ctx); err != nil {
		return err
	}
	return c.Vault.Refresh(ctx)
}

// withUnlocked runs fn with an unlocked vault. One-shot commands lock again
// when fn returns.
func (c *cli) withUnlocked(ctx context.Context, fn func() error) error {
	if c.Vault.Locked() {
		passcode, err := c.Prompter.Password("Passcode: ")
		if err != nil {
			return err
		}
		if err = c.Vault.Unlock(ctx, passcode); err != nil {
			return err
		}
		if !c.shell {
			defer c.Vault.Lock()
		}
	}
	return fn()
}

func sessionRequired(cmd *cobra.Command) *cobra.Command {
	if cmd.Annotations == nil {
		cmd.Annotations = map[string]string{}
	}
	cmd.Annotations[annotationSession] = "true"
	return cmd
}

// describe turns known errors into a hint the user can act on.
func describe(err error) string {
	switch {
	case errors.Is(err, store.ErrLocalSessionNotFound), errors.Is(err, service.ErrNotAuthenticated):
		return "not logged in, run `lockr login` first"
	case errors.Is(err, service.ErrSessionExpired), errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
		return "session expired, run `lockr login` again"
	case errors.Is(err, session.ErrNoPasscodeSet):
		return "no passcode yet, run `lockr passcode create` first"
	case errors.Is(err, session.ErrWrongPasscode):
		return "wrong passcode"
	case errors.Is(err, session.ErrInvalidPasscode):
		return fmt.Sprintf("passcode must be exactly %d digits", session.PasscodeLength)
	case errors.Is(err, session.ErrLocked):
		return "vault is locked"
	case errors.Is(err, service.ErrInvalidOTP):
		return "invalid or expired code, run `lockr passcode reset` again"
	case errors.Is(err, service.ErrWrongPassword):
		return "invalid email or password"
	case errors.Is(err, store.ErrLoginAlreadyExists):
		return "an account with this email already exists"
	case errors.Is(err, service.ErrServerUnavailable):
		return "server is unavailable, try again later"
	}
	return err.Error()
}

