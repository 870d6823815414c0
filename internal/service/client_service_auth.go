package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-lockr/internal/adapter"
	"github.com/MKhiriev/go-lockr/internal/logger"
	"github.com/MKhiriev/go-lockr/internal/session"
	"github.com/MKhiriev/go-lockr/internal/store"
	"github.com/MKhiriev/go-lockr/internal/utils"
	"github.com/MKhiriev/go-lockr/models"
)

type clientAuthService struct {
	local    *store.LocalStorages
	adapter  adapter.ServerAdapter
	session  *session.Session
	identity *Identity
	now      func() time.Time
	logger   *logger.Logger
}

func NewClientAuthService(local *store.LocalStorages, serverAdapter adapter.ServerAdapter, sess *session.Session, identity *Identity, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		local:    local,
		adapter:  serverAdapter,
		session:  sess,
		identity: identity,
		now:      time.Now,
		logger:   logger,
	}
}

func (a *clientAuthService) Register(ctx context.Context, user models.User) (models.User, error) {
	user.Email = normalizeEmail(user.Email)
	if user.Email == "" || user.Password == "" || user.Username == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	created, err := a.adapter.Register(ctx, user)
	if err != nil {
		return models.User{}, fmt.Errorf("register: %w", mapAdapterError(err))
	}
	if err = a.persist(ctx, created); err != nil {
		return models.User{}, err
	}
	return created, nil
}

func (a *clientAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	user.Email = normalizeEmail(user.Email)
	if user.Email == "" || user.Password == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	// a vault unlocked for another account must not survive the switch
	a.session.Lock()

	found, err := a.adapter.Login(ctx, user)
	if err != nil {
		return models.User{}, fmt.Errorf("login: %w", mapAdapterError(err))
	}
	if err = a.persist(ctx, found); err != nil {
		return models.User{}, err
	}
	return found, nil
}

// persist caches the token and settings so later runs can restore the
// session and unlock offline.
func (a *clientAuthService) persist(ctx context.Context, user models.User) error {
	sess := models.LocalSession{
		UserID:  user.UserID,
		Email:   user.Email,
		Token:   a.adapter.Token(),
		SavedAt: a.now(),
	}
	if err := a.local.Sessions.SaveSession(ctx, sess); err != nil {
		return fmt.Errorf("save local session: %w", err)
	}
	if err := a.local.Settings.SaveSettings(ctx, user.UserID, user.Settings); err != nil {
		return fmt.Errorf("save local settings: %w", err)
	}

	a.identity.Set(user.UserID, user.Email)
	a.session.SetAutoLock(time.Duration(user.Settings.AutoLockTimer) * time.Minute)

	a.logger.Debug().Int64("user_id", user.UserID).Msg("local session saved")
	return nil
}

func (a *clientAuthService) RestoreSession(ctx context.Context) (models.LocalSession, error) {
	sess, err := a.local.Sessions.LoadSession(ctx)
	if err != nil {
		return models.LocalSession{}, err
	}

	token, err := utils.ParseUnverifiedToken(sess.Token)
	if err != nil || utils.TokenExpired(token, a.now()) {
		if clearErr := a.local.Sessions.ClearSession(ctx); clearErr != nil {
			a.logger.Warn().Err(clearErr).Msg("failed to clear expired session")
		}
		return models.LocalSession{}, ErrSessionExpired
	}

	a.adapter.SetToken(sess.Token)
	a.identity.Set(sess.UserID, sess.Email)

	if settings, err := a.local.Settings.LoadSettings(ctx, sess.UserID); err == nil {
		a.session.SetAutoLock(time.Duration(settings.AutoLockTimer) * time.Minute)
	} else if !errors.Is(err, store.ErrLocalSettingsNotFound) {
		a.logger.Warn().Err(err).Msg("failed to load cached settings")
	}

	return sess, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	a.session.Lock()
	a.adapter.SetToken("")
	a.identity.Clear()

	if err := a.local.Sessions.ClearSession(ctx); err != nil {
		return fmt.Errorf("clear local session: %w", err)
	}
	return nil
}
