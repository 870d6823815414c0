package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-lockr/internal/adapter"
	"github.com/MKhiriev/go-lockr/internal/crypto"
	"github.com/MKhiriev/go-lockr/internal/logger"
	"github.com/MKhiriev/go-lockr/internal/mock"
	"github.com/MKhiriev/go-lockr/internal/session"
	"github.com/MKhiriev/go-lockr/internal/store"
	"github.com/MKhiriev/go-lockr/internal/utils"
	"github.com/MKhiriev/go-lockr/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testArgon2Params = crypto.Argon2Params{Time: 1, Memory: 1024, Threads: 1, KeyLen: 32}

type authFixture struct {
	svc      *clientAuthService
	adapter  *mock.MockServerAdapter
	sessions *mock.MockLocalSessionRepository
	settings *mock.MockLocalSettingsRepository
	session  *session.Session
	identity *Identity
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &authFixture{
		adapter:  mock.NewMockServerAdapter(ctrl),
		sessions: mock.NewMockLocalSessionRepository(ctrl),
		settings: mock.NewMockLocalSettingsRepository(ctrl),
		session:  session.New(crypto.NewPasscodeHasher(testArgon2Params)),
		identity: &Identity{},
	}
	local := &store.LocalStorages{Sessions: f.sessions, Settings: f.settings}
	f.svc = NewClientAuthService(local, f.adapter, f.session, f.identity, logger.Nop()).(*clientAuthService)
	f.svc.now = func() time.Time { return fixedNow }
	return f
}

func TestClientAuth_Register_PersistsSession(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	created := models.User{UserID: 3, Email: "alice@example.com", Username: "alice", Settings: models.DefaultUserSettings()}

	f.adapter.EXPECT().Register(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "alice@example.com", u.Email, "email is normalised before sending")
			return created, nil
		})
	f.adapter.EXPECT().Token().Return("tok")
	f.sessions.EXPECT().SaveSession(ctx, models.LocalSession{
		UserID: 3, Email: "alice@example.com", Token: "tok", SavedAt: fixedNow,
	}).Return(nil)
	f.settings.EXPECT().SaveSettings(ctx, int64(3), created.Settings).Return(nil)

	got, err := f.svc.Register(ctx, models.User{Email: " Alice@Example.com ", Username: "alice", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, created, got)

	userID, err := f.identity.UserID()
	require.NoError(t, err)
	assert.Equal(t, int64(3), userID)
	assert.Equal(t, 5*time.Minute, f.session.AutoLock())
}

func TestClientAuth_Register_Validation(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.svc.Register(context.Background(), models.User{Email: "a@b.c", Password: "pw"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestClientAuth_Register_Conflict(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	f.adapter.EXPECT().Register(ctx, gomock.Any()).
		Return(models.User{}, wrapAdapter(adapter.ErrConflict, store.ErrLoginAlreadyExists.Error()))

	_, err := f.svc.Register(ctx, models.User{Email: "a@b.c", Username: "a", Password: "pw"})
	assert.ErrorIs(t, err, store.ErrLoginAlreadyExists)
}

func TestClientAuth_Login_WrongPassword(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	f.adapter.EXPECT().Login(ctx, gomock.Any()).
		Return(models.User{}, wrapAdapter(adapter.ErrUnauthorized, "invalid email/password"))

	_, err := f.svc.Login(ctx, models.User{Email: "a@b.c", Password: "bad"})
	assert.ErrorIs(t, err, ErrWrongPassword)
	_, err = f.identity.UserID()
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestClientAuth_Login_LocksPreviousVault(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.session.CreatePasscode("123456")
	require.NoError(t, err)
	require.Equal(t, session.Unlocked, f.session.State())

	user := models.User{UserID: 9, Email: "bob@example.com", Settings: models.UserSettings{AutoLockTimer: 1}}
	f.adapter.EXPECT().Login(ctx, gomock.Any()).Return(user, nil)
	f.adapter.EXPECT().Token().Return("tok")
	f.sessions.EXPECT().SaveSession(ctx, gomock.Any()).Return(nil)
	f.settings.EXPECT().SaveSettings(ctx, int64(9), user.Settings).Return(nil)

	_, err = f.svc.Login(ctx, models.User{Email: "bob@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, session.Locked, f.session.State())
	assert.Equal(t, time.Minute, f.session.AutoLock())
}

func TestClientAuth_RestoreSession(t *testing.T) {
	valid, err := utils.GenerateJWTToken("lockr", 4, time.Hour, "key")
	require.NoError(t, err)
	expired, err := utils.GenerateJWTToken("lockr", 4, -time.Hour, "key")
	require.NoError(t, err)

	t.Run("valid token is handed to the adapter", func(t *testing.T) {
		f := newAuthFixture(t)
		ctx := context.Background()
		f.svc.now = time.Now

		cached := models.LocalSession{UserID: 4, Email: "c@d.e", Token: valid.SignedString}
		f.sessions.EXPECT().LoadSession(ctx).Return(cached, nil)
		f.adapter.EXPECT().SetToken(valid.SignedString)
		f.settings.EXPECT().LoadSettings(ctx, int64(4)).Return(models.UserSettings{AutoLockTimer: 2}, nil)

		got, err := f.svc.RestoreSession(ctx)
		require.NoError(t, err)
		assert.Equal(t, cached, got)
		assert.Equal(t, "c@d.e", f.identity.Email())
		assert.Equal(t, 2*time.Minute, f.session.AutoLock())
	})

	t.Run("expired token clears the cache", func(t *testing.T) {
		f := newAuthFixture(t)
		ctx := context.Background()
		f.svc.now = time.Now

		f.sessions.EXPECT().LoadSession(ctx).Return(models.LocalSession{UserID: 4, Token: expired.SignedString}, nil)
		f.sessions.EXPECT().ClearSession(ctx).Return(nil)

		_, err := f.svc.RestoreSession(ctx)
		assert.ErrorIs(t, err, ErrSessionExpired)
	})

	t.Run("nobody logged in", func(t *testing.T) {
		f := newAuthFixture(t)
		ctx := context.Background()

		f.sessions.EXPECT().LoadSession(ctx).Return(models.LocalSession{}, store.ErrLocalSessionNotFound)

		_, err := f.svc.RestoreSession(ctx)
		assert.ErrorIs(t, err, store.ErrLocalSessionNotFound)
	})
}

func TestClientAuth_Logout(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	f.identity.Set(1, "a@b.c")
	_, err := f.session.CreatePasscode("123456")
	require.NoError(t, err)

	f.adapter.EXPECT().SetToken("")
	f.sessions.EXPECT().ClearSession(ctx).Return(nil)

	require.NoError(t, f.svc.Logout(ctx))
	assert.Equal(t, session.Locked, f.session.State())
	assert.Empty(t, f.session.Passcode())
	_, err = f.identity.UserID()
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}
