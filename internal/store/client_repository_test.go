package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-lockr/internal/logger"
	"github.com/MKhiriev/go-lockr/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocalDB(t *testing.T) *DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "cache", "lockr.db")
	db, err := NewConnectSQLite(context.Background(), path, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.MigrateSQLite())
	return db
}

func TestLocalSessionRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewLocalStorages(newTestLocalDB(t), logger.Nop()).Sessions

	_, err := repo.LoadSession(ctx)
	require.ErrorIs(t, err, ErrLocalSessionNotFound)

	saved := models.LocalSession{UserID: 4, Email: "alice@example.com", Token: "tok-1", SavedAt: time.Now().Truncate(time.Second)}
	require.NoError(t, repo.SaveSession(ctx, saved))

	got, err := repo.LoadSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved.UserID, got.UserID)
	assert.Equal(t, saved.Token, got.Token)
	assert.True(t, saved.SavedAt.Equal(got.SavedAt), "saved_at %v != %v", saved.SavedAt, got.SavedAt)

	// a second login replaces the single row
	require.NoError(t, repo.SaveSession(ctx, models.LocalSession{UserID: 5, Email: "bob@example.com", Token: "tok-2", SavedAt: time.Now()}))
	got, err = repo.LoadSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.UserID)

	require.NoError(t, repo.ClearSession(ctx))
	require.NoError(t, repo.ClearSession(ctx))
	_, err = repo.LoadSession(ctx)
	assert.ErrorIs(t, err, ErrLocalSessionNotFound)
}

func TestLocalSettingsRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewLocalStorages(newTestLocalDB(t), logger.Nop()).Settings

	_, err := repo.LoadSettings(ctx, 1)
	require.ErrorIs(t, err, ErrLocalSettingsNotFound)

	want := models.UserSettings{BiometricEnabled: true, AutoLockTimer: 3, HasCompletedOnboarding: true, MasterPasscodeHash: "$argon2id$v=19$m=1024,t=1,p=1$c2FsdA$aGFzaA"}
	require.NoError(t, repo.SaveSettings(ctx, 1, want))

	got, err := repo.LoadSettings(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	want.AutoLockTimer = 0
	require.NoError(t, repo.SaveSettings(ctx, 1, want))
	got, err = repo.LoadSettings(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, got.AutoLockTimer)

	_, err = repo.LoadSettings(ctx, 2)
	assert.ErrorIs(t, err, ErrLocalSettingsNotFound)
}
