package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-lockr/internal/logger"
	"github.com/MKhiriev/go-lockr/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var otpColumns = []string{"email", "purpose", "code_hash", "expires_at", "attempts"}

func TestOTPRepository_SaveOTP_Upserts(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOTPRepository(db, logger.Nop())
	expires := time.Now().Add(5 * time.Minute)

	mock.ExpectExec("INSERT INTO otp_codes \\(email,purpose,code_hash,expires_at,attempts\\) VALUES (.+) ON CONFLICT \\(email\\) DO UPDATE SET").
		WithArgs("alice@example.com", "reset-passcode", "abc123", expires, 0).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SaveOTP(context.Background(), models.OTPCode{
		Email:     "alice@example.com",
		Purpose:   models.OTPResetPasscode,
		CodeHash:  "abc123",
		ExpiresAt: expires,
		Attempts:  3,
	})

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOTPRepository_SaveOTP_Error(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOTPRepository(db, logger.Nop())

	mock.ExpectExec("INSERT INTO otp_codes").WillReturnError(errors.New("disk full"))

	err := repo.SaveOTP(context.Background(), models.OTPCode{Email: "a@b.c"})
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestOTPRepository_GetOTP(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOTPRepository(db, logger.Nop())
	expires := time.Now().Add(time.Minute)

	mock.ExpectQuery("SELECT email, purpose, code_hash, expires_at, attempts FROM otp_codes WHERE email = \\$1").
		WithArgs("alice@example.com").
		WillReturnRows(sqlmock.NewRows(otpColumns).AddRow("alice@example.com", "login", "h", expires, 2))
	mock.ExpectQuery("SELECT (.+) FROM otp_codes").
		WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows(otpColumns))

	got, err := repo.GetOTP(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.OTPLogin, got.Purpose)
	assert.Equal(t, "h", got.CodeHash)
	assert.Equal(t, 2, got.Attempts)
	assert.Equal(t, expires, got.ExpiresAt)

	_, err = repo.GetOTP(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrOTPNotFound)
}

func TestOTPRepository_RecordOTPAttempt(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOTPRepository(db, logger.Nop())

	mock.ExpectQuery("UPDATE otp_codes SET attempts = attempts \\+ 1 WHERE email = \\$1 RETURNING attempts").
		WithArgs("alice@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"attempts"}).AddRow(3))
	mock.ExpectQuery("UPDATE otp_codes").
		WithArgs("gone@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"attempts"}))

	attempts, err := repo.RecordOTPAttempt(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, 3, attempts)

	_, err = repo.RecordOTPAttempt(context.Background(), "gone@example.com")
	assert.ErrorIs(t, err, ErrOTPNotFound)
}

func TestOTPRepository_DeleteOTP(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOTPRepository(db, logger.Nop())

	mock.ExpectExec("DELETE FROM otp_codes WHERE email = \\$1").
		WithArgs("alice@example.com").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteOTP(context.Background(), "alice@example.com"))
	require.NoError(t, mock.ExpectationsWereMet())
}
