package service

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/MKhiriev/go-lockr/internal/config"
	"github.com/MKhiriev/go-lockr/internal/logger"
	"github.com/MKhiriev/go-lockr/internal/store"
	"github.com/MKhiriev/go-lockr/internal/utils"
	"github.com/MKhiriev/go-lockr/models"
)

const otpDigits = 6

// otpService keeps one pending code per email. The stored value is the
// HMAC-SHA256 of email and code under the password hash key. A code is single
// use and is burned after maxAttempts wrong guesses or once it expires.
type otpService struct {
	users  store.UserRepository
	codes  store.OTPRepository
	sender OTPSender

	hashKey     string
	ttl         time.Duration
	maxAttempts int

	now      func() time.Time
	generate func() (string, error)

	logger *logger.Logger
}

func NewOTPService(users store.UserRepository, codes store.OTPRepository, sender OTPSender, app config.App, cfg config.OTP, logger *logger.Logger) OTPService {
	return &otpService{
		users:       users,
		codes:       codes,
		sender:      sender,
		hashKey:     app.PasswordHashKey,
		ttl:         cfg.TTL,
		maxAttempts: cfg.MaxAttempts,
		now:         time.Now,
		generate:    generateOTP,
		logger:      logger,
	}
}

// SendOTP issues a code for an existing account. A new code replaces the
// pending one.
func (o *otpService) SendOTP(ctx context.Context, req models.OTPRequest) error {
	log := logger.FromContext(ctx)

	email := normalizeEmail(req.Email)
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidDataProvided)
	}
	if !req.Type.Valid() {
		return fmt.Errorf("%w: unknown code type %q", ErrInvalidDataProvided, req.Type)
	}

	if _, err := o.users.FindUserByEmail(ctx, email); err != nil {
		return fmt.Errorf("find user: %w", err)
	}

	code, err := o.generate()
	if err != nil {
		log.Err(err).Msg("failed to generate code")
		return fmt.Errorf("generate code: %w", err)
	}

	err = o.codes.SaveOTP(ctx, models.OTPCode{
		Email:     email,
		Purpose:   req.Type,
		CodeHash:  o.hash(email, code),
		ExpiresAt: o.now().Add(o.ttl),
	})
	if err != nil {
		return fmt.Errorf("save code: %w", err)
	}

	if err = o.sender.SendOTP(ctx, email, code); err != nil {
		log.Err(err).Str("purpose", string(req.Type)).Msg("failed to deliver code")
		return fmt.Errorf("%w: %w", ErrOTPDelivery, err)
	}

	log.Debug().Str("purpose", string(req.Type)).Msg("code sent")
	return nil
}

func (o *otpService) VerifyOTP(ctx context.Context, req models.OTPVerification) (models.User, error) {
	log := logger.FromContext(ctx)

	email := normalizeEmail(req.Email)
	if email == "" || !isOTP(req.OTP) || !req.Type.Valid() {
		return models.User{}, fmt.Errorf("%w: email, type and a %d digit code are required", ErrInvalidDataProvided, otpDigits)
	}

	pending, err := o.codes.GetOTP(ctx, email)
	if errors.Is(err, store.ErrOTPNotFound) {
		return models.User{}, ErrInvalidOTP
	}
	if err != nil {
		return models.User{}, fmt.Errorf("get code: %w", err)
	}

	if !o.now().Before(pending.ExpiresAt) || pending.Attempts >= o.maxAttempts {
		o.discard(ctx, email)
		return models.User{}, ErrInvalidOTP
	}

	match := hmac.Equal([]byte(pending.CodeHash), []byte(o.hash(email, req.OTP)))
	if !match || pending.Purpose != req.Type {
		attempts, err := o.codes.RecordOTPAttempt(ctx, email)
		if err != nil {
			log.Warn().Err(err).Msg("failed to count code attempt")
		}
		if attempts >= o.maxAttempts {
			o.discard(ctx, email)
		}
		log.Debug().Int("attempts", attempts).Msg("wrong code")
		return models.User{}, ErrInvalidOTP
	}

	o.discard(ctx, email)

	user, err := o.users.FindUserByEmail(ctx, email)
	if err != nil {
		return models.User{}, fmt.Errorf("find user: %w", err)
	}
	user.PasswordHash = ""
	return user, nil
}

func (o *otpService) discard(ctx context.Context, email string) {
	if err := o.codes.DeleteOTP(ctx, email); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("failed to delete code")
	}
}

func (o *otpService) hash(email, code string) string {
	return utils.HashString(email+":"+code, o.hashKey)
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func isOTP(code string) bool {
	if len(code) != otpDigits {
		return false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
