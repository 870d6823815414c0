package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-lockr/internal/config"
	"github.com/MKhiriev/go-lockr/internal/logger"
	"github.com/MKhiriev/go-lockr/internal/utils"
)

const (
	otpMailSubject = "Your Lockr Verification Code"
	otpMailBody    = `<p>Your Lockr verification code is</p><h1 style="font-family: monospace; letter-spacing: 8px;">%s</h1><p>This code expires in %d minutes.</p>`
)

// NewOTPSender posts codes to the configured mail API, or writes them to the
// server log when none is configured.
func NewOTPSender(cfg config.OTP, timeout time.Duration, logger *logger.Logger) OTPSender {
	if cfg.MailAPIURL == "" {
		logger.Warn().Msg("no mail API configured, one-time codes go to the server log")
		return &logOTPSender{logger: logger}
	}
	return &mailOTPSender{
		client: utils.NewHTTPClient("", timeout),
		url:    cfg.MailAPIURL,
		ttl:    cfg.TTL,
	}
}

type mailMessage struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

type mailOTPSender struct {
	client *utils.HTTPClient
	url    string
	ttl    time.Duration
}

func (m *mailOTPSender) SendOTP(ctx context.Context, email, code string) error {
	resp, err := m.client.R().
		SetContext(ctx).
		SetBody(mailMessage{
			To:      email,
			Subject: otpMailSubject,
			HTML:    fmt.Sprintf(otpMailBody, code, int(m.ttl.Minutes())),
		}).
		Post(m.url)
	if err != nil {
		return fmt.Errorf("mail API request: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("mail API answered %d: %s", resp.StatusCode(), strings.TrimSpace(resp.String()))
	}
	return nil
}

// logOTPSender is for local setups without a mail API.
type logOTPSender struct {
	logger *logger.Logger
}

func (l *logOTPSender) SendOTP(_ context.Context, email, code string) error {
	l.logger.Info().Str("email", email).Str("code", code).Msg("one-time code issued")
	return nil
}
