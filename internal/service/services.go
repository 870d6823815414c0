package service

import (
	"fmt"

	"github.com/MKhiriev/go-lockr/internal/config"
	"github.com/MKhiriev/go-lockr/internal/crypto"
	"github.com/MKhiriev/go-lockr/internal/logger"
	"github.com/MKhiriev/go-lockr/internal/store"
)

// Services bundles the server-side business services used by the handlers.
type Services struct {
	AuthService     AuthService
	OTPService      OTPService
	SettingsService SettingsService
	CategoryService CategoryService
	EntryService    EntryService
	AppInfoService  AppInfoService
}

// NewServices wires the services on top of repos. The transport cipher is
// built from cfg.App.TransportKey.
func NewServices(repos *store.Repositories, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	transport, err := crypto.NewTransportCipher(cfg.App.TransportKey, logger)
	if err != nil {
		return nil, fmt.Errorf("transport cipher: %w", err)
	}

	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	entries := NewEntryValidationService(logger).
		Wrap(NewEntryService(repos.EntryRepository, repos.CategoryRepository, transport, logger))
	categories := NewCategoryValidationService(logger).
		Wrap(NewCategoryService(repos.CategoryRepository, logger))

	sender := NewOTPSender(cfg.OTP, cfg.Server.RequestTimeout, logger)

	return &Services{
		AuthService:     NewAuthService(repos.UserRepository, cfg.App, logger),
		OTPService:      NewOTPService(repos.UserRepository, repos.OTPRepository, sender, cfg.App, cfg.OTP, logger),
		SettingsService: NewSettingsService(repos.UserRepository, logger),
		CategoryService: categories,
		EntryService:    entries,
		AppInfoService:  appInfo,
	}, nil
}
