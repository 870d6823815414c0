package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-lockr/internal/logger"
	"github.com/MKhiriev/go-lockr/internal/store"
	"github.com/MKhiriev/go-lockr/internal/validators"
	"github.com/MKhiriev/go-lockr/models"
)

type settingsService struct {
	userRepository store.UserRepository
	validator      validators.Validator
	logger         *logger.Logger
}

func NewSettingsService(userRepository store.UserRepository, logger *logger.Logger) SettingsService {
	return &settingsService{
		userRepository: userRepository,
		validator:      validators.NewVaultValidator(),
		logger:         logger,
	}
}

func (s *settingsService) Get(ctx context.Context, userID int64) (models.UserSettings, error) {
	settings, err := s.userRepository.GetSettings(ctx, userID)
	if err != nil {
		return models.UserSettings{}, fmt.Errorf("get settings: %w", err)
	}
	return settings, nil
}

// Update merges the non-nil fields of update into the stored settings.
func (s *settingsService) Update(ctx context.Context, userID int64, update models.SettingsUpdate) (models.UserSettings, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, update); err != nil {
		return models.UserSettings{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	current, err := s.userRepository.GetSettings(ctx, userID)
	if err != nil {
		return models.UserSettings{}, fmt.Errorf("get settings: %w", err)
	}

	updated, err := s.userRepository.UpdateSettings(ctx, userID, update.Apply(current))
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("failed to update settings")
		return models.UserSettings{}, fmt.Errorf("update settings: %w", err)
	}

	return updated, nil
}
