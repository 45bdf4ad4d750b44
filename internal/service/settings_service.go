package service

import (
	"time"

	"toranovel-reader/internal/domain"
)

type settingsService struct {
	repo   domain.SettingsRepository
	logger domain.Logger
}

func NewSettingsService(repo domain.SettingsRepository, logger domain.Logger) domain.SettingsService {
	return &settingsService{
		repo:   repo,
		logger: logger,
	}
}

// GetSettings retrieves the user's reader settings (defaults when unset).
func (s *settingsService) GetSettings(userID string, token string) (*domain.ReaderSettings, error) {
	return s.repo.Get(userID, token)
}

// UpdateSettings merges a partial update onto the current settings, validates
// the result, and persists it. Settings are only overwritten, never deleted.
func (s *settingsService) UpdateSettings(userID string, patch *domain.ReaderSettingsPatch, token string) (*domain.ReaderSettings, error) {
	current, err := s.repo.Get(userID, token)
	if err != nil {
		return nil, err
	}

	current.Apply(patch)
	current.UserID = userID
	current.UpdatedAt = time.Now()

	if err := current.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Upsert(current, token); err != nil {
		return nil, err
	}

	s.logger.Info("Reader settings updated", "user_id", userID)
	return current, nil
}
