package repository

import (
	"encoding/json"
	"fmt"

	"toranovel-reader/internal/domain"
)

// SettingsRepository implements the domain.SettingsRepository interface using Supabase.
type SettingsRepository struct {
	supabaseClient domain.SupabaseClient
	logger         domain.Logger
}

func NewSettingsRepository(supabaseClient domain.SupabaseClient, logger domain.Logger) domain.SettingsRepository {
	return &SettingsRepository{
		supabaseClient: supabaseClient,
		logger:         logger,
	}
}

// Get retrieves the user's reader settings, falling back to defaults when no
// row exists yet.
func (r *SettingsRepository) Get(userID string, token string) (*domain.ReaderSettings, error) {
	client, err := r.supabaseClient.GetClientWithToken(token)
	if err != nil {
		return nil, fmt.Errorf("failed to get client with token: %w", err)
	}
	if client == nil {
		return nil, fmt.Errorf("supabase client not initialized")
	}

	data, _, err := client.From("reader_settings").
		Select("*", "", false).
		Eq("user_id", userID).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get reader settings: %w", err)
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(rows) == 0 {
		return domain.DefaultReaderSettings(userID), nil
	}

	return mapToSettings(rows[0]), nil
}

// Upsert inserts or updates the user's reader settings row.
func (r *SettingsRepository) Upsert(settings *domain.ReaderSettings, token string) error {
	client, err := r.supabaseClient.GetClientWithToken(token)
	if err != nil {
		return fmt.Errorf("failed to get client with token: %w", err)
	}
	if client == nil {
		return fmt.Errorf("supabase client not initialized")
	}

	row := map[string]interface{}{
		"user_id":      settings.UserID,
		"font_size":    settings.FontSize,
		"line_height":  settings.LineHeight,
		"font_family":  settings.FontFamily,
		"reading_mode": settings.ReadingMode,
		"theme":        settings.Theme,
		"page_size":    settings.PageSize,
		"updated_at":   settings.UpdatedAt,
	}

	_, _, err = client.From("reader_settings").
		Upsert(row, "user_id", "", "").
		Execute()
	if err != nil {
		return fmt.Errorf("failed to upsert reader settings: %w", err)
	}

	r.logger.Info("Reader settings updated", "user_id", settings.UserID)
	return nil
}

func mapToSettings(data map[string]interface{}) *domain.ReaderSettings {
	return &domain.ReaderSettings{
		UserID:      getString(data, "user_id"),
		FontSize:    getInt(data, "font_size"),
		LineHeight:  getFloat64(data, "line_height"),
		FontFamily:  getString(data, "font_family"),
		ReadingMode: getString(data, "reading_mode"),
		Theme:       getString(data, "theme"),
		PageSize:    getInt(data, "page_size"),
		UpdatedAt:   getTime(data, "updated_at"),
	}
}
