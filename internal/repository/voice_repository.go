package repository

import (
	"encoding/json"
	"fmt"

	"toranovel-reader/internal/domain"

	"github.com/google/uuid"
)

// VoiceJobRepository implements the domain.VoiceJobRepository interface using
// Supabase. The external voice backend updates the row as generation runs;
// this repository only inserts pending jobs and reads status.
type VoiceJobRepository struct {
	supabaseClient domain.SupabaseClient
	logger         domain.Logger
}

func NewVoiceJobRepository(supabaseClient domain.SupabaseClient, logger domain.Logger) domain.VoiceJobRepository {
	return &VoiceJobRepository{
		supabaseClient: supabaseClient,
		logger:         logger,
	}
}

func (r *VoiceJobRepository) Create(job *domain.VoiceJob, token string) (*domain.VoiceJob, error) {
	client, err := r.supabaseClient.GetClientWithToken(token)
	if err != nil {
		return nil, fmt.Errorf("failed to get client with token: %w", err)
	}
	if client == nil {
		return nil, fmt.Errorf("supabase client not initialized")
	}

	row := map[string]interface{}{
		"id":         uuid.NewString(),
		"user_id":    job.UserID,
		"chapter_id": job.ChapterID,
		"status":     domain.VoiceStatusPending,
	}

	data, _, err := client.From("voice_jobs").
		Insert(row, false, "", "representation", "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to create voice job: %w", err)
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("failed to create voice job: %w", domain.ErrNotPersisted)
	}

	return mapToVoiceJob(rows[0]), nil
}

func (r *VoiceJobRepository) GetByID(userID, jobID string, token string) (*domain.VoiceJob, error) {
	client, err := r.supabaseClient.GetClientWithToken(token)
	if err != nil {
		return nil, fmt.Errorf("failed to get client with token: %w", err)
	}
	if client == nil {
		return nil, fmt.Errorf("supabase client not initialized")
	}

	data, _, err := client.From("voice_jobs").
		Select("*", "", false).
		Eq("id", jobID).
		Eq("user_id", userID).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get voice job: %w", err)
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(rows) == 0 {
		return nil, domain.ErrVoiceJobNotFound
	}

	return mapToVoiceJob(rows[0]), nil
}

func mapToVoiceJob(data map[string]interface{}) *domain.VoiceJob {
	return &domain.VoiceJob{
		ID:        getString(data, "id"),
		UserID:    getString(data, "user_id"),
		ChapterID: getString(data, "chapter_id"),
		Status:    getString(data, "status"),
		AudioURL:  getStringPtr(data, "audio_url"),
		Error:     getStringPtr(data, "error"),
		CreatedAt: getTime(data, "created_at"),
		UpdatedAt: getTime(data, "updated_at"),
	}
}
