package repository

import (
	"encoding/json"
	"fmt"

	"toranovel-reader/internal/domain"

	"github.com/google/uuid"
	"github.com/supabase-community/postgrest-go"
)

// HighlightRepository implements the domain.HighlightRepository interface using Supabase.
type HighlightRepository struct {
	supabaseClient domain.SupabaseClient
	logger         domain.Logger
}

func NewHighlightRepository(supabaseClient domain.SupabaseClient, logger domain.Logger) domain.HighlightRepository {
	return &HighlightRepository{
		supabaseClient: supabaseClient,
		logger:         logger,
	}
}

func (r *HighlightRepository) Create(highlight *domain.Highlight, token string) (*domain.Highlight, error) {
	client, err := r.supabaseClient.GetClientWithToken(token)
	if err != nil {
		return nil, fmt.Errorf("failed to get client with token: %w", err)
	}
	if client == nil {
		return nil, fmt.Errorf("supabase client not initialized")
	}

	row := map[string]interface{}{
		"id":         uuid.NewString(),
		"user_id":    highlight.UserID,
		"chapter_id": highlight.ChapterID,
		"text":       sanitizeText(highlight.Text),
		"color":      highlight.Color,
	}
	if highlight.Note != nil {
		row["note"] = sanitizeText(*highlight.Note)
	}

	// Request "representation" so PostgREST returns the inserted row; what the
	// caller gets back is exactly what was durably stored.
	data, _, err := client.From("highlights").
		Insert(row, false, "", "representation", "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to create highlight: %w", err)
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("failed to create highlight: %w", domain.ErrNotPersisted)
	}

	return mapToHighlight(rows[0]), nil
}

func (r *HighlightRepository) ListByChapter(userID, chapterID string, token string) ([]*domain.Highlight, error) {
	client, err := r.supabaseClient.GetClientWithToken(token)
	if err != nil {
		return nil, fmt.Errorf("failed to get client with token: %w", err)
	}
	if client == nil {
		return nil, fmt.Errorf("supabase client not initialized")
	}

	q := client.From("highlights").
		Select("*", "", false).
		Eq("user_id", userID).
		Order("created_at", &postgrest.OrderOpts{Ascending: true})

	if chapterID != "" {
		q = q.Eq("chapter_id", chapterID)
	}

	data, _, err := q.Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list highlights: %w", err)
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	out := make([]*domain.Highlight, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapToHighlight(row))
	}
	return out, nil
}

func (r *HighlightRepository) Update(userID, highlightID string, color *string, note *string, token string) (*domain.Highlight, error) {
	client, err := r.supabaseClient.GetClientWithToken(token)
	if err != nil {
		return nil, fmt.Errorf("failed to get client with token: %w", err)
	}
	if client == nil {
		return nil, fmt.Errorf("supabase client not initialized")
	}

	row := map[string]interface{}{}
	if color != nil {
		row["color"] = *color
	}
	if note != nil {
		row["note"] = sanitizeText(*note)
	}
	if len(row) == 0 {
		return nil, fmt.Errorf("nothing to update")
	}

	data, _, err := client.From("highlights").
		Update(row, "representation", "").
		Eq("id", highlightID).
		Eq("user_id", userID).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to update highlight: %w", err)
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(rows) == 0 {
		return nil, domain.ErrHighlightNotFound
	}
	return mapToHighlight(rows[0]), nil
}

func (r *HighlightRepository) Delete(userID, highlightID string, token string) error {
	client, err := r.supabaseClient.GetClientWithToken(token)
	if err != nil {
		return fmt.Errorf("failed to get client with token: %w", err)
	}
	if client == nil {
		return fmt.Errorf("supabase client not initialized")
	}

	_, _, err = client.From("highlights").
		Delete("", "").
		Eq("id", highlightID).
		Eq("user_id", userID).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to delete highlight: %w", err)
	}
	return nil
}

func mapToHighlight(data map[string]interface{}) *domain.Highlight {
	h := &domain.Highlight{
		ID:        getString(data, "id"),
		UserID:    getString(data, "user_id"),
		ChapterID: getString(data, "chapter_id"),
		Text:      getString(data, "text"),
		Color:     getString(data, "color"),
		Note:      getStringPtr(data, "note"),
	}
	h.CreatedAt = getTime(data, "created_at")
	return h
}
