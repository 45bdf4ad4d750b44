package service

import (
	"fmt"
	"time"

	"toranovel-reader/internal/domain"
)

type HighlightService struct {
	repo   domain.HighlightRepository
	logger domain.Logger
}

func NewHighlightService(repo domain.HighlightRepository, logger domain.Logger) domain.HighlightService {
	return &HighlightService{
		repo:   repo,
		logger: logger,
	}
}

// CreateHighlight validates and persists a new highlight. The returned value
// is the stored row read back from the insert, so a highlight is never
// reported as created unless it was durably written.
func (s *HighlightService) CreateHighlight(userID string, highlight *domain.Highlight, token string) (*domain.Highlight, error) {
	if highlight == nil {
		return nil, fmt.Errorf("highlight is required")
	}
	highlight.UserID = userID
	if highlight.ChapterID == "" {
		return nil, &domain.ValidationError{Field: "chapter_id", Message: "is required"}
	}
	if highlight.Text == "" {
		return nil, &domain.ValidationError{Field: "text", Message: "is required"}
	}
	if highlight.Color == "" {
		highlight.Color = domain.DefaultHighlightColor
	}
	if !domain.HighlightColors[highlight.Color] {
		return nil, &domain.ValidationError{Field: "color", Message: "unknown color " + highlight.Color}
	}
	// created_at is assigned by the DB; keep a local value for logging if missing.
	if highlight.CreatedAt.IsZero() {
		highlight.CreatedAt = time.Now()
	}

	created, err := s.repo.Create(highlight, token)
	if err != nil {
		return nil, err
	}
	if created == nil || created.ID == "" {
		return nil, domain.ErrNotPersisted
	}
	s.logger.Info("Highlight created", "user_id", userID, "chapter_id", highlight.ChapterID, "highlight_id", created.ID)
	return created, nil
}

func (s *HighlightService) ListHighlights(userID, chapterID string, token string) ([]*domain.Highlight, error) {
	return s.repo.ListByChapter(userID, chapterID, token)
}

func (s *HighlightService) UpdateHighlight(userID, highlightID string, color *string, note *string, token string) (*domain.Highlight, error) {
	if highlightID == "" {
		return nil, &domain.ValidationError{Field: "highlight_id", Message: "is required"}
	}
	if color == nil && note == nil {
		return nil, &domain.ValidationError{Message: "nothing to update"}
	}
	if color != nil && !domain.HighlightColors[*color] {
		return nil, &domain.ValidationError{Field: "color", Message: "unknown color " + *color}
	}
	return s.repo.Update(userID, highlightID, color, note, token)
}

func (s *HighlightService) DeleteHighlight(userID, highlightID string, token string) error {
	if highlightID == "" {
		return &domain.ValidationError{Field: "highlight_id", Message: "is required"}
	}
	return s.repo.Delete(userID, highlightID, token)
}
