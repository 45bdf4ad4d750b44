package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"toranovel-reader/internal/domain"
	apperrors "toranovel-reader/pkg/errors"
)

// ChapterRepository implements domain.ChapterRepository: chapter rows live in
// the "chapters" table, chapter bodies in the content storage bucket.
type ChapterRepository struct {
	supabaseClient domain.SupabaseClient
	config         domain.Config
	logger         domain.Logger
	httpClient     *http.Client
}

func NewChapterRepository(supabaseClient domain.SupabaseClient, config domain.Config, logger domain.Logger) domain.ChapterRepository {
	return &ChapterRepository{
		supabaseClient: supabaseClient,
		config:         config,
		logger:         logger,
		httpClient:     &http.Client{Timeout: 30 * time.Second},
	}
}

func (r *ChapterRepository) GetByID(storyID, chapterID string, token string) (*domain.Chapter, error) {
	client, err := r.supabaseClient.GetClientWithToken(token)
	if err != nil {
		return nil, fmt.Errorf("failed to get client with token: %w", err)
	}
	if client == nil {
		return nil, fmt.Errorf("supabase client not initialized")
	}

	data, _, err := client.From("chapters").
		Select("*", "", false).
		Eq("id", chapterID).
		Eq("story_id", storyID).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get chapter: %w", err)
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(rows) == 0 {
		return nil, domain.ErrChapterNotFound
	}

	return mapToChapter(rows[0]), nil
}

// GetContent downloads the chapter body from the storage bucket. The request
// carries the caller's context so navigating away from a chapter abandons the
// fetch instead of painting stale content. A missing object is an empty body,
// not an error.
func (r *ChapterRepository) GetContent(ctx context.Context, chapter *domain.Chapter, token string) (string, error) {
	if chapter == nil || chapter.ContentPath == "" {
		return "", nil
	}

	url := fmt.Sprintf("%s/storage/v1/object/%s/%s",
		r.config.GetSupabaseURL(), r.config.GetContentBucket(), chapter.ContentPath)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build content request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("apikey", r.config.GetSupabaseKey())

	resp, err := r.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", apperrors.NewNetworkError("failed to fetch chapter content", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		r.logger.Warn("Chapter content object missing", "chapter_id", chapter.ID, "path", chapter.ContentPath)
		return "", nil
	}
	if resp.StatusCode >= 300 {
		return "", apperrors.NewNetworkError("content fetch failed", fmt.Errorf("status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read chapter content: %w", err)
	}
	return sanitizeText(string(body)), nil
}

func mapToChapter(data map[string]interface{}) *domain.Chapter {
	return &domain.Chapter{
		ID:          getString(data, "id"),
		StoryID:     getString(data, "story_id"),
		Title:       getString(data, "title"),
		ContentPath: getString(data, "content_path"),
		WordCount:   getInt(data, "word_count"),
		PublishedAt: getTime(data, "published_at"),
	}
}
