package domain

import (
	"context"
	"time"
)

// Chapter represents a single installment of a story. The body text lives in
// the content storage bucket and is fetched separately from the row.
type Chapter struct {
	ID          string    `json:"id"`
	StoryID     string    `json:"story_id"`
	Title       string    `json:"title"`
	ContentPath string    `json:"content_path"`
	WordCount   int       `json:"word_count"`
	PublishedAt time.Time `json:"published_at"`
}

// RenderedPage is one book-mode page of rendered chapter HTML.
type RenderedPage struct {
	Number int    `json:"number"`
	HTML   string `json:"html"`
}

// RenderedChapter is the output of the rendering pipeline: classified,
// transformed, highlight-annotated chapter content ready to paint.
type RenderedChapter struct {
	ChapterID  string         `json:"chapter_id"`
	StoryID    string         `json:"story_id"`
	Title      string         `json:"title"`
	Format     string         `json:"format"`
	Mode       string         `json:"mode"`
	HTML       string         `json:"html,omitempty"`
	Pages      []RenderedPage `json:"pages,omitempty"`
	Page       int            `json:"page"`
	TotalPages int            `json:"total_pages"`
	HasContent bool           `json:"has_content"`
}

// RenderOptions carries per-request display choices. Zero values fall back to
// the user's stored reader settings.
type RenderOptions struct {
	Mode     string
	Page     int
	PageSize int
}

// ChapterRepository defines persistence operations for chapters.
type ChapterRepository interface {
	GetByID(storyID, chapterID string, token string) (*Chapter, error)
	// GetContent downloads the chapter body. A missing object yields an empty
	// string, not an error; the caller renders an explicit no-content state.
	GetContent(ctx context.Context, chapter *Chapter, token string) (string, error)
}

// RenderService defines the use-case operation for reading a chapter.
type RenderService interface {
	RenderChapter(ctx context.Context, userID, storyID, chapterID string, opts RenderOptions, token string) (*RenderedChapter, error)
}
