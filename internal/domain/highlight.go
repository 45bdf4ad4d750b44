package domain

import "time"

// Highlight colors accepted by the reader UI.
var HighlightColors = map[string]bool{
	"yellow": true,
	"green":  true,
	"blue":   true,
	"pink":   true,
	"purple": true,
}

// DefaultHighlightColor is used when a create request carries no color.
const DefaultHighlightColor = "yellow"

// Highlight represents a user-created annotation over a contiguous span of
// chapter text. Text is the verbatim matched substring; if the chapter content
// no longer contains it the highlight simply fails to apply.
type Highlight struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ChapterID string    `json:"chapter_id"`
	Text      string    `json:"text"`
	Color     string    `json:"color"`
	Note      *string   `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// HighlightRepository defines persistence operations for highlights.
type HighlightRepository interface {
	Create(highlight *Highlight, token string) (*Highlight, error)
	// ListByChapter returns the user's highlights for a chapter ordered by
	// creation time ascending, which is also the application order.
	ListByChapter(userID, chapterID string, token string) ([]*Highlight, error)
	Update(userID, highlightID string, color *string, note *string, token string) (*Highlight, error)
	Delete(userID, highlightID string, token string) error
}

// HighlightService defines the use-case operations for highlights.
type HighlightService interface {
	CreateHighlight(userID string, highlight *Highlight, token string) (*Highlight, error)
	ListHighlights(userID, chapterID string, token string) ([]*Highlight, error)
	UpdateHighlight(userID, highlightID string, color *string, note *string, token string) (*Highlight, error)
	DeleteHighlight(userID, highlightID string, token string) error
}
