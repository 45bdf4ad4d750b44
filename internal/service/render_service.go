package service

import (
	"context"
	"fmt"
	"strings"

	"toranovel-reader/internal/domain"
	"toranovel-reader/internal/render"
)

type renderService struct {
	chapters        domain.ChapterRepository
	highlights      domain.HighlightRepository
	settings        domain.SettingsRepository
	logger          domain.Logger
	defaultPageSize int
}

func NewRenderService(
	chapters domain.ChapterRepository,
	highlights domain.HighlightRepository,
	settings domain.SettingsRepository,
	logger domain.Logger,
	defaultPageSize int,
) domain.RenderService {
	if defaultPageSize <= 0 {
		defaultPageSize = render.DefaultPageSize
	}
	return &renderService{
		chapters:        chapters,
		highlights:      highlights,
		settings:        settings,
		logger:          logger,
		defaultPageSize: defaultPageSize,
	}
}

// RenderChapter runs the reading pipeline: fetch body, classify, transform to
// HTML, inject the user's highlight markers, and paginate for book mode. The
// pipeline stages are pure and total; only chapter I/O can fail. A missing or
// empty body yields an explicit no-content result rather than an error.
func (s *renderService) RenderChapter(ctx context.Context, userID, storyID, chapterID string, opts domain.RenderOptions, token string) (*domain.RenderedChapter, error) {
	chapter, err := s.chapters.GetByID(storyID, chapterID, token)
	if err != nil {
		return nil, err
	}

	content, err := s.chapters.GetContent(ctx, chapter, token)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch chapter content: %w", err)
	}

	mode, pageSize := s.resolveDisplay(userID, opts, token)

	out := &domain.RenderedChapter{
		ChapterID: chapter.ID,
		StoryID:   chapter.StoryID,
		Title:     chapter.Title,
		Mode:      mode,
		Format:    string(render.FormatPlain),
	}

	if strings.TrimSpace(content) == "" {
		out.HasContent = false
		out.TotalPages = 1
		out.Pages = []domain.RenderedPage{{Number: 1, HTML: ""}}
		return out, nil
	}
	out.HasContent = true

	format := render.Classify(content)
	out.Format = string(format)

	marks := s.loadMarks(userID, chapterID, token)

	if mode == domain.ReadingModeBook {
		s.renderBook(out, content, format, marks, pageSize, opts.Page)
		return out, nil
	}

	html, _ := render.ApplyHighlights(renderToHTML(content, format), marks)
	out.HTML = html
	out.Page = 0
	out.TotalPages = 1
	return out, nil
}

// resolveDisplay fills mode and page size from the request, falling back to
// the user's stored settings. A settings read failure falls back to defaults;
// it must not block reading.
func (s *renderService) resolveDisplay(userID string, opts domain.RenderOptions, token string) (string, int) {
	mode := opts.Mode
	pageSize := opts.PageSize
	if mode == "" || pageSize <= 0 {
		settings, err := s.settings.Get(userID, token)
		if err != nil {
			s.logger.Warn("Failed to load reader settings, using defaults", "user_id", userID, "error", err)
			settings = domain.DefaultReaderSettings(userID)
		}
		if mode == "" {
			mode = settings.ReadingMode
		}
		if pageSize <= 0 {
			pageSize = settings.PageSize
		}
	}
	if mode != domain.ReadingModeScroll && mode != domain.ReadingModeBook {
		mode = domain.ReadingModeScroll
	}
	if pageSize <= 0 {
		pageSize = s.defaultPageSize
	}
	return mode, pageSize
}

// loadMarks fetches the chapter's highlights in application order. A list
// failure degrades to rendering without highlights; it is not a render error.
func (s *renderService) loadMarks(userID, chapterID, token string) []render.Mark {
	highlights, err := s.highlights.ListByChapter(userID, chapterID, token)
	if err != nil {
		s.logger.Warn("Failed to list highlights, rendering without them", "user_id", userID, "chapter_id", chapterID, "error", err)
		return nil
	}
	marks := make([]render.Mark, 0, len(highlights))
	for _, h := range highlights {
		marks = append(marks, render.Mark{ID: h.ID, Text: h.Text, Color: h.Color})
	}
	return marks
}

// renderBook paginates the raw content by word count and renders the current
// spread. Each highlight is applied at most once across the spread: once a
// mark matched on a page it is withheld from the facing page.
func (s *renderService) renderBook(out *domain.RenderedChapter, content string, format render.Format, marks []render.Mark, pageSize, page int) {
	pages := render.Paginate(content, pageSize)
	current := render.ClampPage(page, len(pages))
	left, right, hasRight := render.Spread(pages, current)

	leftHTML, applied := render.ApplyHighlights(renderToHTML(left, format), marks)
	out.Pages = append(out.Pages, domain.RenderedPage{Number: current + 1, HTML: leftHTML})

	if hasRight {
		remaining := withoutApplied(marks, applied)
		rightHTML, _ := render.ApplyHighlights(renderToHTML(right, format), remaining)
		out.Pages = append(out.Pages, domain.RenderedPage{Number: current + 2, HTML: rightHTML})
	}

	out.Page = current
	out.TotalPages = len(pages)
}

// renderToHTML is the classify-once transform step shared by both modes.
func renderToHTML(content string, format render.Format) string {
	switch format {
	case render.FormatHTML:
		return content
	case render.FormatMarkdown:
		return render.RenderMarkdown(content)
	default:
		return render.RenderPlain(content)
	}
}

func withoutApplied(marks []render.Mark, applied []string) []render.Mark {
	if len(applied) == 0 {
		return marks
	}
	used := make(map[string]bool, len(applied))
	for _, id := range applied {
		used[id] = true
	}
	out := make([]render.Mark, 0, len(marks))
	for _, m := range marks {
		if !used[m.ID] {
			out = append(out, m)
		}
	}
	return out
}
