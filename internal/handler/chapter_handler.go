package handler

import (
	"errors"
	"net/http"
	"strconv"

	"toranovel-reader/internal/config"
	"toranovel-reader/internal/domain"
	apperrors "toranovel-reader/pkg/errors"

	"github.com/gorilla/mux"
)

// ChapterHandler serves rendered chapter content.
type ChapterHandler struct {
	container     *config.Container
	logger        domain.Logger
	renderService domain.RenderService
}

func NewChapterHandler(container *config.Container, logger domain.Logger) *ChapterHandler {
	return &ChapterHandler{
		container:     container,
		logger:        logger,
		renderService: container.RenderService,
	}
}

// RenderChapter handles GET /stories/{storyId}/chapters/{chapterId}/render?mode=&page=
// The request context rides through to the content fetch, so a client that
// navigates away cancels the download.
func (h *ChapterHandler) RenderChapter(w http.ResponseWriter, r *http.Request) {
	user, token, ok := requireAuth(w, r)
	if !ok {
		return
	}

	vars := mux.Vars(r)
	storyID := vars["storyId"]
	chapterID := vars["chapterId"]
	if storyID == "" || chapterID == "" {
		writeError(w, http.StatusBadRequest, "Story ID and chapter ID are required")
		return
	}

	opts := domain.RenderOptions{
		Mode: r.URL.Query().Get("mode"),
	}
	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid page number")
			return
		}
		opts.Page = page
	}

	rendered, err := h.renderService.RenderChapter(r.Context(), user.ID, storyID, chapterID, opts, token)
	if err != nil {
		if errors.Is(err, domain.ErrChapterNotFound) {
			writeError(w, http.StatusNotFound, "Chapter not found")
			return
		}
		if r.Context().Err() != nil {
			// Client went away; nothing useful to write.
			return
		}
		h.logger.Error("Failed to render chapter", err, "user_id", user.ID, "story_id", storyID, "chapter_id", chapterID)
		writeError(w, apperrors.GetStatusCode(err), "Failed to render chapter")
		return
	}

	writeJSON(w, http.StatusOK, rendered)
}
