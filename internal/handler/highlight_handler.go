package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"toranovel-reader/internal/config"
	"toranovel-reader/internal/domain"

	"github.com/gorilla/mux"
)

// HighlightHandler handles highlight-related HTTP requests.
type HighlightHandler struct {
	container        *config.Container
	logger           domain.Logger
	highlightService domain.HighlightService
}

func NewHighlightHandler(container *config.Container, logger domain.Logger) *HighlightHandler {
	return &HighlightHandler{
		container:        container,
		logger:           logger,
		highlightService: container.HighlightService,
	}
}

type createHighlightRequest struct {
	ChapterID string  `json:"chapter_id"`
	Text      string  `json:"text"`
	Color     string  `json:"color,omitempty"`
	Note      *string `json:"note,omitempty"`
}

type updateHighlightRequest struct {
	Color *string `json:"color,omitempty"`
	Note  *string `json:"note,omitempty"`
}

// CreateHighlight handles POST /highlights
func (h *HighlightHandler) CreateHighlight(w http.ResponseWriter, r *http.Request) {
	user, token, ok := requireAuth(w, r)
	if !ok {
		return
	}

	var req createHighlightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ChapterID == "" {
		writeError(w, http.StatusBadRequest, "chapter_id is required")
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	created, err := h.highlightService.CreateHighlight(user.ID, &domain.Highlight{
		ChapterID: req.ChapterID,
		Text:      req.Text,
		Color:     req.Color,
		Note:      req.Note,
	}, token)
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			writeError(w, http.StatusBadRequest, vErr.Error())
			return
		}
		// The user's action had no durable effect; this must not look like success.
		h.logger.Error("Failed to create highlight", err, "user_id", user.ID, "chapter_id", req.ChapterID)
		writeError(w, http.StatusInternalServerError, "Failed to create highlight")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// ListHighlights handles GET /highlights?chapter_id=...
func (h *HighlightHandler) ListHighlights(w http.ResponseWriter, r *http.Request) {
	user, token, ok := requireAuth(w, r)
	if !ok {
		return
	}

	chapterID := r.URL.Query().Get("chapter_id")

	highlights, err := h.highlightService.ListHighlights(user.ID, chapterID, token)
	if err != nil {
		h.logger.Error("Failed to list highlights", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "Failed to retrieve highlights")
		return
	}
	if highlights == nil {
		highlights = make([]*domain.Highlight, 0)
	}
	writeJSON(w, http.StatusOK, highlights)
}

// UpdateHighlight handles PUT /highlights/{id}
func (h *HighlightHandler) UpdateHighlight(w http.ResponseWriter, r *http.Request) {
	user, token, ok := requireAuth(w, r)
	if !ok {
		return
	}

	vars := mux.Vars(r)
	highlightID := vars["id"]
	if highlightID == "" {
		writeError(w, http.StatusBadRequest, "Highlight ID is required")
		return
	}

	var req updateHighlightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.highlightService.UpdateHighlight(user.ID, highlightID, req.Color, req.Note, token)
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			writeError(w, http.StatusBadRequest, vErr.Error())
			return
		}
		if errors.Is(err, domain.ErrHighlightNotFound) {
			writeError(w, http.StatusNotFound, "Highlight not found")
			return
		}
		h.logger.Error("Failed to update highlight", err, "user_id", user.ID, "highlight_id", highlightID)
		writeError(w, http.StatusInternalServerError, "Failed to update highlight")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// DeleteHighlight handles DELETE /highlights/{id}
func (h *HighlightHandler) DeleteHighlight(w http.ResponseWriter, r *http.Request) {
	user, token, ok := requireAuth(w, r)
	if !ok {
		return
	}

	vars := mux.Vars(r)
	highlightID := vars["id"]
	if highlightID == "" {
		writeError(w, http.StatusBadRequest, "Highlight ID is required")
		return
	}

	if err := h.highlightService.DeleteHighlight(user.ID, highlightID, token); err != nil {
		h.logger.Error("Failed to delete highlight", err, "user_id", user.ID, "highlight_id", highlightID)
		writeError(w, http.StatusInternalServerError, "Failed to delete highlight")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
