package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"toranovel-reader/internal/config"
	"toranovel-reader/internal/domain"

	"github.com/gorilla/mux"
)

// voiceWaitTimeout bounds how long a ?wait request holds the connection open.
const voiceWaitTimeout = 25 * time.Second

// VoiceHandler handles voice-generation job requests.
type VoiceHandler struct {
	container    *config.Container
	logger       domain.Logger
	voiceService domain.VoiceService
}

func NewVoiceHandler(container *config.Container, logger domain.Logger) *VoiceHandler {
	return &VoiceHandler{
		container:    container,
		logger:       logger,
		voiceService: container.VoiceService,
	}
}

// RequestVoice handles POST /chapters/{chapterId}/voice
func (h *VoiceHandler) RequestVoice(w http.ResponseWriter, r *http.Request) {
	user, token, ok := requireAuth(w, r)
	if !ok {
		return
	}

	vars := mux.Vars(r)
	chapterID := vars["chapterId"]
	if chapterID == "" {
		writeError(w, http.StatusBadRequest, "Chapter ID is required")
		return
	}

	job, err := h.voiceService.RequestVoice(user.ID, chapterID, token)
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			writeError(w, http.StatusBadRequest, vErr.Error())
			return
		}
		h.logger.Error("Failed to request voice job", err, "user_id", user.ID, "chapter_id", chapterID)
		writeError(w, http.StatusInternalServerError, "Failed to request voice generation")
		return
	}

	writeJSON(w, http.StatusCreated, job)
}

// GetVoiceJob handles GET /voice/jobs/{id}. With ?wait=true the handler holds
// the request on the watch subscription and answers with the newest snapshot,
// so clients long-poll instead of hammering the endpoint.
func (h *VoiceHandler) GetVoiceJob(w http.ResponseWriter, r *http.Request) {
	user, token, ok := requireAuth(w, r)
	if !ok {
		return
	}

	vars := mux.Vars(r)
	jobID := vars["id"]
	if jobID == "" {
		writeError(w, http.StatusBadRequest, "Job ID is required")
		return
	}

	ctx := r.Context()
	if r.URL.Query().Get("wait") == "true" {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, voiceWaitTimeout)
		defer cancel()
	}

	updates, err := h.voiceService.Watch(ctx, user.ID, jobID, token)
	if err != nil {
		if errors.Is(err, domain.ErrVoiceJobNotFound) {
			writeError(w, http.StatusNotFound, "Voice job not found")
			return
		}
		h.logger.Error("Failed to watch voice job", err, "user_id", user.ID, "job_id", jobID)
		writeError(w, http.StatusInternalServerError, "Failed to retrieve voice job")
		return
	}

	var last *domain.VoiceJob
	if r.URL.Query().Get("wait") == "true" {
		// Drain until the subscription closes (terminal status or timeout).
		for job := range updates {
			last = job
		}
	} else {
		last = <-updates
	}

	if last == nil {
		writeError(w, http.StatusInternalServerError, "Failed to retrieve voice job")
		return
	}
	writeJSON(w, http.StatusOK, last)
}
