package domain

import (
	"context"
	"time"
)

// Voice generation job states.
const (
	VoiceStatusPending    = "pending"
	VoiceStatusProcessing = "processing"
	VoiceStatusCompleted  = "completed"
	VoiceStatusFailed     = "failed"
)

// VoiceJob tracks an asynchronous text-to-speech request for a chapter. The
// generation backend is external; this service only records and observes
// status.
type VoiceJob struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ChapterID string    `json:"chapter_id"`
	Status    string    `json:"status"`
	AudioURL  *string   `json:"audio_url,omitempty"`
	Error     *string   `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Terminal reports whether the job will never change state again.
func (j *VoiceJob) Terminal() bool {
	return j.Status == VoiceStatusCompleted || j.Status == VoiceStatusFailed
}

// VoiceJobRepository defines persistence operations for voice jobs.
type VoiceJobRepository interface {
	Create(job *VoiceJob, token string) (*VoiceJob, error)
	GetByID(userID, jobID string, token string) (*VoiceJob, error)
}

// VoiceService defines the use-case operations for voice jobs. Watch is a
// cancellable subscription: it polls with backoff, emits a snapshot whenever
// the status changes, and closes the channel on terminal status or context
// cancellation.
type VoiceService interface {
	RequestVoice(userID, chapterID string, token string) (*VoiceJob, error)
	Watch(ctx context.Context, userID, jobID string, token string) (<-chan *VoiceJob, error)
}
