package service

import (
	"context"
	"time"

	"toranovel-reader/internal/domain"
)

const (
	voicePollBackoffFactor = 1.5
	voicePollMaxInterval   = 30 * time.Second
)

type voiceService struct {
	repo         domain.VoiceJobRepository
	logger       domain.Logger
	pollInterval time.Duration
}

func NewVoiceService(repo domain.VoiceJobRepository, logger domain.Logger, pollInterval time.Duration) domain.VoiceService {
	if pollInterval <= 0 {
		pollInterval = 2 * time.Second
	}
	return &voiceService{
		repo:         repo,
		logger:       logger,
		pollInterval: pollInterval,
	}
}

// RequestVoice records a pending generation job for the external voice
// backend to pick up.
func (s *voiceService) RequestVoice(userID, chapterID string, token string) (*domain.VoiceJob, error) {
	if chapterID == "" {
		return nil, &domain.ValidationError{Field: "chapter_id", Message: "is required"}
	}

	created, err := s.repo.Create(&domain.VoiceJob{
		UserID:    userID,
		ChapterID: chapterID,
		Status:    domain.VoiceStatusPending,
	}, token)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Voice job requested", "user_id", userID, "chapter_id", chapterID, "job_id", created.ID)
	return created, nil
}

// Watch polls the job with exponential backoff and emits a snapshot on every
// status change. The channel closes when the job reaches a terminal status or
// the context is cancelled, so subscribers never leak a timer across
// navigation.
func (s *voiceService) Watch(ctx context.Context, userID, jobID string, token string) (<-chan *domain.VoiceJob, error) {
	job, err := s.repo.GetByID(userID, jobID, token)
	if err != nil {
		return nil, err
	}

	updates := make(chan *domain.VoiceJob, 1)
	updates <- job

	if job.Terminal() {
		close(updates)
		return updates, nil
	}

	go func() {
		defer close(updates)

		lastStatus := job.Status
		interval := s.pollInterval
		timer := time.NewTimer(interval)
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			}

			current, err := s.repo.GetByID(userID, jobID, token)
			if err != nil {
				s.logger.Warn("Voice job poll failed", "job_id", jobID, "error", err)
			} else if current.Status != lastStatus {
				lastStatus = current.Status
				select {
				case updates <- current:
				case <-ctx.Done():
					return
				}
				if current.Terminal() {
					return
				}
				// Status moved; reset backoff so the next transition is seen quickly.
				interval = s.pollInterval
				timer.Reset(interval)
				continue
			}

			interval = time.Duration(float64(interval) * voicePollBackoffFactor)
			if interval > voicePollMaxInterval {
				interval = voicePollMaxInterval
			}
			timer.Reset(interval)
		}
	}()

	return updates, nil
}
