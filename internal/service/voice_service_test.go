package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"toranovel-reader/internal/domain"
)

// mockVoiceJobRepo serves a scripted sequence of statuses, one per poll.
type mockVoiceJobRepo struct {
	mu       sync.Mutex
	job      *domain.VoiceJob
	statuses []string
	calls    int
}

func (m *mockVoiceJobRepo) Create(job *domain.VoiceJob, token string) (*domain.VoiceJob, error) {
	stored := *job
	stored.ID = "vj-1"
	stored.Status = domain.VoiceStatusPending
	m.mu.Lock()
	m.job = &stored
	m.mu.Unlock()
	return &stored, nil
}

func (m *mockVoiceJobRepo) GetByID(userID, jobID string, token string) (*domain.VoiceJob, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.job == nil {
		return nil, domain.ErrVoiceJobNotFound
	}
	snapshot := *m.job
	if m.calls < len(m.statuses) {
		snapshot.Status = m.statuses[m.calls]
		m.calls++
	} else if len(m.statuses) > 0 {
		snapshot.Status = m.statuses[len(m.statuses)-1]
	}
	return &snapshot, nil
}

func TestVoiceService_RequestVoice(t *testing.T) {
	repo := &mockVoiceJobRepo{}
	svc := NewVoiceService(repo, NewMockLogger(), time.Millisecond)

	job, err := svc.RequestVoice("user-1", "ch-1", "token")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if job.ID == "" || job.Status != domain.VoiceStatusPending {
		t.Fatalf("expected a stored pending job, got %+v", job)
	}

	if _, err := svc.RequestVoice("user-1", "", "token"); err == nil {
		t.Fatalf("expected missing chapter id to fail")
	}
}

func TestVoiceService_Watch_EmitsStatusChangesAndCloses(t *testing.T) {
	repo := &mockVoiceJobRepo{statuses: []string{
		domain.VoiceStatusPending,
		domain.VoiceStatusProcessing,
		domain.VoiceStatusCompleted,
	}}
	svc := NewVoiceService(repo, NewMockLogger(), time.Millisecond)

	if _, err := svc.RequestVoice("user-1", "ch-1", "token"); err != nil {
		t.Fatalf("request failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	updates, err := svc.Watch(ctx, "user-1", "vj-1", "token")
	if err != nil {
		t.Fatalf("expected watch to start, got %v", err)
	}

	var seen []string
	for job := range updates {
		seen = append(seen, job.Status)
	}
	if len(seen) < 2 {
		t.Fatalf("expected at least the initial and terminal snapshots, got %v", seen)
	}
	if seen[len(seen)-1] != domain.VoiceStatusCompleted {
		t.Fatalf("expected the stream to end on the terminal status, got %v", seen)
	}
}

func TestVoiceService_Watch_TerminalJobClosesImmediately(t *testing.T) {
	repo := &mockVoiceJobRepo{statuses: []string{domain.VoiceStatusFailed}}
	svc := NewVoiceService(repo, NewMockLogger(), time.Millisecond)

	if _, err := svc.RequestVoice("user-1", "ch-1", "token"); err != nil {
		t.Fatalf("request failed: %v", err)
	}

	updates, err := svc.Watch(context.Background(), "user-1", "vj-1", "token")
	if err != nil {
		t.Fatalf("expected watch to start, got %v", err)
	}

	job, ok := <-updates
	if !ok || job.Status != domain.VoiceStatusFailed {
		t.Fatalf("expected the failed snapshot, got %+v ok=%v", job, ok)
	}
	if _, ok := <-updates; ok {
		t.Fatalf("expected channel closed after terminal snapshot")
	}
}

func TestVoiceService_Watch_CancellationStopsPolling(t *testing.T) {
	// Statuses never reach a terminal state; only cancellation can end the watch.
	repo := &mockVoiceJobRepo{statuses: []string{domain.VoiceStatusPending}}
	svc := NewVoiceService(repo, NewMockLogger(), time.Millisecond)

	if _, err := svc.RequestVoice("user-1", "ch-1", "token"); err != nil {
		t.Fatalf("request failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	updates, err := svc.Watch(ctx, "user-1", "vj-1", "token")
	if err != nil {
		t.Fatalf("expected watch to start, got %v", err)
	}
	cancel()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-updates:
			if !ok {
				return // channel closed, no leaked poller
			}
		case <-deadline:
			t.Fatalf("expected the subscription to close after cancellation")
		}
	}
}

func TestVoiceService_Watch_UnknownJob(t *testing.T) {
	repo := &mockVoiceJobRepo{}
	svc := NewVoiceService(repo, NewMockLogger(), time.Millisecond)

	if _, err := svc.Watch(context.Background(), "user-1", "missing", "token"); err == nil {
		t.Fatalf("expected unknown job to fail")
	}
}
