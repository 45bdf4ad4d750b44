package domain

import "testing"

func TestVoiceJob_Terminal(t *testing.T) {
	tests := []struct {
		status   string
		terminal bool
	}{
		{VoiceStatusPending, false},
		{VoiceStatusProcessing, false},
		{VoiceStatusCompleted, true},
		{VoiceStatusFailed, true},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			job := &VoiceJob{ID: "job-1", Status: tt.status}
			if got := job.Terminal(); got != tt.terminal {
				t.Fatalf("Terminal() for %s = %v, want %v", tt.status, got, tt.terminal)
			}
		})
	}
}
