package handler

import (
	"context"
	"net/http"

	"toranovel-reader/internal/config"
	"toranovel-reader/internal/domain"

	"github.com/supabase-community/supabase-go"
)

// Mock services and request helpers shared by handler tests.

type mockRenderService struct {
	renderFunc func(ctx context.Context, userID, storyID, chapterID string, opts domain.RenderOptions, token string) (*domain.RenderedChapter, error)
}

func (m *mockRenderService) RenderChapter(ctx context.Context, userID, storyID, chapterID string, opts domain.RenderOptions, token string) (*domain.RenderedChapter, error) {
	return m.renderFunc(ctx, userID, storyID, chapterID, opts, token)
}

type mockHighlightService struct {
	createFunc func(userID string, highlight *domain.Highlight, token string) (*domain.Highlight, error)
	listFunc   func(userID, chapterID string, token string) ([]*domain.Highlight, error)
	updateFunc func(userID, highlightID string, color *string, note *string, token string) (*domain.Highlight, error)
	deleteFunc func(userID, highlightID string, token string) error
}

func (m *mockHighlightService) CreateHighlight(userID string, highlight *domain.Highlight, token string) (*domain.Highlight, error) {
	return m.createFunc(userID, highlight, token)
}

func (m *mockHighlightService) ListHighlights(userID, chapterID string, token string) ([]*domain.Highlight, error) {
	return m.listFunc(userID, chapterID, token)
}

func (m *mockHighlightService) UpdateHighlight(userID, highlightID string, color *string, note *string, token string) (*domain.Highlight, error) {
	return m.updateFunc(userID, highlightID, color, note, token)
}

func (m *mockHighlightService) DeleteHighlight(userID, highlightID string, token string) error {
	return m.deleteFunc(userID, highlightID, token)
}

type mockSettingsService struct {
	getFunc    func(userID string, token string) (*domain.ReaderSettings, error)
	updateFunc func(userID string, patch *domain.ReaderSettingsPatch, token string) (*domain.ReaderSettings, error)
}

func (m *mockSettingsService) GetSettings(userID string, token string) (*domain.ReaderSettings, error) {
	return m.getFunc(userID, token)
}

func (m *mockSettingsService) UpdateSettings(userID string, patch *domain.ReaderSettingsPatch, token string) (*domain.ReaderSettings, error) {
	return m.updateFunc(userID, patch, token)
}

type mockVoiceService struct {
	requestFunc func(userID, chapterID string, token string) (*domain.VoiceJob, error)
	watchFunc   func(ctx context.Context, userID, jobID string, token string) (<-chan *domain.VoiceJob, error)
}

func (m *mockVoiceService) RequestVoice(userID, chapterID string, token string) (*domain.VoiceJob, error) {
	return m.requestFunc(userID, chapterID, token)
}

func (m *mockVoiceService) Watch(ctx context.Context, userID, jobID string, token string) (<-chan *domain.VoiceJob, error) {
	return m.watchFunc(ctx, userID, jobID, token)
}

type mockSupabaseClient struct {
	validateFunc func(token string) (*domain.SupabaseUser, error)
}

func (m *mockSupabaseClient) Initialize() error { return nil }

func (m *mockSupabaseClient) ValidateToken(token string) (*domain.SupabaseUser, error) {
	return m.validateFunc(token)
}

func (m *mockSupabaseClient) DB() *supabase.Client { return nil }

func (m *mockSupabaseClient) GetClientWithToken(token string) (*supabase.Client, error) {
	return nil, nil
}

// testContainer builds a container with the mock logger; tests fill in the
// services they exercise.
func testContainer() *config.Container {
	return &config.Container{Logger: NewMockHandlerLogger()}
}

// withAuth stamps an authenticated user and token onto the request, standing
// in for the auth middleware.
func withAuth(r *http.Request, userID string) *http.Request {
	ctx := context.WithValue(r.Context(), userContextKey, &domain.SupabaseUser{ID: userID, Email: userID + "@example.com"})
	ctx = context.WithValue(ctx, tokenContextKey, "test-token")
	return r.WithContext(ctx)
}
