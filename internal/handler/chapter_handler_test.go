package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"toranovel-reader/internal/domain"
	apperrors "toranovel-reader/pkg/errors"

	"github.com/gorilla/mux"
)

func newChapterTestRouter(svc domain.RenderService) *mux.Router {
	container := testContainer()
	container.RenderService = svc
	h := NewChapterHandler(container, container.Logger)

	router := mux.NewRouter()
	router.HandleFunc("/stories/{storyId}/chapters/{chapterId}/render", h.RenderChapter).Methods("GET")
	return router
}

func TestRenderChapter_Success(t *testing.T) {
	svc := &mockRenderService{
		renderFunc: func(ctx context.Context, userID, storyID, chapterID string, opts domain.RenderOptions, token string) (*domain.RenderedChapter, error) {
			if userID != "user-1" || storyID != "story-1" || chapterID != "ch-1" {
				t.Fatalf("unexpected identifiers: %s %s %s", userID, storyID, chapterID)
			}
			if opts.Mode != "book" || opts.Page != 2 {
				t.Fatalf("expected opts book/2, got %s/%d", opts.Mode, opts.Page)
			}
			return &domain.RenderedChapter{
				ChapterID:  chapterID,
				StoryID:    storyID,
				Format:     "markdown",
				Mode:       "book",
				Page:       2,
				TotalPages: 4,
				HasContent: true,
			}, nil
		},
	}
	router := newChapterTestRouter(svc)

	req := httptest.NewRequest("GET", "/stories/story-1/chapters/ch-1/render?mode=book&page=2", nil)
	req = withAuth(req, "user-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var got domain.RenderedChapter
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got.Mode != "book" || got.TotalPages != 4 {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestRenderChapter_NotFound(t *testing.T) {
	svc := &mockRenderService{
		renderFunc: func(ctx context.Context, userID, storyID, chapterID string, opts domain.RenderOptions, token string) (*domain.RenderedChapter, error) {
			return nil, domain.ErrChapterNotFound
		},
	}
	router := newChapterTestRouter(svc)

	req := withAuth(httptest.NewRequest("GET", "/stories/story-1/chapters/missing/render", nil), "user-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestRenderChapter_InvalidPage(t *testing.T) {
	svc := &mockRenderService{
		renderFunc: func(ctx context.Context, userID, storyID, chapterID string, opts domain.RenderOptions, token string) (*domain.RenderedChapter, error) {
			t.Fatal("service should not be called")
			return nil, nil
		},
	}
	router := newChapterTestRouter(svc)

	req := withAuth(httptest.NewRequest("GET", "/stories/s/chapters/c/render?page=two", nil), "user-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestRenderChapter_Unauthenticated(t *testing.T) {
	svc := &mockRenderService{
		renderFunc: func(ctx context.Context, userID, storyID, chapterID string, opts domain.RenderOptions, token string) (*domain.RenderedChapter, error) {
			t.Fatal("service should not be called")
			return nil, nil
		},
	}
	router := newChapterTestRouter(svc)

	req := httptest.NewRequest("GET", "/stories/s/chapters/c/render", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestRenderChapter_UpstreamUnavailable(t *testing.T) {
	svc := &mockRenderService{
		renderFunc: func(ctx context.Context, userID, storyID, chapterID string, opts domain.RenderOptions, token string) (*domain.RenderedChapter, error) {
			return nil, apperrors.NewNetworkError("content fetch failed", errors.New("status 502"))
		},
	}
	router := newChapterTestRouter(svc)

	req := withAuth(httptest.NewRequest("GET", "/stories/s/chapters/c/render", nil), "user-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", rec.Code)
	}
}
