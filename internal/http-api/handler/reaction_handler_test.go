package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"blogify/internal/http-api/dto"
	"blogify/internal/http-api/handler"
	"blogify/internal/http-api/repository"
	"blogify/internal/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- MOCK SERVICE ---

type MockReactionService struct {
	mock.Mock
}

func (m *MockReactionService) ToggleReaction(ctx context.Context, userID string, postID int64, kind string) (*service.ToggleOutcome, error) {
	args := m.Called(ctx, userID, postID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ToggleOutcome), args.Error(1)
}

func (m *MockReactionService) GetReactions(ctx context.Context, postID int64) ([]dto.ReactionSummaryResponse, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ReactionSummaryResponse), args.Error(1)
}

// --- SETUP ---

func mockAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", "test-user-id")
		c.Set("username", "testuser")
		c.Next()
	}
}

func setupReactionRouter(mockService *MockReactionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewReactionHandler(mockService)

	public := r.Group("/api/posts")
	authed := r.Group("/api/posts")
	authed.Use(mockAuthMiddleware())
	h.RegisterRoutes(public, authed)

	return r
}

func toggleBody(t *testing.T, kind string) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(dto.ToggleReactionDTO{Kind: kind})
	assert.NoError(t, err)
	return bytes.NewBuffer(body)
}

// --- TESTS ---

func TestReactionHandler_Toggle(t *testing.T) {
	t.Run("Added", func(t *testing.T) {
		mockService := new(MockReactionService)
		r := setupReactionRouter(mockService)

		mockService.On("ToggleReaction", mock.Anything, "test-user-id", int64(7), "like").
			Return(&service.ToggleOutcome{
				Action:   repository.ToggleAdded,
				Reaction: &dto.ReactionResponse{PostID: 7, Kind: "like"},
			}, nil).Once()

		req, _ := http.NewRequest(http.MethodPost, "/api/posts/7/react", toggleBody(t, "like"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response dto.ReactionResponse
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Equal(t, "like", response.Kind)
		assert.EqualValues(t, 7, response.PostID)
		mockService.AssertExpectations(t)
	})

	t.Run("Removed", func(t *testing.T) {
		mockService := new(MockReactionService)
		r := setupReactionRouter(mockService)

		mockService.On("ToggleReaction", mock.Anything, "test-user-id", int64(7), "like").
			Return(&service.ToggleOutcome{
				Action:  repository.ToggleRemoved,
				OldKind: "like",
			}, nil).Once()

		req, _ := http.NewRequest(http.MethodPost, "/api/posts/7/react", toggleBody(t, "like"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]string
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Equal(t, "reaction removed", response["message"])
	})

	t.Run("Replaced", func(t *testing.T) {
		mockService := new(MockReactionService)
		r := setupReactionRouter(mockService)

		mockService.On("ToggleReaction", mock.Anything, "test-user-id", int64(7), "love").
			Return(&service.ToggleOutcome{
				Action:   repository.ToggleReplaced,
				OldKind:  "like",
				Reaction: &dto.ReactionResponse{PostID: 7, Kind: "love"},
			}, nil).Once()

		req, _ := http.NewRequest(http.MethodPost, "/api/posts/7/react", toggleBody(t, "love"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.ReactionResponse
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Equal(t, "love", response.Kind)
	})

	t.Run("UnknownKindFailsBinding", func(t *testing.T) {
		mockService := new(MockReactionService)
		r := setupReactionRouter(mockService)

		req, _ := http.NewRequest(http.MethodPost, "/api/posts/7/react", toggleBody(t, "meh"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "ToggleReaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("PostNotFound", func(t *testing.T) {
		mockService := new(MockReactionService)
		r := setupReactionRouter(mockService)

		mockService.On("ToggleReaction", mock.Anything, "test-user-id", int64(404), "like").
			Return(nil, service.ErrPostNotFound).Once()

		req, _ := http.NewRequest(http.MethodPost, "/api/posts/404/react", toggleBody(t, "like"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Conflict", func(t *testing.T) {
		mockService := new(MockReactionService)
		r := setupReactionRouter(mockService)

		mockService.On("ToggleReaction", mock.Anything, "test-user-id", int64(7), "like").
			Return(nil, service.ErrReactionConflict).Once()

		req, _ := http.NewRequest(http.MethodPost, "/api/posts/7/react", toggleBody(t, "like"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("InvalidPostID", func(t *testing.T) {
		mockService := new(MockReactionService)
		r := setupReactionRouter(mockService)

		req, _ := http.NewRequest(http.MethodPost, "/api/posts/abc/react", toggleBody(t, "like"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestReactionHandler_List(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockReactionService)
		r := setupReactionRouter(mockService)

		mockService.On("GetReactions", mock.Anything, int64(7)).
			Return([]dto.ReactionSummaryResponse{
				{Kind: "like", Count: 2, Users: []string{"alice", "bob"}},
				{Kind: "helpful", Count: 1, Users: []string{"carol"}},
			}, nil).Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/posts/7/reactions", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response []dto.ReactionSummaryResponse
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Len(t, response, 2)
		assert.Equal(t, "like", response[0].Kind)
		assert.Equal(t, 2, response[0].Count)
		assert.Equal(t, []string{"alice", "bob"}, response[0].Users)
	})

	t.Run("PostNotFound", func(t *testing.T) {
		mockService := new(MockReactionService)
		r := setupReactionRouter(mockService)

		mockService.On("GetReactions", mock.Anything, int64(404)).
			Return(nil, service.ErrPostNotFound).Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/posts/404/reactions", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
