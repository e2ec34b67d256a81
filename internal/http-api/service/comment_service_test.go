package service

import (
	"testing"

	"blogify/internal/http-api/models"
	"blogify/internal/http-api/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// MockCommentRepository mocks the CommentRepository interface
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(comment *models.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByID(id int64) (*models.Comment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) GetByPost(postID int64) ([]models.Comment, error) {
	args := m.Called(postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentRepository) Delete(id int64, authorID string) error {
	args := m.Called(id, authorID)
	return args.Error(0)
}

func TestCreateComment_Success(t *testing.T) {
	mockCommentRepo := new(MockCommentRepository)
	mockPostRepo := new(MockPostRepository)
	svc := NewCommentService(mockCommentRepo, mockPostRepo)

	mockPostRepo.On("Exists", int64(3)).Return(true, nil)
	mockCommentRepo.On("Create", mock.AnythingOfType("*models.Comment")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Comment).ID = 42
	}).Return(nil)
	mockCommentRepo.On("GetByID", int64(42)).Return(&models.Comment{
		ID:       42,
		PostID:   3,
		AuthorID: "user-1",
		Content:  "nice post",
		Author:   models.User{ID: "user-1", Username: "alice"},
	}, nil)

	comment, err := svc.CreateComment("user-1", 3, "nice post")

	require.NoError(t, err)
	assert.EqualValues(t, 42, comment.ID)
	assert.Equal(t, "alice", comment.Username)
	assert.Equal(t, "nice post", comment.Content)
	mockCommentRepo.AssertExpectations(t)
}

func TestCreateComment_EmptyContent(t *testing.T) {
	mockCommentRepo := new(MockCommentRepository)
	mockPostRepo := new(MockPostRepository)
	svc := NewCommentService(mockCommentRepo, mockPostRepo)

	_, err := svc.CreateComment("user-1", 3, "   \t\n")

	assert.ErrorIs(t, err, ErrEmptyContent)
	mockCommentRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateComment_PostNotFound(t *testing.T) {
	mockCommentRepo := new(MockCommentRepository)
	mockPostRepo := new(MockPostRepository)
	svc := NewCommentService(mockCommentRepo, mockPostRepo)

	mockPostRepo.On("Exists", int64(404)).Return(false, nil)

	_, err := svc.CreateComment("user-1", 404, "hello")

	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestDeleteComment_Success(t *testing.T) {
	mockCommentRepo := new(MockCommentRepository)
	mockPostRepo := new(MockPostRepository)
	svc := NewCommentService(mockCommentRepo, mockPostRepo)

	mockCommentRepo.On("Delete", int64(42), "user-1").Return(nil)

	err := svc.DeleteComment(42, "user-1")

	assert.NoError(t, err)
	mockCommentRepo.AssertExpectations(t)
}

func TestDeleteComment_NotFound(t *testing.T) {
	mockCommentRepo := new(MockCommentRepository)
	mockPostRepo := new(MockPostRepository)
	svc := NewCommentService(mockCommentRepo, mockPostRepo)

	mockCommentRepo.On("Delete", int64(42), "user-1").Return(gorm.ErrRecordNotFound)

	err := svc.DeleteComment(42, "user-1")

	assert.ErrorIs(t, err, ErrCommentNotFound)
}

func TestDeleteComment_Forbidden(t *testing.T) {
	mockCommentRepo := new(MockCommentRepository)
	mockPostRepo := new(MockPostRepository)
	svc := NewCommentService(mockCommentRepo, mockPostRepo)

	mockCommentRepo.On("Delete", int64(42), "mallory").Return(repository.ErrNotOwner)

	err := svc.DeleteComment(42, "mallory")

	assert.ErrorIs(t, err, ErrCommentForbidden)
}

func TestGetPostComments_Success(t *testing.T) {
	mockCommentRepo := new(MockCommentRepository)
	mockPostRepo := new(MockPostRepository)
	svc := NewCommentService(mockCommentRepo, mockPostRepo)

	mockPostRepo.On("Exists", int64(3)).Return(true, nil)
	mockCommentRepo.On("GetByPost", int64(3)).Return([]models.Comment{
		{ID: 1, PostID: 3, Content: "first", Author: models.User{Username: "alice"}},
		{ID: 2, PostID: 3, Content: "second", Author: models.User{Username: "bob"}},
	}, nil)

	list, err := svc.GetPostComments(3)

	require.NoError(t, err)
	assert.Equal(t, 2, list.Total)
	assert.Equal(t, "first", list.Data[0].Content)
	assert.Equal(t, "bob", list.Data[1].Username)
}
