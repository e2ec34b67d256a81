package service

import (
	"errors"
	"strings"

	"blogify/internal/http-api/dto"
	"blogify/internal/http-api/models"
	"blogify/internal/http-api/repository"

	"gorm.io/gorm"
)

var (
	ErrCommentNotFound  = errors.New("comment not found")
	ErrCommentForbidden = errors.New("you are not the author of this comment")
	ErrEmptyContent     = errors.New("comment content must not be empty")
)

type CommentService interface {
	CreateComment(userID string, postID int64, content string) (*dto.CommentResponse, error)
	DeleteComment(commentID int64, userID string) error
	GetPostComments(postID int64) (*dto.CommentListResponse, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// CreateComment creates a new comment on a post
func (s *commentService) CreateComment(userID string, postID int64, content string) (*dto.CommentResponse, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	exists, err := s.postRepo.Exists(postID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrPostNotFound
	}

	comment := &models.Comment{
		AuthorID: userID,
		PostID:   postID,
		Content:  content,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	// reload with author data for the denormalized username
	comment, err = s.commentRepo.GetByID(comment.ID)
	if err != nil {
		return nil, err
	}
	return dto.FromModelToCommentResponse(comment), nil
}

// DeleteComment deletes a comment when the caller is its author. The
// ownership predicate runs inside the DELETE statement in the repository.
func (s *commentService) DeleteComment(commentID int64, userID string) error {
	err := s.commentRepo.Delete(commentID, userID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrCommentNotFound
	case errors.Is(err, repository.ErrNotOwner):
		return ErrCommentForbidden
	}
	return err
}

// GetPostComments retrieves all comments on a post, oldest first
func (s *commentService) GetPostComments(postID int64) (*dto.CommentListResponse, error) {
	exists, err := s.postRepo.Exists(postID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrPostNotFound
	}

	comments, err := s.commentRepo.GetByPost(postID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		responses = append(responses, *dto.FromModelToCommentResponse(&comment))
	}
	return &dto.CommentListResponse{Data: responses, Total: len(responses)}, nil
}
