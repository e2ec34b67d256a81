package service

import (
	"errors"

	"blogify/internal/http-api/dto"
	"blogify/internal/http-api/models"
	"blogify/internal/http-api/repository"

	"gorm.io/gorm"
)

var ErrPostForbidden = errors.New("you are not the author of this post")

type PostService interface {
	CreatePost(userID, title, content string) (*dto.PostResponse, error)
	GetPost(postID int64) (*dto.PostResponse, error)
	GetAllPosts(page, pageSize int) (*dto.PaginatedPostResponse, error)
	UpdatePost(postID int64, userID, title, content string) (*dto.PostResponse, error)
	DeletePost(postID int64, userID string) error
}

type postService struct {
	postRepo repository.PostRepository
}

func NewPostService(postRepo repository.PostRepository) PostService {
	return &postService{postRepo: postRepo}
}

func (s *postService) CreatePost(userID, title, content string) (*dto.PostResponse, error) {
	post := &models.Post{
		AuthorID: userID,
		Title:    title,
		Content:  content,
	}
	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}

	post, err := s.postRepo.GetByID(post.ID)
	if err != nil {
		return nil, err
	}
	return dto.FromModelToPostResponse(post), nil
}

func (s *postService) GetPost(postID int64) (*dto.PostResponse, error) {
	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return dto.FromModelToPostResponse(post), nil
}

func (s *postService) GetAllPosts(page, pageSize int) (*dto.PaginatedPostResponse, error) {
	posts, total, err := s.postRepo.GetAll(page, pageSize)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.PostResponse, 0, len(posts))
	for _, post := range posts {
		responses = append(responses, *dto.FromModelToPostResponse(&post))
	}
	return dto.NewPaginatedPostResponse(responses, int(total), page, pageSize), nil
}

func (s *postService) UpdatePost(postID int64, userID, title, content string) (*dto.PostResponse, error) {
	post := &models.Post{ID: postID, Title: title, Content: content}
	err := s.postRepo.Update(post, userID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ErrPostNotFound
	case errors.Is(err, repository.ErrNotOwner):
		return nil, ErrPostForbidden
	case err != nil:
		return nil, err
	}

	updated, err := s.postRepo.GetByID(postID)
	if err != nil {
		return nil, err
	}
	return dto.FromModelToPostResponse(updated), nil
}

func (s *postService) DeletePost(postID int64, userID string) error {
	err := s.postRepo.Delete(postID, userID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrPostNotFound
	case errors.Is(err, repository.ErrNotOwner):
		return ErrPostForbidden
	}
	return err
}
