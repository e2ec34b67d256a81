package dto

import (
	"time"

	"blogify/internal/http-api/models"
)

// CreateCommentDTO for creating a comment
type CreateCommentDTO struct {
	Content string `json:"content" binding:"required,max=5000"`
}

// CommentResponse for returning comment information. The username is
// denormalized for display only, identity stays with author_id.
type CommentResponse struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"post_id"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// FromModelToCommentResponse converts a Comment model to CommentResponse DTO
func FromModelToCommentResponse(comment *models.Comment) *CommentResponse {
	return &CommentResponse{
		ID:        comment.ID,
		PostID:    comment.PostID,
		Username:  comment.Author.Username,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}
}

// CommentListResponse for returning all comments on a post
type CommentListResponse struct {
	Data  []CommentResponse `json:"data"`
	Total int               `json:"total"`
}
