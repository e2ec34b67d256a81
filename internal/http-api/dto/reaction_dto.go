package dto

import (
	"time"

	"blogify/internal/http-api/models"
)

// ToggleReactionDTO for toggling a reaction on a post
type ToggleReactionDTO struct {
	Kind string `json:"kind" binding:"required,oneof=like love helpful"`
}

// ReactionResponse for returning the resulting reaction row
type ReactionResponse struct {
	PostID    int64     `json:"post_id"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FromModelToReactionResponse converts a Reaction model to ReactionResponse DTO
func FromModelToReactionResponse(reaction *models.Reaction) *ReactionResponse {
	return &ReactionResponse{
		PostID:    reaction.PostID,
		Kind:      string(reaction.Kind),
		CreatedAt: reaction.CreatedAt,
		UpdatedAt: reaction.UpdatedAt,
	}
}

// ReactionSummaryResponse is one per-kind aggregate entry for a post
type ReactionSummaryResponse struct {
	Kind  string   `json:"kind"`
	Count int      `json:"count"`
	Users []string `json:"users"`
}

// FromModelToSummaryResponses converts derived summaries to response DTOs
func FromModelToSummaryResponses(summaries []models.ReactionSummary) []ReactionSummaryResponse {
	out := make([]ReactionSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, ReactionSummaryResponse{
			Kind:  string(s.Kind),
			Count: s.Count,
			Users: s.Users,
		})
	}
	return out
}
