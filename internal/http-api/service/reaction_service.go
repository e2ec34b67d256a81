package service

import (
	"context"
	"errors"
	"log/slog"

	"blogify/internal/http-api/dto"
	"blogify/internal/http-api/models"
	"blogify/internal/http-api/repository"

	"gorm.io/gorm"
)

var (
	ErrPostNotFound        = errors.New("post not found")
	ErrInvalidReactionKind = errors.New("invalid reaction kind")
	ErrReactionConflict    = errors.New("reaction was changed concurrently, please retry")
)

// ToggleOutcome is what a toggle committed, surfaced to the handler so it can
// pick the response shape (201 added, 200 replaced, 200 removed message).
type ToggleOutcome struct {
	Action   repository.ToggleAction
	OldKind  models.ReactionKind
	Reaction *dto.ReactionResponse
}

type ReactionService interface {
	// ToggleReaction runs the per-(user, post) state machine: absent kinds
	// are added, the current kind toggles off, any other kind replaces it.
	ToggleReaction(ctx context.Context, userID string, postID int64, kind string) (*ToggleOutcome, error)
	// GetReactions returns the per-kind summaries for every kind with at
	// least one reactor on the post. No authentication required.
	GetReactions(ctx context.Context, postID int64) ([]dto.ReactionSummaryResponse, error)
}

type reactionService struct {
	reactionRepo repository.ReactionRepository
	postRepo     repository.PostRepository
	cache        *repository.ReactionCache
	logger       *slog.Logger
}

func NewReactionService(
	reactionRepo repository.ReactionRepository,
	postRepo repository.PostRepository,
	cache *repository.ReactionCache,
	logger *slog.Logger,
) ReactionService {
	return &reactionService{
		reactionRepo: reactionRepo,
		postRepo:     postRepo,
		cache:        cache,
		logger:       logger,
	}
}

func (s *reactionService) ToggleReaction(ctx context.Context, userID string, postID int64, kind string) (*ToggleOutcome, error) {
	reactionKind := models.ReactionKind(kind)
	if !reactionKind.Valid() {
		return nil, ErrInvalidReactionKind
	}

	exists, err := s.postRepo.Exists(postID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrPostNotFound
	}

	result, err := s.reactionRepo.Toggle(userID, postID, reactionKind)
	if repository.IsDuplicateKey(err) {
		// a concurrent toggle from the same user won the insert; the
		// invariant held, so re-run the read-modify-write once
		s.logger.Info("reaction toggle lost insert race, retrying",
			"user_id", userID, "post_id", postID)
		result, err = s.reactionRepo.Toggle(userID, postID, reactionKind)
		if repository.IsDuplicateKey(err) {
			return nil, ErrReactionConflict
		}
	}
	if err != nil {
		return nil, err
	}

	if err := s.cache.Invalidate(ctx, postID); err != nil {
		s.logger.Warn("failed to invalidate reaction cache", "post_id", postID, "error", err)
	}

	outcome := &ToggleOutcome{Action: result.Action, OldKind: result.OldKind}
	if result.Reaction != nil {
		outcome.Reaction = dto.FromModelToReactionResponse(result.Reaction)
	}
	return outcome, nil
}

func (s *reactionService) GetReactions(ctx context.Context, postID int64) ([]dto.ReactionSummaryResponse, error) {
	exists, err := s.postRepo.Exists(postID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrPostNotFound
	}

	if summaries, ok := s.cache.Get(ctx, postID); ok {
		return dto.FromModelToSummaryResponses(summaries), nil
	}

	summaries, err := s.reactionRepo.GetSummaries(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []dto.ReactionSummaryResponse{}, nil
		}
		return nil, err
	}

	if err := s.cache.Set(ctx, postID, summaries); err != nil {
		s.logger.Warn("failed to cache reaction summaries", "post_id", postID, "error", err)
	}

	return dto.FromModelToSummaryResponses(summaries), nil
}
