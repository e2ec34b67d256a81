package handler

import (
	"errors"
	"net/http"
	"strconv"

	"blogify/internal/http-api/dto"
	"blogify/internal/http-api/repository"
	"blogify/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type ReactionHandler struct {
	reactionService service.ReactionService
}

func NewReactionHandler(reactionService service.ReactionService) *ReactionHandler {
	return &ReactionHandler{reactionService: reactionService}
}

// RegisterRoutes registers reaction routes. Reading summaries is public,
// toggling requires a bearer token.
func (h *ReactionHandler) RegisterRoutes(public, authed *gin.RouterGroup) {
	public.GET("/:post_id/reactions", h.List)
	authed.POST("/:post_id/react", h.Toggle)
}

// List retrieves the per-kind reaction summaries for a post
// GET /api/posts/:post_id/reactions
func (h *ReactionHandler) List(c *gin.Context) {
	postID, err := strconv.ParseInt(c.Param("post_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	summaries, err := h.reactionService.GetReactions(c.Request.Context(), postID)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summaries)
}

// Toggle cycles the caller's reaction on a post through add/replace/remove
// POST /api/posts/:post_id/react
func (h *ReactionHandler) Toggle(c *gin.Context) {
	postID, err := strconv.ParseInt(c.Param("post_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req dto.ToggleReactionDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	outcome, err := h.reactionService.ToggleReaction(c.Request.Context(), userID.(string), postID, req.Kind)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidReactionKind):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrPostNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrReactionConflict):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	switch outcome.Action {
	case repository.ToggleAdded:
		c.JSON(http.StatusCreated, outcome.Reaction)
	case repository.ToggleRemoved:
		c.JSON(http.StatusOK, gin.H{"message": "reaction removed"})
	default: // replaced
		c.JSON(http.StatusOK, outcome.Reaction)
	}
}
