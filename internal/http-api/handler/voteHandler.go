package handler

import (
	"errors"
	"net/http"
	"strconv"

	"labvote/internal/http-api/dto"
	"labvote/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type VoteHandler struct {
	voteService service.VoteService
}

func NewVoteHandler(voteService service.VoteService) *VoteHandler {
	return &VoteHandler{
		voteService: voteService,
	}
}

// RegisterRoutes registers vote-related routes
func (h *VoteHandler) RegisterRoutes(router *gin.RouterGroup) {
	presentations := router.Group("/presentations/:id")
	{
		presentations.POST("/vote", h.Cast)
		presentations.POST("/has-voted", h.HasVoted)
		presentations.GET("/votes", h.ListVotes)
	}
	router.GET("/votes/:user_identifier", h.UserVotes)
}

// Cast records a vote on a presentation
// POST /api/presentations/:id/vote
func (h *VoteHandler) Cast(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid presentation ID"})
		return
	}

	var req dto.CastVoteDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_identifier is required"})
		return
	}

	presentation, err := h.voteService.Cast(id, req.UserIdentifier, req.Username)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPresentationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Presentation not found"})
		case errors.Is(err, service.ErrAlreadyVoted):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Already voted"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, presentation)
}

// HasVoted reports whether the user voted on the presentation
// POST /api/presentations/:id/has-voted
func (h *VoteHandler) HasVoted(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid presentation ID"})
		return
	}

	var req dto.IdentifierDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_identifier is required"})
		return
	}

	hasVoted, err := h.voteService.HasVoted(id, req.UserIdentifier)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.HasVotedResponse{HasVoted: hasVoted})
}

// ListVotes returns the votes of a presentation, newest first
// GET /api/presentations/:id/votes
func (h *VoteHandler) ListVotes(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid presentation ID"})
		return
	}

	votes, err := h.voteService.ListVotes(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"votes": votes})
}

// UserVotes lists the presentations a user has voted for
// GET /api/votes/:user_identifier
func (h *VoteHandler) UserVotes(c *gin.Context) {
	userIdentifier := c.Param("user_identifier")

	ids, err := h.voteService.UserVotes(userIdentifier)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.UserVotesResponse{VotedPresentations: ids})
}
