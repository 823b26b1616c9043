package handler

import (
	"errors"
	"net/http"
	"strconv"

	"labvote/internal/http-api/dto"
	"labvote/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	ratingService service.RatingService
}

func NewRatingHandler(ratingService service.RatingService) *RatingHandler {
	return &RatingHandler{
		ratingService: ratingService,
	}
}

// RegisterRoutes registers rating-related routes
func (h *RatingHandler) RegisterRoutes(router *gin.RouterGroup) {
	presentations := router.Group("/presentations/:id")
	{
		presentations.POST("/rate", h.Rate)
		presentations.POST("/my-rating", h.MyRating)
	}
}

// Rate creates or overwrites the user's rating for a presentation
// POST /api/presentations/:id/rate
func (h *RatingHandler) Rate(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid presentation ID"})
		return
	}

	var req dto.CreateRatingDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be an integer between 1 and 5"})
		return
	}
	if req.UserIdentifier == "" || req.Rating == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_identifier and rating are required"})
		return
	}
	if *req.Rating < 1 || *req.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be an integer between 1 and 5"})
		return
	}

	presentation, err := h.ratingService.Rate(id, req.UserIdentifier, *req.Rating)
	if err != nil {
		if errors.Is(err, service.ErrPresentationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Presentation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, presentation)
}

// MyRating returns the caller's rating for a presentation, null if none
// POST /api/presentations/:id/my-rating
func (h *RatingHandler) MyRating(c *gin.Context) {
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

	rating, err := h.ratingService.MyRating(id, req.UserIdentifier)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.MyRatingResponse{Rating: rating})
}
