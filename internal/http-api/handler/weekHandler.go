package handler

import (
	"errors"
	"net/http"

	"labvote/internal/http-api/dto"
	"labvote/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type WeekHandler struct {
	weekService service.WeekService
}

func NewWeekHandler(weekService service.WeekService) *WeekHandler {
	return &WeekHandler{
		weekService: weekService,
	}
}

// RegisterRoutes registers week-related routes
func (h *WeekHandler) RegisterRoutes(router *gin.RouterGroup) {
	weeks := router.Group("/weeks")
	{
		weeks.GET("", h.List)
		weeks.POST("", h.Create)
		weeks.DELETE("/:week_id", h.Delete)
		weeks.POST("/:week_id/reset-votes", h.ResetVotes)
	}
}

// List returns all weeks with their presentations
// GET /api/weeks
func (h *WeekHandler) List(c *gin.Context) {
	weeks, err := h.weekService.ListWeeks()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, weeks)
}

// Create creates a new week
// POST /api/weeks
func (h *WeekHandler) Create(c *gin.Context) {
	var req dto.CreateWeekDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "week_id is required"})
		return
	}

	week, err := h.weekService.CreateWeek(req.WeekID)
	if err != nil {
		if errors.Is(err, service.ErrWeekExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Week already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, week)
}

// Delete removes a week and all its presentations
// DELETE /api/weeks/:week_id
func (h *WeekHandler) Delete(c *gin.Context) {
	label := c.Param("week_id")

	if err := h.weekService.DeleteWeek(label); err != nil {
		if errors.Is(err, service.ErrWeekNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Week not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Week deleted"})
}

// ResetVotes clears all votes in a week
// POST /api/weeks/:week_id/reset-votes
func (h *WeekHandler) ResetVotes(c *gin.Context) {
	label := c.Param("week_id")

	if err := h.weekService.ResetVotes(label); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Votes reset for week"})
}
