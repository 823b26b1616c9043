package handler

import (
	"errors"
	"net/http"
	"strconv"

	"labvote/internal/http-api/dto"
	"labvote/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type PresentationHandler struct {
	presentationService service.PresentationService
}

func NewPresentationHandler(presentationService service.PresentationService) *PresentationHandler {
	return &PresentationHandler{
		presentationService: presentationService,
	}
}

// RegisterRoutes registers presentation-related routes
func (h *PresentationHandler) RegisterRoutes(router *gin.RouterGroup) {
	presentations := router.Group("/presentations")
	{
		presentations.POST("", h.Create)
		presentations.DELETE("/:id", h.Delete)
	}
}

// Create adds a presentation to a week, creating the week if needed
// POST /api/presentations
func (h *PresentationHandler) Create(c *gin.Context) {
	var req dto.CreatePresentationDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "week_id, title, and presenter are required"})
		return
	}

	presentation, err := h.presentationService.Add(req.WeekID, req.Title, req.Presenter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, presentation)
}

// Delete removes a presentation
// DELETE /api/presentations/:id
func (h *PresentationHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid presentation ID"})
		return
	}

	if err := h.presentationService.Delete(id); err != nil {
		if errors.Is(err, service.ErrPresentationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Presentation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Presentation deleted"})
}
