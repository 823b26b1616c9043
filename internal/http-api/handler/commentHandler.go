package handler

import (
	"errors"
	"net/http"
	"strconv"

	"labvote/internal/http-api/dto"
	"labvote/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// RegisterRoutes registers comment-related routes
func (h *CommentHandler) RegisterRoutes(router *gin.RouterGroup) {
	presentations := router.Group("/presentations/:id/comments")
	{
		presentations.POST("", h.Create)
		presentations.GET("", h.List)
	}
	router.DELETE("/comments/:id", h.Delete)
}

// Create adds a comment to a presentation
// POST /api/presentations/:id/comments
func (h *CommentHandler) Create(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid presentation ID"})
		return
	}

	var req dto.CreateCommentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_identifier and comment_text are required"})
		return
	}

	comment, err := h.commentService.Add(id, req.UserIdentifier, req.Username, req.CommentText)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyComment):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Comment cannot be empty"})
		case errors.Is(err, service.ErrPresentationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Presentation not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// List returns the comments of a presentation, newest first
// GET /api/presentations/:id/comments
func (h *CommentHandler) List(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid presentation ID"})
		return
	}

	comments, err := h.commentService.List(id)
	if err != nil {
		if errors.Is(err, service.ErrPresentationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Presentation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.CommentListResponse{Comments: comments})
}

// Delete removes a comment; only the author may delete their own comment
// DELETE /api/comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment ID"})
		return
	}

	var req dto.IdentifierDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_identifier is required"})
		return
	}

	if err := h.commentService.Delete(id, req.UserIdentifier); err != nil {
		switch {
		case errors.Is(err, service.ErrCommentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		case errors.Is(err, service.ErrNotCommentAuthor):
			c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted"})
}
