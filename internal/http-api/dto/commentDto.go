package dto

import (
	"time"

	"labvote/internal/http-api/models"
)

// CreateCommentDTO for adding a comment to a presentation
type CreateCommentDTO struct {
	UserIdentifier string `json:"user_identifier" binding:"required"`
	Username       string `json:"username"`
	CommentText    string `json:"comment_text" binding:"required"`
}

// CommentResponse for returning comment information
type CommentResponse struct {
	ID             int64     `json:"id"`
	PresentationID int64     `json:"presentation_id"`
	UserIdentifier string    `json:"user_identifier"`
	Username       string    `json:"username"`
	CommentText    string    `json:"comment_text"`
	CreatedAt      time.Time `json:"created_at"`
}

// FromModelToCommentResponse converts a Comment model to CommentResponse DTO
func FromModelToCommentResponse(comment *models.Comment) *CommentResponse {
	username := comment.Username
	if username == "" {
		username = "Anonymous"
	}
	return &CommentResponse{
		ID:             comment.ID,
		PresentationID: comment.PresentationID,
		UserIdentifier: comment.UserIdentifier,
		Username:       username,
		CommentText:    comment.CommentText,
		CreatedAt:      comment.CreatedAt,
	}
}

// CommentListResponse wraps the comments of a presentation
type CommentListResponse struct {
	Comments []CommentResponse `json:"comments"`
}
