package repository

import (
	"labvote/internal/http-api/models"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByID(commentID int64) (*models.Comment, error)
	GetByPresentation(presentationID int64) ([]models.Comment, error)
	Delete(comment *models.Comment) error
	CountByPresentation(presentationID int64) (int64, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create a new comment
func (r *commentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// GetByID retrieves a comment by its ID
func (r *commentRepository) GetByID(commentID int64) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.Where("id = ?", commentID).First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetByPresentation retrieves all comments for a presentation, newest first
func (r *commentRepository) GetByPresentation(presentationID int64) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("presentation_id = ?", presentationID).
		Order("created_at DESC, id DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// Delete removes a comment
func (r *commentRepository) Delete(comment *models.Comment) error {
	return r.db.Delete(comment).Error
}

// CountByPresentation counts the comments of a presentation
func (r *commentRepository) CountByPresentation(presentationID int64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Comment{}).Where("presentation_id = ?", presentationID).Count(&count).Error
	return count, err
}
