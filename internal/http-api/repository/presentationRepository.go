package repository

import (
	"labvote/internal/http-api/models"

	"gorm.io/gorm"
)

type PresentationRepository interface {
	Create(presentation *models.Presentation) error
	GetByID(id int64) (*models.Presentation, error)
	Delete(presentation *models.Presentation) error
}

type presentationRepository struct {
	db *gorm.DB
}

func NewPresentationRepository(db *gorm.DB) PresentationRepository {
	return &presentationRepository{db: db}
}

// Create a new presentation
func (r *presentationRepository) Create(presentation *models.Presentation) error {
	return r.db.Create(presentation).Error
}

// GetByID retrieves a presentation with its week
func (r *presentationRepository) GetByID(id int64) (*models.Presentation, error) {
	var presentation models.Presentation
	err := r.db.Where("id = ?", id).
		Preload("Week").
		First(&presentation).Error
	if err != nil {
		return nil, err
	}
	return &presentation, nil
}

// Delete removes a presentation; its votes, ratings and comments are
// removed by the foreign-key cascades
func (r *presentationRepository) Delete(presentation *models.Presentation) error {
	return r.db.Delete(presentation).Error
}
