package repository

import (
	"labvote/internal/http-api/models"

	"gorm.io/gorm"
)

type RatingRepository interface {
	Create(rating *models.Rating) error
	Update(rating *models.Rating) error
	GetByUserAndPresentation(userIdentifier string, presentationID int64) (*models.Rating, error)
	CalculateAverageRating(presentationID int64) (float64, error)
	CountRatings(presentationID int64) (int64, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// Create a new rating
func (r *ratingRepository) Create(rating *models.Rating) error {
	return r.db.Create(rating).Error
}

// Update an existing rating
func (r *ratingRepository) Update(rating *models.Rating) error {
	return r.db.Save(rating).Error
}

// GetByUserAndPresentation retrieves a user's rating for a presentation
func (r *ratingRepository) GetByUserAndPresentation(userIdentifier string, presentationID int64) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.Where("user_identifier = ? AND presentation_id = ?", userIdentifier, presentationID).
		First(&rating).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// CalculateAverageRating calculates the average rating for a presentation
func (r *ratingRepository) CalculateAverageRating(presentationID int64) (float64, error) {
	var avg struct {
		Average float64
	}

	err := r.db.Model(&models.Rating{}).
		Select("COALESCE(AVG(rating), 0) as average").
		Where("presentation_id = ?", presentationID).
		Scan(&avg).Error

	if err != nil {
		return 0, err
	}

	return avg.Average, nil
}

// CountRatings counts the total number of ratings for a presentation
func (r *ratingRepository) CountRatings(presentationID int64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Rating{}).Where("presentation_id = ?", presentationID).Count(&count).Error
	return count, err
}
