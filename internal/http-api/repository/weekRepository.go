package repository

import (
	"labvote/internal/http-api/models"

	"gorm.io/gorm"
)

type WeekRepository interface {
	Create(week *models.Week) error
	GetByLabel(label string) (*models.Week, error)
	GetOrCreate(label string) (*models.Week, error)
	GetAll() ([]models.Week, error)
	Delete(week *models.Week) error
}

type weekRepository struct {
	db *gorm.DB
}

func NewWeekRepository(db *gorm.DB) WeekRepository {
	return &weekRepository{db: db}
}

// Create a new week
func (r *weekRepository) Create(week *models.Week) error {
	return r.db.Create(week).Error
}

// GetByLabel retrieves a week by its human-readable label
func (r *weekRepository) GetByLabel(label string) (*models.Week, error) {
	var week models.Week
	err := r.db.Where("week_id = ?", label).First(&week).Error
	if err != nil {
		return nil, err
	}
	return &week, nil
}

// GetOrCreate returns the week with the given label, creating it first if
// it does not exist yet
func (r *weekRepository) GetOrCreate(label string) (*models.Week, error) {
	var week models.Week
	err := r.db.Where(models.Week{WeekID: label}).FirstOrCreate(&week).Error
	if err != nil {
		return nil, err
	}
	return &week, nil
}

// GetAll retrieves every week with its presentations in creation order
func (r *weekRepository) GetAll() ([]models.Week, error) {
	var weeks []models.Week
	err := r.db.
		Preload("Presentations", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		Order("created_at ASC").
		Find(&weeks).Error
	if err != nil {
		return nil, err
	}
	return weeks, nil
}

// Delete removes a week; presentations and their votes, ratings and
// comments go with it through the foreign-key cascades
func (r *weekRepository) Delete(week *models.Week) error {
	return r.db.Delete(week).Error
}
