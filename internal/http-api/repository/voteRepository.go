package repository

import (
	"labvote/internal/http-api/models"

	"gorm.io/gorm"
)

type VoteRepository interface {
	Create(vote *models.Vote) error
	GetByUserAndPresentation(userIdentifier string, presentationID int64) (*models.Vote, error)
	GetByPresentation(presentationID int64) ([]models.Vote, error)
	GetByUser(userIdentifier string) ([]models.Vote, error)
	ResetForWeek(weekDBID int64) error
	CountByPresentation(presentationID int64) (int64, error)
}

type voteRepository struct {
	db *gorm.DB
}

func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &voteRepository{db: db}
}

// Create inserts the vote and bumps the denormalized counter on the
// presentation in the same transaction, so the counter cannot drift from
// the vote rows under concurrent submissions.
func (r *voteRepository) Create(vote *models.Vote) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(vote).Error; err != nil {
			return err
		}
		return tx.Model(&models.Presentation{}).
			Where("id = ?", vote.PresentationID).
			UpdateColumn("votes", gorm.Expr("votes + 1")).Error
	})
}

// GetByUserAndPresentation retrieves a user's vote for a presentation
func (r *voteRepository) GetByUserAndPresentation(userIdentifier string, presentationID int64) (*models.Vote, error) {
	var vote models.Vote
	err := r.db.Where("user_identifier = ? AND presentation_id = ?", userIdentifier, presentationID).
		First(&vote).Error
	if err != nil {
		return nil, err
	}
	return &vote, nil
}

// GetByPresentation retrieves all votes for a presentation, newest first
func (r *voteRepository) GetByPresentation(presentationID int64) ([]models.Vote, error) {
	var votes []models.Vote
	err := r.db.Where("presentation_id = ?", presentationID).
		Order("created_at DESC, id DESC").
		Find(&votes).Error
	if err != nil {
		return nil, err
	}
	return votes, nil
}

// GetByUser retrieves all votes cast by a user
func (r *voteRepository) GetByUser(userIdentifier string) ([]models.Vote, error) {
	var votes []models.Vote
	err := r.db.Where("user_identifier = ?", userIdentifier).
		Order("created_at ASC, id ASC").
		Find(&votes).Error
	if err != nil {
		return nil, err
	}
	return votes, nil
}

// ResetForWeek deletes every vote of the week's presentations and zeroes
// their counters in one transaction
func (r *voteRepository) ResetForWeek(weekDBID int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		sub := tx.Model(&models.Presentation{}).Select("id").Where("week_db_id = ?", weekDBID)
		if err := tx.Where("presentation_id IN (?)", sub).Delete(&models.Vote{}).Error; err != nil {
			return err
		}
		return tx.Model(&models.Presentation{}).
			Where("week_db_id = ?", weekDBID).
			UpdateColumn("votes", 0).Error
	})
}

// CountByPresentation counts the vote rows of a presentation
func (r *voteRepository) CountByPresentation(presentationID int64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Vote{}).Where("presentation_id = ?", presentationID).Count(&count).Error
	return count, err
}
