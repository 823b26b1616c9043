package service

import (
	"errors"

	"labvote/internal/http-api/dto"
	"labvote/internal/http-api/models"
	"labvote/internal/http-api/repository"

	"gorm.io/gorm"
)

type PresentationService interface {
	Add(weekLabel, title, presenter string) (*dto.PresentationResponse, error)
	Delete(id int64) error
}

type presentationService struct {
	presentationRepo repository.PresentationRepository
	weekRepo         repository.WeekRepository
	ratingRepo       repository.RatingRepository
	commentRepo      repository.CommentRepository
}

func NewPresentationService(
	presentationRepo repository.PresentationRepository,
	weekRepo repository.WeekRepository,
	ratingRepo repository.RatingRepository,
	commentRepo repository.CommentRepository,
) PresentationService {
	return &presentationService{
		presentationRepo: presentationRepo,
		weekRepo:         weekRepo,
		ratingRepo:       ratingRepo,
		commentRepo:      commentRepo,
	}
}

// Add creates a presentation under the named week, creating the week first
// when it does not exist yet
func (s *presentationService) Add(weekLabel, title, presenter string) (*dto.PresentationResponse, error) {
	week, err := s.weekRepo.GetOrCreate(weekLabel)
	if err != nil {
		return nil, err
	}

	presentation := &models.Presentation{
		WeekDBID:  week.ID,
		Title:     title,
		Presenter: presenter,
		Votes:     0,
	}
	if err := s.presentationRepo.Create(presentation); err != nil {
		return nil, err
	}

	return newPresentationResponse(presentation, week.WeekID, s.ratingRepo, s.commentRepo)
}

// Delete removes a presentation and, through the cascades, its votes,
// ratings and comments
func (s *presentationService) Delete(id int64) error {
	presentation, err := s.presentationRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPresentationNotFound
		}
		return err
	}
	return s.presentationRepo.Delete(presentation)
}
