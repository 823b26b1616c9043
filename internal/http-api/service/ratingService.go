package service

import (
	"errors"

	"labvote/internal/http-api/dto"
	"labvote/internal/http-api/models"
	"labvote/internal/http-api/repository"

	"gorm.io/gorm"
)

type RatingService interface {
	Rate(presentationID int64, userIdentifier string, value int) (*dto.PresentationResponse, error)
	MyRating(presentationID int64, userIdentifier string) (*int, error)
}

type ratingService struct {
	ratingRepo       repository.RatingRepository
	presentationRepo repository.PresentationRepository
	commentRepo      repository.CommentRepository
}

func NewRatingService(
	ratingRepo repository.RatingRepository,
	presentationRepo repository.PresentationRepository,
	commentRepo repository.CommentRepository,
) RatingService {
	return &ratingService{
		ratingRepo:       ratingRepo,
		presentationRepo: presentationRepo,
		commentRepo:      commentRepo,
	}
}

// Rate creates or overwrites the user's rating for the presentation.
// Upsert semantics: rating again replaces the prior value, never adds a row.
func (s *ratingService) Rate(presentationID int64, userIdentifier string, value int) (*dto.PresentationResponse, error) {
	presentation, err := s.presentationRepo.GetByID(presentationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPresentationNotFound
		}
		return nil, err
	}

	existing, err := s.ratingRepo.GetByUserAndPresentation(userIdentifier, presentationID)
	switch {
	case err == nil:
		existing.Rating = value
		if err := s.ratingRepo.Update(existing); err != nil {
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		rating := &models.Rating{
			PresentationID: presentationID,
			UserIdentifier: userIdentifier,
			Rating:         value,
		}
		if err := s.ratingRepo.Create(rating); err != nil {
			// A concurrent insert for the same pair won the race; the
			// unique index turned ours into a duplicate, so overwrite.
			if !errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, err
			}
			existing, err := s.ratingRepo.GetByUserAndPresentation(userIdentifier, presentationID)
			if err != nil {
				return nil, err
			}
			existing.Rating = value
			if err := s.ratingRepo.Update(existing); err != nil {
				return nil, err
			}
		}
	default:
		return nil, err
	}

	return newPresentationResponse(presentation, presentation.Week.WeekID, s.ratingRepo, s.commentRepo)
}

// MyRating returns the user's rating for the presentation, or nil when the
// user has not rated it
func (s *ratingService) MyRating(presentationID int64, userIdentifier string) (*int, error) {
	rating, err := s.ratingRepo.GetByUserAndPresentation(userIdentifier, presentationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rating.Rating, nil
}
