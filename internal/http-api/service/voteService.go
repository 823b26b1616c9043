package service

import (
	"errors"

	"labvote/internal/http-api/dto"
	"labvote/internal/http-api/models"
	"labvote/internal/http-api/repository"

	"gorm.io/gorm"
)

type VoteService interface {
	Cast(presentationID int64, userIdentifier, username string) (*dto.PresentationResponse, error)
	HasVoted(presentationID int64, userIdentifier string) (bool, error)
	UserVotes(userIdentifier string) ([]int64, error)
	ListVotes(presentationID int64) ([]dto.VoteResponse, error)
}

type voteService struct {
	voteRepo         repository.VoteRepository
	presentationRepo repository.PresentationRepository
	ratingRepo       repository.RatingRepository
	commentRepo      repository.CommentRepository
}

func NewVoteService(
	voteRepo repository.VoteRepository,
	presentationRepo repository.PresentationRepository,
	ratingRepo repository.RatingRepository,
	commentRepo repository.CommentRepository,
) VoteService {
	return &voteService{
		voteRepo:         voteRepo,
		presentationRepo: presentationRepo,
		ratingRepo:       ratingRepo,
		commentRepo:      commentRepo,
	}
}

// Cast records one vote by the user on the presentation. The unique index
// on (user_identifier, presentation_id) backs the duplicate check, so a
// concurrent double submission still ends up as ErrAlreadyVoted.
func (s *voteService) Cast(presentationID int64, userIdentifier, username string) (*dto.PresentationResponse, error) {
	if _, err := s.presentationRepo.GetByID(presentationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPresentationNotFound
		}
		return nil, err
	}

	_, err := s.voteRepo.GetByUserAndPresentation(userIdentifier, presentationID)
	if err == nil {
		return nil, ErrAlreadyVoted
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	vote := &models.Vote{
		PresentationID: presentationID,
		UserIdentifier: userIdentifier,
		Username:       username,
	}
	if err := s.voteRepo.Create(vote); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyVoted
		}
		return nil, err
	}

	// Reload for the updated counter
	presentation, err := s.presentationRepo.GetByID(presentationID)
	if err != nil {
		return nil, err
	}
	return newPresentationResponse(presentation, presentation.Week.WeekID, s.ratingRepo, s.commentRepo)
}

// HasVoted reports whether the user already voted on the presentation
func (s *voteService) HasVoted(presentationID int64, userIdentifier string) (bool, error) {
	_, err := s.voteRepo.GetByUserAndPresentation(userIdentifier, presentationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// UserVotes lists the IDs of the presentations the user voted for
func (s *voteService) UserVotes(userIdentifier string) ([]int64, error) {
	votes, err := s.voteRepo.GetByUser(userIdentifier)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(votes))
	for _, vote := range votes {
		ids = append(ids, vote.PresentationID)
	}
	return ids, nil
}

// ListVotes retrieves the votes of a presentation, newest first, with
// display names
func (s *voteService) ListVotes(presentationID int64) ([]dto.VoteResponse, error) {
	votes, err := s.voteRepo.GetByPresentation(presentationID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.VoteResponse, 0, len(votes))
	for i := range votes {
		responses = append(responses, *dto.FromModelToVoteResponse(&votes[i]))
	}
	return responses, nil
}
