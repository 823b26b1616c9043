package service

import (
	"errors"

	"labvote/internal/http-api/dto"
	"labvote/internal/http-api/models"
	"labvote/internal/http-api/repository"

	"gorm.io/gorm"
)

type WeekService interface {
	ListWeeks() (map[string]dto.WeekPresentations, error)
	CreateWeek(label string) (*dto.WeekResponse, error)
	DeleteWeek(label string) error
	ResetVotes(label string) error
}

type weekService struct {
	weekRepo    repository.WeekRepository
	voteRepo    repository.VoteRepository
	ratingRepo  repository.RatingRepository
	commentRepo repository.CommentRepository
}

func NewWeekService(
	weekRepo repository.WeekRepository,
	voteRepo repository.VoteRepository,
	ratingRepo repository.RatingRepository,
	commentRepo repository.CommentRepository,
) WeekService {
	return &weekService{
		weekRepo:    weekRepo,
		voteRepo:    voteRepo,
		ratingRepo:  ratingRepo,
		commentRepo: commentRepo,
	}
}

// ListWeeks returns every week keyed by its label, each with its
// presentations in creation order
func (s *weekService) ListWeeks() (map[string]dto.WeekPresentations, error) {
	weeks, err := s.weekRepo.GetAll()
	if err != nil {
		return nil, err
	}

	result := make(map[string]dto.WeekPresentations, len(weeks))
	for i := range weeks {
		week := &weeks[i]
		presentations := make([]dto.PresentationResponse, 0, len(week.Presentations))
		for j := range week.Presentations {
			resp, err := newPresentationResponse(&week.Presentations[j], week.WeekID, s.ratingRepo, s.commentRepo)
			if err != nil {
				return nil, err
			}
			presentations = append(presentations, *resp)
		}
		result[week.WeekID] = dto.WeekPresentations{Presentations: presentations}
	}
	return result, nil
}

// CreateWeek creates a week with the given label
func (s *weekService) CreateWeek(label string) (*dto.WeekResponse, error) {
	week := &models.Week{WeekID: label}
	if err := s.weekRepo.Create(week); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrWeekExists
		}
		return nil, err
	}

	return &dto.WeekResponse{
		ID:            week.ID,
		WeekID:        week.WeekID,
		CreatedAt:     week.CreatedAt,
		Presentations: []dto.PresentationResponse{},
	}, nil
}

// DeleteWeek removes a week and, through the cascades, all its
// presentations with their votes, ratings and comments
func (s *weekService) DeleteWeek(label string) error {
	week, err := s.weekRepo.GetByLabel(label)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrWeekNotFound
		}
		return err
	}
	return s.weekRepo.Delete(week)
}

// ResetVotes clears every vote of the week's presentations and zeroes
// their counters. Resetting an unknown or empty week is a no-op.
func (s *weekService) ResetVotes(label string) error {
	week, err := s.weekRepo.GetByLabel(label)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return s.voteRepo.ResetForWeek(week.ID)
}
