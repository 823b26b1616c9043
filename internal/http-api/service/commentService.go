package service

import (
	"errors"
	"strings"

	"labvote/internal/http-api/dto"
	"labvote/internal/http-api/models"
	"labvote/internal/http-api/repository"

	"gorm.io/gorm"
)

type CommentService interface {
	Add(presentationID int64, userIdentifier, username, text string) (*dto.CommentResponse, error)
	List(presentationID int64) ([]dto.CommentResponse, error)
	Delete(commentID int64, userIdentifier string) error
}

type commentService struct {
	commentRepo      repository.CommentRepository
	presentationRepo repository.PresentationRepository
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	presentationRepo repository.PresentationRepository,
) CommentService {
	return &commentService{
		commentRepo:      commentRepo,
		presentationRepo: presentationRepo,
	}
}

// Add stores a comment against the presentation. The text is trimmed and
// must not be empty afterwards.
func (s *commentService) Add(presentationID int64, userIdentifier, username, text string) (*dto.CommentResponse, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyComment
	}

	if _, err := s.presentationRepo.GetByID(presentationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPresentationNotFound
		}
		return nil, err
	}

	comment := &models.Comment{
		PresentationID: presentationID,
		UserIdentifier: userIdentifier,
		Username:       username,
		CommentText:    text,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	return dto.FromModelToCommentResponse(comment), nil
}

// List retrieves the comments of a presentation, newest first
func (s *commentService) List(presentationID int64) ([]dto.CommentResponse, error) {
	if _, err := s.presentationRepo.GetByID(presentationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPresentationNotFound
		}
		return nil, err
	}

	comments, err := s.commentRepo.GetByPresentation(presentationID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		responses = append(responses, *dto.FromModelToCommentResponse(&comments[i]))
	}
	return responses, nil
}

// Delete removes a comment; only its author may do so
func (s *commentService) Delete(commentID int64, userIdentifier string) error {
	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}

	if comment.UserIdentifier != userIdentifier {
		return ErrNotCommentAuthor
	}
	return s.commentRepo.Delete(comment)
}
