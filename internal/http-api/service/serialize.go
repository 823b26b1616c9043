package service

import (
	"math"

	"labvote/internal/http-api/dto"
	"labvote/internal/http-api/models"
	"labvote/internal/http-api/repository"
)

// newPresentationResponse builds the wire shape of a presentation. The
// rating average and the rating/comment counts are computed fresh on every
// call; the vote count is the denormalized counter on the row.
func newPresentationResponse(
	p *models.Presentation,
	weekLabel string,
	ratings repository.RatingRepository,
	comments repository.CommentRepository,
) (*dto.PresentationResponse, error) {
	avg, err := ratings.CalculateAverageRating(p.ID)
	if err != nil {
		return nil, err
	}
	ratingCount, err := ratings.CountRatings(p.ID)
	if err != nil {
		return nil, err
	}
	commentCount, err := comments.CountByPresentation(p.ID)
	if err != nil {
		return nil, err
	}

	return &dto.PresentationResponse{
		ID:            p.ID,
		WeekID:        weekLabel,
		Title:         p.Title,
		Presenter:     p.Presenter,
		Votes:         p.Votes,
		AverageRating: roundToTenth(avg),
		RatingCount:   ratingCount,
		CommentCount:  commentCount,
		CreatedAt:     p.CreatedAt,
	}, nil
}

// roundToTenth rounds to one decimal place, halves away from zero.
func roundToTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
