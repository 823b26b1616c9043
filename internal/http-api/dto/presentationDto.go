package dto

import "time"

// CreatePresentationDTO for adding a presentation to a week
type CreatePresentationDTO struct {
	WeekID    string `json:"week_id" binding:"required"`
	Title     string `json:"title" binding:"required"`
	Presenter string `json:"presenter" binding:"required"`
}

// PresentationResponse for returning presentation information with its
// aggregates (vote count, average rating, rating and comment counts)
type PresentationResponse struct {
	ID            int64     `json:"id"`
	WeekID        string    `json:"week_id"`
	Title         string    `json:"title"`
	Presenter     string    `json:"presenter"`
	Votes         int       `json:"votes"`
	AverageRating float64   `json:"average_rating"`
	RatingCount   int64     `json:"rating_count"`
	CommentCount  int64     `json:"comment_count"`
	CreatedAt     time.Time `json:"created_at"`
}
