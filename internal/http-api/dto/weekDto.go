package dto

import "time"

// CreateWeekDTO for creating a week
type CreateWeekDTO struct {
	WeekID string `json:"week_id" binding:"required"`
}

// WeekResponse for returning a week with its presentations
type WeekResponse struct {
	ID            int64                  `json:"id"`
	WeekID        string                 `json:"week_id"`
	CreatedAt     time.Time              `json:"created_at"`
	Presentations []PresentationResponse `json:"presentations"`
}

// WeekPresentations is one entry of the week-label keyed listing
type WeekPresentations struct {
	Presentations []PresentationResponse `json:"presentations"`
}
