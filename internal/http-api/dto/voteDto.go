package dto

import (
	"time"

	"labvote/internal/http-api/models"
)

// CastVoteDTO for voting on a presentation
type CastVoteDTO struct {
	UserIdentifier string `json:"user_identifier" binding:"required"`
	Username       string `json:"username"`
}

// IdentifierDTO carries just the opaque caller identity
type IdentifierDTO struct {
	UserIdentifier string `json:"user_identifier" binding:"required"`
}

// VoteResponse for returning vote information with display names
type VoteResponse struct {
	ID             int64     `json:"id"`
	PresentationID int64     `json:"presentation_id"`
	UserIdentifier string    `json:"user_identifier"`
	Username       string    `json:"username"`
	CreatedAt      time.Time `json:"created_at"`
}

// FromModelToVoteResponse converts a Vote model to VoteResponse DTO
func FromModelToVoteResponse(vote *models.Vote) *VoteResponse {
	username := vote.Username
	if username == "" {
		username = "Anonymous"
	}
	return &VoteResponse{
		ID:             vote.ID,
		PresentationID: vote.PresentationID,
		UserIdentifier: vote.UserIdentifier,
		Username:       username,
		CreatedAt:      vote.CreatedAt,
	}
}

// HasVotedResponse reports whether a user already voted on a presentation
type HasVotedResponse struct {
	HasVoted bool `json:"has_voted"`
}

// UserVotesResponse lists the presentations a user has voted for
type UserVotesResponse struct {
	VotedPresentations []int64 `json:"voted_presentations"`
}
