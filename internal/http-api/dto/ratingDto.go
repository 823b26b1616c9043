package dto

// CreateRatingDTO for creating or updating a rating. Rating is a pointer
// so the handler can tell a missing field from a zero value.
type CreateRatingDTO struct {
	UserIdentifier string `json:"user_identifier"`
	Rating         *int   `json:"rating"`
}

// MyRatingResponse for returning a user's own rating; Rating is null when
// the user has not rated the presentation
type MyRatingResponse struct {
	Rating *int `json:"rating"`
}
