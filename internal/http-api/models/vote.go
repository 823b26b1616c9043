package models

import "time"

type Vote struct {
	ID             int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	PresentationID int64     `json:"presentation_id" gorm:"not null;index;uniqueIndex:uq_vote_user_presentation"`
	UserIdentifier string    `json:"user_identifier" gorm:"size:100;not null;index;uniqueIndex:uq_vote_user_presentation"`
	Username       string    `json:"username" gorm:"size:100"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	Presentation Presentation `json:"-" gorm:"foreignKey:PresentationID;constraint:OnDelete:CASCADE;"`
}

func (Vote) TableName() string {
	return "votes"
}
