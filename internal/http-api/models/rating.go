package models

import "time"

type Rating struct {
	ID             int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	PresentationID int64     `json:"presentation_id" gorm:"not null;index;uniqueIndex:uq_rating_user_presentation"`
	UserIdentifier string    `json:"user_identifier" gorm:"size:100;not null;uniqueIndex:uq_rating_user_presentation"`
	Rating         int       `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	Presentation Presentation `json:"-" gorm:"foreignKey:PresentationID;constraint:OnDelete:CASCADE;"`
}

func (Rating) TableName() string {
	return "ratings"
}
