package models

import "time"

type Comment struct {
	ID             int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	PresentationID int64     `json:"presentation_id" gorm:"not null;index"`
	UserIdentifier string    `json:"user_identifier" gorm:"size:100;not null;index"`
	Username       string    `json:"username" gorm:"size:100"`
	CommentText    string    `json:"comment_text" gorm:"type:text;not null"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	Presentation Presentation `json:"-" gorm:"foreignKey:PresentationID;constraint:OnDelete:CASCADE;"`
}

func (Comment) TableName() string {
	return "comments"
}
