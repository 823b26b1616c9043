package models

import "time"

type Week struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	WeekID    string    `json:"week_id" gorm:"uniqueIndex;size:20;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	Presentations []Presentation `json:"presentations,omitempty" gorm:"foreignKey:WeekDBID"`
}

func (Week) TableName() string {
	return "weeks"
}
