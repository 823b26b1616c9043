package models

import "time"

type Presentation struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	WeekDBID  int64     `json:"-" gorm:"column:week_db_id;not null;index"`
	Title     string    `json:"title" gorm:"size:200;not null"`
	Presenter string    `json:"presenter" gorm:"size:100;not null"`
	Votes     int       `json:"votes" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	Week        Week      `json:"-" gorm:"foreignKey:WeekDBID;constraint:OnDelete:CASCADE;"`
	VoteRecords []Vote    `json:"-" gorm:"foreignKey:PresentationID"`
	Ratings     []Rating  `json:"-" gorm:"foreignKey:PresentationID"`
	Comments    []Comment `json:"-" gorm:"foreignKey:PresentationID"`
}

func (Presentation) TableName() string {
	return "presentations"
}
