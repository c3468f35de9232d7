package models

import "time"

type Feedback struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Username       string    `gorm:"type:varchar(50);not null" json:"username"`
	Rating         int       `gorm:"not null" json:"rating"`
	Comments       string    `gorm:"type:text" json:"comments"`
	SubmissionDate time.Time `gorm:"not null" json:"submissionDate"`
}

func (Feedback) TableName() string {
	return "feedback"
}
