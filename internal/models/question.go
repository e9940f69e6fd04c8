package models

import "time"

// Question is one generated Q&A pair inside a session. Question and
// answer text are immutable once stored; only the pin/review flags and
// the user note change afterwards.
type Question struct {
	ID        uint   `gorm:"primaryKey"`
	SessionID string `gorm:"index;size:64;not null"`
	Question  string `gorm:"type:text;not null"`
	Answer    string `gorm:"type:text;not null"`

	IsPinned   bool   `gorm:"not null;default:false"`
	IsReviewed bool   `gorm:"not null;default:false"`
	Note       string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
