package models

import "time"

// Session is an owned collection of interview questions plus the
// generation parameters used to produce them.
//
// Questions insertion order is append order and must be preserved:
// the list reflects generation batches, and "load more" places new
// batches after everything already there.
type Session struct {
	ID            string `gorm:"primaryKey;size:64"` // UUID
	UserID        uint   `gorm:"index;not null"`
	Role          string `gorm:"size:128;not null"`
	Experience    string `gorm:"size:64;not null"`
	TopicsToFocus string `gorm:"size:255;not null"`
	Description   string `gorm:"type:text"`

	// ordered by id ascending = insertion order
	Questions []Question `gorm:"constraint:OnDelete:CASCADE"`

	// updated by Touch only; not part of the record's audit trail
	LastAccessedAt time.Time `gorm:"index"`

	CreatedAt time.Time
	UpdatedAt time.Time

	User User `gorm:"constraint:OnDelete:CASCADE"`
}
