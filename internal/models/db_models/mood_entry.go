package db_models

import (
	"time"

	"github.com/google/uuid"
)

// MoodEntry is unique per user and local calendar day (Day is YYYY-MM-DD).
type MoodEntry struct {
	BaseModel
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_mood_user_day,priority:1"`
	Day       string    `gorm:"size:10;not null;uniqueIndex:idx_mood_user_day,priority:2"`
	Mood      string    `gorm:"size:50;not null"`
	Notes     string    `gorm:"type:text"`
	Timestamp time.Time `gorm:"not null;index"`
}
