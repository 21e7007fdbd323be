package db_models

import "github.com/google/uuid"

type EmotionAlert struct {
	BaseModel
	FromUserID uuid.UUID `gorm:"type:uuid;not null;index"`
	ToUserID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Emotion    string    `gorm:"size:50;not null"`
	Intensity  int       `gorm:"not null"`
	Message    string    `gorm:"type:text;not null"`
	IsRead     bool      `gorm:"not null;default:false"`
}
