package db_models

import (
	"time"

	"github.com/google/uuid"
)

type Message struct {
	BaseModel
	FromUserID uuid.UUID `gorm:"type:uuid;not null;index:idx_messages_pair,priority:1"`
	ToUserID   uuid.UUID `gorm:"type:uuid;not null;index:idx_messages_pair,priority:2"`
	Content    string    `gorm:"type:text;not null"`
	IsRead     bool      `gorm:"not null;default:false"`
	ReadAt     *time.Time

	FromUser Account `gorm:"foreignKey:FromUserID"`
	ToUser   Account `gorm:"foreignKey:ToUserID"`
}
