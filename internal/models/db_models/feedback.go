package db_models

import (
	"github.com/google/uuid"
)

type FeedbackKind string

const (
	FeedbackKindFeedback  FeedbackKind = "feedback"
	FeedbackKindComplaint FeedbackKind = "complaint"
)

const (
	FeedbackStatusPending    = "pending"
	FeedbackStatusInProgress = "in_progress"
	FeedbackStatusResolved   = "resolved"
)

// Feedback stores both feedback and complaints; Kind tells them apart.
type Feedback struct {
	BaseModel
	UserID        uuid.UUID    `gorm:"type:uuid;not null;index"`
	Kind          FeedbackKind `gorm:"type:varchar(20);not null;default:'feedback';index"`
	Title         string       `gorm:"size:200;not null"`
	Description   string       `gorm:"type:text;not null"`
	Category      string       `gorm:"size:50;not null;default:'general'"`
	Priority      string       `gorm:"size:20;not null;default:'medium'"`
	Status        string       `gorm:"size:20;not null;default:'pending';index"`
	AdminResponse *string      `gorm:"type:text"`
}

type ContactMessage struct {
	BaseModel
	Name    string `gorm:"size:100;not null"`
	Email   string `gorm:"size:255;not null"`
	Subject string `gorm:"size:200"`
	Message string `gorm:"type:text;not null"`
}
