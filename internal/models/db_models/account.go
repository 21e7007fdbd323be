package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AccountStatus string

const (
	AccountStatusWaitlist AccountStatus = "WAITLIST"
	AccountStatusApproved AccountStatus = "APPROVED"
	AccountStatusRejected AccountStatus = "REJECTED"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type Account struct {
	BaseModel
	Name         string        `gorm:"size:100;not null"`
	Surname      string        `gorm:"size:100;not null"`
	Email        string        `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string        `gorm:"size:255;not null" json:"-"`
	Role         string        `gorm:"size:20;not null;default:'user';index"`
	Status       AccountStatus `gorm:"type:varchar(20);not null;default:'WAITLIST';index"`
	ApprovedAt   *time.Time
	ApprovedBy   *uuid.UUID `gorm:"type:uuid"`

	SelectedAvatar string `gorm:"size:100"`
	SelectedVoice  string `gorm:"size:100"`
	VoiceSettings  datatypes.JSON
	LastSeen       *time.Time
}

func (a *Account) FullName() string {
	if a.Surname == "" {
		return a.Name
	}
	return a.Name + " " + a.Surname
}

func (a *Account) IsAdmin() bool {
	return a.Role == RoleAdmin && a.Status == AccountStatusApproved
}
