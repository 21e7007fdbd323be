package db_models

import (
	"github.com/google/uuid"
)

type FriendRequestStatus string

const (
	FriendRequestPending  FriendRequestStatus = "PENDING"
	FriendRequestAccepted FriendRequestStatus = "ACCEPTED"
	FriendRequestRejected FriendRequestStatus = "REJECTED"
)

// FriendRequest is authored by FromUser. PairKey is the same for both directions,
// so its unique index allows one row per unordered pair.
type FriendRequest struct {
	BaseModel
	FromUserID uuid.UUID           `gorm:"type:uuid;not null;index"`
	ToUserID   uuid.UUID           `gorm:"type:uuid;not null;index"`
	PairKey    string              `gorm:"size:80;not null;uniqueIndex"`
	Status     FriendRequestStatus `gorm:"type:varchar(20);not null;default:'PENDING'"`

	FromUser Account `gorm:"foreignKey:FromUserID"`
	ToUser   Account `gorm:"foreignKey:ToUserID"`
}

func PairKeyOf(a, b uuid.UUID) string {
	x, y := a.String(), b.String()
	if x > y {
		x, y = y, x
	}
	return x + ":" + y
}

// Other returns the account on the opposite side from userID.
func (f *FriendRequest) Other(userID uuid.UUID) Account {
	if f.FromUserID == userID {
		return f.ToUser
	}
	return f.FromUser
}
