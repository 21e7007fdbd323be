package response_models

import (
	"time"

	"github.com/google/uuid"
)

type FriendRequestResponse struct {
	ID         uuid.UUID `json:"id"`
	FromUserID uuid.UUID `json:"fromUserId"`
	ToUserID   uuid.UUID `json:"toUserId"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type FriendEntry struct {
	ID             uuid.UUID  `json:"id"`
	RequestID      uuid.UUID  `json:"requestId"`
	Name           string     `json:"name"`
	Surname        string     `json:"surname"`
	FullName       string     `json:"fullName"`
	SelectedAvatar string     `json:"selectedAvatar,omitempty"`
	IsOnline       bool       `json:"isOnline"`
	LastSeen       *time.Time `json:"lastSeen"`
	FriendsSince   time.Time  `json:"friendsSince"`
}

// PendingEntry is a PENDING request seen from the caller's side; User is the other party.
type PendingEntry struct {
	RequestID uuid.UUID             `json:"requestId"`
	User      PublicAccountResponse `json:"user"`
	CreatedAt time.Time             `json:"createdAt"`
}

type FriendListResponse struct {
	Friends          []FriendEntry  `json:"friends"`
	SentRequests     []PendingEntry `json:"sentRequests"`
	ReceivedRequests []PendingEntry `json:"receivedRequests"`
}
