package response_models

import (
	"time"

	"github.com/google/uuid"
)

type MessageResponse struct {
	ID         uuid.UUID             `json:"id"`
	FromUserID uuid.UUID             `json:"fromUserId"`
	ToUserID   uuid.UUID             `json:"toUserId"`
	Content    string                `json:"content"`
	IsRead     bool                  `json:"isRead"`
	ReadAt     *time.Time            `json:"readAt"`
	CreatedAt  time.Time             `json:"createdAt"`
	FromUser   PublicAccountResponse `json:"fromUser"`
	ToUser     PublicAccountResponse `json:"toUser"`
}

type UnreadCount struct {
	FriendID uuid.UUID `json:"friendId"`
	Count    int64     `json:"count"`
}

type AlertResponse struct {
	ID         uuid.UUID `json:"id"`
	FromUserID uuid.UUID `json:"fromUserId"`
	ToUserID   uuid.UUID `json:"toUserId"`
	Emotion    string    `json:"emotion"`
	Intensity  int       `json:"intensity"`
	Message    string    `json:"message"`
	IsRead     bool      `json:"isRead"`
	CreatedAt  time.Time `json:"createdAt"`
}

type SendAlertResponse struct {
	AlertsSent int             `json:"alertsSent"`
	Failed     int             `json:"failed"`
	Alerts     []AlertResponse `json:"alerts"`
}
