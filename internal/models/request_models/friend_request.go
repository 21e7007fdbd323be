package request_models

type SendFriendRequest struct {
	ToUserID string `json:"toUserId"`
}

type RespondFriendRequest struct {
	RequestID string `json:"requestId" binding:"required"`
	Action    string `json:"action" binding:"required"`
}
