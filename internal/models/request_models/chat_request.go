package request_models

type SendMessageRequest struct {
	ToUserID string `json:"toUserId" binding:"required"`
	Content  string `json:"content" binding:"required"`
}

type SendAlertRequest struct {
	Emotion   string `json:"emotion" binding:"required"`
	Intensity int    `json:"intensity" binding:"required"`
}
