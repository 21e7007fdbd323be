package request_models

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SignUpRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Surname  string `json:"surname" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type UpdatePreferencesRequest struct {
	SelectedAvatar string                 `json:"selectedAvatar" binding:"required"`
	SelectedVoice  string                 `json:"selectedVoice" binding:"required"`
	VoiceSettings  map[string]interface{} `json:"voiceSettings"`
}

type ApproveUserRequest struct {
	UserID string `json:"userId" binding:"required"`
	Action string `json:"action" binding:"required"`
}
