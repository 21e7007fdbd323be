package request_models

type CheckInRequest struct {
	Mood  string `json:"mood" binding:"required"`
	Notes string `json:"notes"`
}
