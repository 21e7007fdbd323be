package response_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"kindred/internal/models/db_models"
)

// AccountResponse is an account without its credential.
type AccountResponse struct {
	ID             uuid.UUID      `json:"id"`
	Name           string         `json:"name"`
	Surname        string         `json:"surname"`
	FullName       string         `json:"fullName"`
	Email          string         `json:"email"`
	Role           string         `json:"role"`
	Status         string         `json:"status"`
	ApprovedAt     *time.Time     `json:"approvedAt"`
	ApprovedBy     *uuid.UUID     `json:"approvedBy"`
	SelectedAvatar string         `json:"selectedAvatar,omitempty"`
	SelectedVoice  string         `json:"selectedVoice,omitempty"`
	VoiceSettings  datatypes.JSON `json:"voiceSettings,omitempty"`
	LastSeen       *time.Time     `json:"lastSeen"`
	CreatedAt      time.Time      `json:"createdAt"`
}

// PublicAccountResponse is what other users get to see.
type PublicAccountResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Surname        string    `json:"surname"`
	FullName       string    `json:"fullName"`
	SelectedAvatar string    `json:"selectedAvatar,omitempty"`
}

type LoginResponse struct {
	Token   string          `json:"token"`
	Account AccountResponse `json:"user"`
}

func NewAccountResponse(a *db_models.Account) AccountResponse {
	return AccountResponse{
		ID:             a.ID,
		Name:           a.Name,
		Surname:        a.Surname,
		FullName:       a.FullName(),
		Email:          a.Email,
		Role:           a.Role,
		Status:         string(a.Status),
		ApprovedAt:     a.ApprovedAt,
		ApprovedBy:     a.ApprovedBy,
		SelectedAvatar: a.SelectedAvatar,
		SelectedVoice:  a.SelectedVoice,
		VoiceSettings:  a.VoiceSettings,
		LastSeen:       a.LastSeen,
		CreatedAt:      a.CreatedAt,
	}
}

func NewAccountResponses(accounts []db_models.Account) []AccountResponse {
	out := make([]AccountResponse, 0, len(accounts))
	for i := range accounts {
		out = append(out, NewAccountResponse(&accounts[i]))
	}
	return out
}

func NewPublicAccountResponse(a *db_models.Account) PublicAccountResponse {
	return PublicAccountResponse{
		ID:             a.ID,
		Name:           a.Name,
		Surname:        a.Surname,
		FullName:       a.FullName(),
		SelectedAvatar: a.SelectedAvatar,
	}
}
