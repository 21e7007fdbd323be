package response_models

import (
	"time"

	"github.com/google/uuid"
)

type MoodEntryResponse struct {
	ID        uuid.UUID `json:"id"`
	Mood      string    `json:"mood"`
	Notes     string    `json:"notes,omitempty"`
	Day       string    `json:"day"`
	Timestamp time.Time `json:"timestamp"`
}

type TodayMoodResponse struct {
	HasCheckedIn bool               `json:"hasCheckedIn"`
	Entry        *MoodEntryResponse `json:"entry,omitempty"`
}

type MoodHistoryResponse struct {
	Range   string              `json:"range"`
	From    time.Time           `json:"from"`
	To      time.Time           `json:"to"`
	Entries []MoodEntryResponse `json:"entries"`
}
