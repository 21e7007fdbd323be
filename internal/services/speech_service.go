package services

import (
	"context"
	"encoding/json"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"kindred/internal/models/db_models"
	"kindred/internal/models/request_models"
	"kindred/internal/repositories"
	"kindred/pkg/utils"
)

const (
	defaultVoice   = "alloy"
	defaultSpeed   = 1.0
	minSpeed       = 0.25
	maxSpeed       = 4.0
	maxSpeechRunes = 4096
)

type SpeechServiceInterface interface {
	Synthesize(ctx context.Context, callerID uuid.UUID, request request_models.SpeechRequest) (io.ReadCloser, error)
}

type SpeechService struct {
	accountRepo repositories.AccountRepository
	client      utils.SpeechClient
	log         *zap.Logger
}

func NewSpeechService(accountRepo repositories.AccountRepository, client utils.SpeechClient, log *zap.Logger) *SpeechService {
	return &SpeechService{accountRepo: accountRepo, client: client, log: log}
}

// Synthesize speaks text in the requested voice, falling back to the caller's
// selected voice and then the default.
func (s *SpeechService) Synthesize(ctx context.Context, callerID uuid.UUID, request request_models.SpeechRequest) (io.ReadCloser, error) {
	text := strings.TrimSpace(request.Text)
	if text == "" {
		return nil, utils.NewValidationError("text is required")
	}
	if utf8.RuneCountInString(text) > maxSpeechRunes {
		return nil, utils.NewValidationError("text is too long")
	}

	account, err := s.accountRepo.FindById(ctx, callerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	audio, err := s.client.Synthesize(ctx, utils.SynthesisRequest{
		Text:  text,
		Voice: ResolveVoice(request.Voice, account),
		Speed: VoiceSpeed(account),
	})
	if err != nil {
		s.log.Error("speech provider failed", zap.Error(err))
		return nil, utils.ErrSpeechUnavailable
	}
	return audio, nil
}

func ResolveVoice(requested string, account *db_models.Account) string {
	if v := strings.TrimSpace(requested); v != "" {
		return v
	}
	if account != nil && account.SelectedVoice != "" {
		return account.SelectedVoice
	}
	return defaultVoice
}

// VoiceSpeed reads voiceSettings.speed, ignoring values outside the provider's range.
func VoiceSpeed(account *db_models.Account) float64 {
	if account == nil || len(account.VoiceSettings) == 0 {
		return defaultSpeed
	}
	var settings struct {
		Speed *float64 `json:"speed"`
	}
	if err := json.Unmarshal(account.VoiceSettings, &settings); err != nil || settings.Speed == nil {
		return defaultSpeed
	}
	if *settings.Speed < minSpeed || *settings.Speed > maxSpeed {
		return defaultSpeed
	}
	return *settings.Speed
}
