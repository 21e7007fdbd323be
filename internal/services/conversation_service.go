package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"kindred/internal/models/request_models"
	"kindred/internal/models/response_models"
	"kindred/pkg/utils"
)

const (
	roleUser      = "user"
	roleAssistant = "assistant"
)

const companionSystemPrompt = `You are Kindred, a warm and patient emotional-support companion.
Listen carefully, reflect feelings back in plain language, and ask gentle follow-up questions.
Keep replies short and conversational. Do not diagnose or prescribe.
If the user mentions self-harm or being in danger, encourage them to contact local emergency services or a crisis line.`

type ConversationServiceInterface interface {
	Converse(ctx context.Context, request request_models.ConversationRequest) (*response_models.ConversationResponse, error)
}

type ConversationService struct {
	client      utils.ChatCompletionClient
	maxTokens   int
	temperature float32
	log         *zap.Logger
}

func NewConversationService(client utils.ChatCompletionClient, maxTokens int, temperature float32, log *zap.Logger) *ConversationService {
	return &ConversationService{
		client:      client,
		maxTokens:   maxTokens,
		temperature: temperature,
		log:         log,
	}
}

// Converse sends the prior turns plus the new message to the provider. Only user
// and assistant turns are forwarded.
func (s *ConversationService) Converse(ctx context.Context, request request_models.ConversationRequest) (*response_models.ConversationResponse, error) {
	message := strings.TrimSpace(request.Message)
	if message == "" {
		return nil, utils.NewValidationError("message is required")
	}

	history := FilterHistory(request.ConversationHistory)

	reply, err := s.client.Complete(ctx, utils.CompletionRequest{
		SystemPrompt: companionSystemPrompt,
		History:      history,
		Message:      message,
		MaxTokens:    s.maxTokens,
		Temperature:  s.temperature,
	})
	if err != nil {
		s.log.Error("completion provider failed", zap.Error(err))
		return nil, utils.ErrAIUnavailable
	}
	reply = strings.TrimSpace(reply)
	if reply == "" {
		s.log.Warn("completion provider returned no content")
		return nil, utils.ErrAIUnavailable
	}

	updated := make([]request_models.ConversationTurn, 0, len(history)+2)
	updated = append(updated, history...)
	updated = append(updated,
		request_models.ConversationTurn{Role: roleUser, Content: message},
		request_models.ConversationTurn{Role: roleAssistant, Content: reply},
	)

	return &response_models.ConversationResponse{
		Reply:               reply,
		ConversationHistory: updated,
	}, nil
}

// FilterHistory drops turns with unknown roles or empty content.
func FilterHistory(turns []request_models.ConversationTurn) []request_models.ConversationTurn {
	out := make([]request_models.ConversationTurn, 0, len(turns))
	for _, t := range turns {
		role := strings.ToLower(strings.TrimSpace(t.Role))
		if role != roleUser && role != roleAssistant {
			continue
		}
		if strings.TrimSpace(t.Content) == "" {
			continue
		}
		out = append(out, request_models.ConversationTurn{Role: role, Content: t.Content})
	}
	return out
}
