package response_models

import "kindred/internal/models/request_models"

type ConversationResponse struct {
	Reply               string                            `json:"reply"`
	ConversationHistory []request_models.ConversationTurn `json:"conversationHistory"`
}
