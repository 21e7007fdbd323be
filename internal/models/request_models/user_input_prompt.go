package request_models

// ConversationTurn is one prior exchange in a companion conversation.
type ConversationTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ConversationRequest struct {
	Message             string             `json:"message"`
	ConversationHistory []ConversationTurn `json:"conversationHistory"`
}

type SpeechRequest struct {
	Text  string `json:"text" binding:"required"`
	Voice string `json:"voice"`
}
