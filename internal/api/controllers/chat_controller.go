package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kindred/internal/models/request_models"
	"kindred/internal/services"
	"kindred/pkg/utils"
)

type ChatController struct {
	chatService services.ChatServiceInterface
}

func NewChatController(chatService services.ChatServiceInterface) *ChatController {
	return &ChatController{chatService: chatService}
}

// SendMessage godoc
// @Summary Message a friend
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body request_models.SendMessageRequest true "Recipient and content"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /chat/send-message [post]
func (ch *ChatController) SendMessage(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req request_models.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "toUserId and content are required")
		return
	}

	message, err := ch.chatService.SendMessage(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, message, "Message sent")
}

// GetMessages godoc
// @Summary Conversation with a friend
// @Description Returns the thread oldest first and marks incoming messages read
// @Tags Chat
// @Produce json
// @Param friendId query string true "Friend id"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /chat/get-messages [get]
func (ch *ChatController) GetMessages(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	messages, err := ch.chatService.GetMessages(c.Request.Context(), userID, c.Query("friendId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, messages, "")
}

// UnreadCounts godoc
// @Summary Unread messages per friend
// @Tags Chat
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /chat/unread-counts [get]
func (ch *ChatController) UnreadCounts(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	counts, err := ch.chatService.UnreadCounts(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, counts, "")
}
