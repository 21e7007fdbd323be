package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kindred/internal/models/request_models"
	"kindred/internal/services"
	"kindred/pkg/utils"
)

type ConversationController struct {
	conversationService services.ConversationServiceInterface
}

func NewConversationController(conversationService services.ConversationServiceInterface) *ConversationController {
	return &ConversationController{
		conversationService: conversationService,
	}
}

// Converse godoc
// @Summary Talk to the companion
// @Description Sends the message and prior turns to the completion provider
// @Tags Conversation
// @Accept json
// @Produce json
// @Param request body request_models.ConversationRequest true "Message and history"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /conversation [post]
func (p *ConversationController) Converse(c *gin.Context) {
	var req request_models.ConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := p.conversationService.Converse(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "")
}
