package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kindred/internal/models/request_models"
	"kindred/internal/services"
	"kindred/pkg/utils"
)

type EmotionController struct {
	emotionService services.EmotionServiceInterface
}

func NewEmotionController(emotionService services.EmotionServiceInterface) *EmotionController {
	return &EmotionController{emotionService: emotionService}
}

// SendAlert godoc
// @Summary Tell friends how you feel
// @Description Creates one alert per accepted friend and reports how many were written
// @Tags Emotions
// @Accept json
// @Produce json
// @Param request body request_models.SendAlertRequest true "Emotion and intensity (1-10)"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /emotions/send-alert [post]
func (e *EmotionController) SendAlert(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req request_models.SendAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "emotion and intensity are required")
		return
	}

	result, err := e.emotionService.SendAlert(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Emotion alert sent")
}

// ListAlerts godoc
// @Summary Alerts received from friends
// @Tags Emotions
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /emotions/alerts [get]
func (e *EmotionController) ListAlerts(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	alerts, err := e.emotionService.ListAlerts(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, alerts, "")
}

// MarkRead godoc
// @Summary Mark an alert read
// @Tags Emotions
// @Param id path string true "Alert id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /emotions/alerts/{id}/read [put]
func (e *EmotionController) MarkRead(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	if err := e.emotionService.MarkAlertRead(c.Request.Context(), userID, c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Alert marked as read")
}
