package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"kindred/internal/models/request_models"
	"kindred/internal/services"
	"kindred/pkg/utils"
)

type SpeechController struct {
	speechService services.SpeechServiceInterface
}

func NewSpeechController(speechService services.SpeechServiceInterface) *SpeechController {
	return &SpeechController{speechService: speechService}
}

// Speak godoc
// @Summary Text to speech
// @Description Streams mp3 audio in the requested or preferred voice
// @Tags Speech
// @Accept json
// @Produce audio/mpeg
// @Param request body request_models.SpeechRequest true "Text and optional voice"
// @Success 200 {file} binary
// @Failure 400 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Security BearerAuth
// @Router /speech [post]
func (s *SpeechController) Speak(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req request_models.SpeechRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "text is required")
		return
	}

	audio, err := s.speechService.Synthesize(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	defer audio.Close()

	c.Header("Content-Type", "audio/mpeg")
	c.Header("Cache-Control", "no-store")
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, audio); err != nil {
		utils.Logger(c).Warn("audio stream interrupted", zap.Error(err))
	}
}
