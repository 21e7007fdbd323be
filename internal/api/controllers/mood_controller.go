package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"kindred/internal/models/request_models"
	"kindred/internal/services"
	"kindred/pkg/utils"
)

const timezoneHeader = "X-Timezone"

type MoodController struct {
	moodService services.MoodServiceInterface
	defaultLoc  *time.Location
}

func NewMoodController(moodService services.MoodServiceInterface, defaultLoc *time.Location) *MoodController {
	return &MoodController{moodService: moodService, defaultLoc: defaultLoc}
}

func (m *MoodController) location(c *gin.Context) *time.Location {
	return utils.ResolveLocation(c.GetHeader(timezoneHeader), m.defaultLoc)
}

// CheckIn godoc
// @Summary Record today's mood
// @Description One entry per calendar day; a later check-in replaces the earlier one
// @Tags Mood
// @Accept json
// @Produce json
// @Param X-Timezone header string false "IANA timezone of the caller"
// @Param request body request_models.CheckInRequest true "Mood and optional notes"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /mood/checkin [post]
func (m *MoodController) CheckIn(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req request_models.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "mood is required")
		return
	}

	entry, err := m.moodService.CheckIn(c.Request.Context(), userID, req, m.location(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entry, "Mood recorded")
}

// Today godoc
// @Summary Today's mood
// @Tags Mood
// @Produce json
// @Param X-Timezone header string false "IANA timezone of the caller"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /mood/today [get]
func (m *MoodController) Today(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	today, err := m.moodService.GetTodayMood(c.Request.Context(), userID, m.location(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, today, "")
}

// Entries godoc
// @Summary All mood entries, newest first
// @Tags Mood
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /mood/entries [get]
func (m *MoodController) Entries(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	entries, err := m.moodService.ListEntries(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entries, "")
}

// History godoc
// @Summary Mood history for a range
// @Tags Mood
// @Produce json
// @Param range query string false "7d | 30d" default(7d)
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /mood/history [get]
func (m *MoodController) History(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	history, err := m.moodService.GetHistory(c.Request.Context(), userID, c.DefaultQuery("range", "7d"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, history, "")
}
