package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kindred/internal/models/request_models"
	"kindred/internal/services"
	"kindred/pkg/utils"
)

type AdminController struct {
	adminService    services.AdminServiceInterface
	feedbackService services.FeedbackServiceInterface
}

func NewAdminController(adminService services.AdminServiceInterface, feedbackService services.FeedbackServiceInterface) *AdminController {
	return &AdminController{
		adminService:    adminService,
		feedbackService: feedbackService,
	}
}

// ApproveUser godoc
// @Summary Approve or reject an account
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body request_models.ApproveUserRequest true "userId and action (APPROVED | REJECTED)"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/approve-user [put]
func (a *AdminController) ApproveUser(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req request_models.ApproveUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "userId and action are required")
		return
	}

	account, err := a.adminService.ApproveUser(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, account, "User "+req.Action+" successfully")
}

// Waitlist godoc
// @Summary Waitlisted accounts, oldest first
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/waitlist [get]
func (a *AdminController) Waitlist(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	accounts, err := a.adminService.ListWaitlist(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, accounts, "")
}

// ListUsers godoc
// @Summary List accounts
// @Tags Admin
// @Produce json
// @Param status query string false "WAITLIST | APPROVED | REJECTED"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/users [get]
func (a *AdminController) ListUsers(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	accounts, err := a.adminService.ListUsers(c.Request.Context(), userID, c.Query("status"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, accounts, "")
}

// ListFeedback godoc
// @Summary List all feedback and complaints
// @Tags Admin
// @Param kind query string false "feedback | complaint"
// @Param status query string false "pending | in_progress | resolved"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/feedback [get]
func (a *AdminController) ListFeedback(c *gin.Context) {
	items, err := a.feedbackService.GetFeedback(
		c.Request.Context(),
		c.Query("kind"),
		c.Query("status"),
		queryInt(c, "page", 1),
		queryInt(c, "pageSize", 20),
	)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, items, "")
}

// UpdateFeedback godoc
// @Summary Update feedback status
// @Tags Admin
// @Accept json
// @Param id path string true "Feedback id"
// @Param request body request_models.UpdateFeedbackRequest true "Status and optional response"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/feedback/{id} [put]
func (a *AdminController) UpdateFeedback(c *gin.Context) {
	var req request_models.UpdateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "status is required")
		return
	}

	item, err := a.feedbackService.UpdateFeedback(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, item, "Feedback updated")
}
