package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kindred/internal/models/db_models"
	"kindred/internal/models/request_models"
	"kindred/internal/services"
	"kindred/pkg/utils"
)

type FeedbackController struct {
	feedbackService services.FeedbackServiceInterface
}

func NewFeedbackController(feedbackService services.FeedbackServiceInterface) *FeedbackController {
	return &FeedbackController{feedbackService: feedbackService}
}

// AddFeedback godoc
// @Summary Submit feedback
// @Tags Support
// @Accept json
// @Produce json
// @Param request body request_models.AddFeedbackRequest true "Feedback payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /feedback [post]
func (f *FeedbackController) AddFeedback(c *gin.Context) {
	f.add(c, db_models.FeedbackKindFeedback)
}

// AddComplaint godoc
// @Summary File a complaint
// @Tags Support
// @Accept json
// @Produce json
// @Param request body request_models.AddFeedbackRequest true "Complaint payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /complaints [post]
func (f *FeedbackController) AddComplaint(c *gin.Context) {
	f.add(c, db_models.FeedbackKindComplaint)
}

func (f *FeedbackController) add(c *gin.Context, kind db_models.FeedbackKind) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req request_models.AddFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "title and description are required")
		return
	}

	item, err := f.feedbackService.AddFeedback(c.Request.Context(), userID, kind, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, item, "Submitted successfully")
}

// ListFeedback godoc
// @Summary Your feedback
// @Tags Support
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /feedback [get]
func (f *FeedbackController) ListFeedback(c *gin.Context) {
	f.listOwn(c, db_models.FeedbackKindFeedback)
}

// ListComplaints godoc
// @Summary Your complaints
// @Tags Support
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /complaints [get]
func (f *FeedbackController) ListComplaints(c *gin.Context) {
	f.listOwn(c, db_models.FeedbackKindComplaint)
}

func (f *FeedbackController) listOwn(c *gin.Context, kind db_models.FeedbackKind) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	items, err := f.feedbackService.GetOwnFeedback(c.Request.Context(), userID, kind, queryInt(c, "page", 1), queryInt(c, "pageSize", 20))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, items, "")
}

// Contact godoc
// @Summary Contact support
// @Description Unauthenticated contact form
// @Tags Support
// @Accept json
// @Produce json
// @Param request body request_models.ContactRequest true "Contact form"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /contact [post]
func (f *FeedbackController) Contact(c *gin.Context) {
	var req request_models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "name, a valid email and message are required")
		return
	}

	resp, err := f.feedbackService.SubmitContact(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, resp, "Thanks, we will get back to you soon")
}

// FAQ godoc
// @Summary Frequently asked questions
// @Tags Support
// @Param q query string false "Search text"
// @Success 200 {object} utils.APIResponse
// @Router /faq [get]
func (f *FeedbackController) FAQ(c *gin.Context) {
	utils.RespondSuccess(c, f.feedbackService.SearchFAQ(c.Query("q")), "")
}
