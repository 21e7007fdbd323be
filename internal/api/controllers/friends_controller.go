package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kindred/internal/models/request_models"
	"kindred/internal/services"
	"kindred/pkg/utils"
)

type FriendsController struct {
	friendService services.FriendServiceInterface
}

func NewFriendsController(friendService services.FriendServiceInterface) *FriendsController {
	return &FriendsController{friendService: friendService}
}

// SendRequest godoc
// @Summary Send a friend request
// @Tags Friends
// @Accept json
// @Produce json
// @Param request body request_models.SendFriendRequest true "Target user"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /friends/send-request [post]
func (f *FriendsController) SendRequest(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req request_models.SendFriendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	created, err := f.friendService.SendRequest(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, created, "Friend request sent")
}

// RespondRequest godoc
// @Summary Accept or reject a friend request
// @Tags Friends
// @Accept json
// @Produce json
// @Param request body request_models.RespondFriendRequest true "requestId and action (ACCEPTED | REJECTED)"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /friends/respond-request [put]
func (f *FriendsController) RespondRequest(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req request_models.RespondFriendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "requestId and action are required")
		return
	}

	updated, err := f.friendService.RespondToRequest(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, updated, "Friend request "+updated.Status)
}

// List godoc
// @Summary Friends and pending requests
// @Tags Friends
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /friends/list [get]
func (f *FriendsController) List(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	list, err := f.friendService.ListFriends(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, list, "")
}
