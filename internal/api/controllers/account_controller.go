package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kindred/internal/models/request_models"
	"kindred/internal/services"
	"kindred/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// Register godoc
// @Summary Sign up
// @Description Create a new account. New accounts start on the waitlist.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Signup payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /auth/signup [post]
func (a *AccountController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Name, surname, a valid email and a password of at least 6 characters are required")
		return
	}

	account, err := a.accountService.CreateAccount(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, account, "Account created. You will be able to sign in once approved.")
}

// Login godoc
// @Summary Login
// @Description Authenticate an approved account and return a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /auth/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	resp, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Login successful")
}

// Verify godoc
// @Summary Verify token
// @Description Returns the account behind the bearer token and refreshes its presence
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /auth/verify [get]
func (a *AccountController) Verify(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	account, err := a.accountService.Verify(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, account, "Token is valid")
}

// Logout godoc
// @Summary Logout
// @Description Revokes the presented bearer token
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /auth/logout [post]
func (a *AccountController) Logout(c *gin.Context) {
	claims, _ := c.Get(utils.ContextClaims)
	tokenClaims, _ := claims.(*utils.Claims)

	if err := a.accountService.Logout(c.Request.Context(), tokenClaims); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Logged out")
}

// Me godoc
// @Summary Current account
// @Tags User
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /user/me [get]
func (a *AccountController) Me(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	account, err := a.accountService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, account, "")
}

// UpdatePreferences godoc
// @Summary Update avatar and voice
// @Tags User
// @Accept json
// @Produce json
// @Param request body request_models.UpdatePreferencesRequest true "Preferences"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /user/preferences [put]
func (a *AccountController) UpdatePreferences(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req request_models.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "selectedAvatar and selectedVoice are required")
		return
	}

	account, err := a.accountService.UpdatePreferences(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, account, "Preferences updated")
}
