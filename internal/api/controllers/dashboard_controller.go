package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"kindred/internal/models/response_models"
	"kindred/internal/services"
	"kindred/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardService
	defaultLoc       *time.Location
}

func NewDashboardController(dashboardService services.DashboardService, defaultLoc *time.Location) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
		defaultLoc:       defaultLoc,
	}
}

// GetDashboard godoc
// @Summary Admin dashboard
// @Description Account counts, activity in the window, open feedback, mood mix and daily check-ins
// @Tags Admin
// @Produce json
// @Param start     query string false "RFC3339 start (e.g. 2025-10-01T00:00:00Z)"
// @Param end       query string false "RFC3339 end"
// @Param last_days query int    false "Relative lookback in days (mutually exclusive with start/end). Default 30"
// @Param tz        query string false "IANA timezone for day buckets"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/dashboard [get]
func (p *DashboardController) GetDashboard(c *gin.Context) {
	var (
		start, end time.Time
		err        error
	)

	startStr := c.Query("start")
	endStr := c.Query("end")
	lastDaysStr := c.Query("last_days")

	if lastDaysStr != "" && (startStr != "" || endStr != "") {
		utils.RespondError(c, http.StatusBadRequest, "provide either last_days or start/end (not both)")
		return
	}

	if lastDaysStr != "" {
		d, convErr := strconv.Atoi(lastDaysStr)
		if convErr != nil || d <= 0 {
			utils.RespondError(c, http.StatusBadRequest, "last_days must be a positive integer")
			return
		}
		end = time.Now().UTC()
		start = end.AddDate(0, 0, -d)
	} else {
		if startStr != "" {
			if start, err = time.Parse(time.RFC3339, startStr); err != nil {
				utils.RespondError(c, http.StatusBadRequest, "start must be RFC3339 (e.g. 2025-10-01T00:00:00Z)")
				return
			}
		}
		if endStr != "" {
			if end, err = time.Parse(time.RFC3339, endStr); err != nil {
				utils.RespondError(c, http.StatusBadRequest, "end must be RFC3339 (e.g. 2025-10-19T23:59:59Z)")
				return
			}
		}
	}

	loc := utils.ResolveLocation(c.Query("tz"), p.defaultLoc)
	report, svcErr := p.dashboardService.BuildDashboard(c.Request.Context(), response_models.TimeRange{Start: start, End: end}, loc)
	if svcErr != nil {
		utils.HandleServiceError(c, svcErr)
		return
	}

	utils.RespondSuccess(c, report, "Dashboard data fetched successfully")
}
