package handler

import (
	appreport "github.com/bizdesk/backend/internal/application/report"
	"github.com/gin-gonic/gin"
)

// ReportHandler handles the admin statistics endpoints. Routes are
// mounted behind the admin middleware; the service re-checks the role.
type ReportHandler struct {
	BaseHandler
	statsService *appreport.StatsService
}

// NewReportHandler creates a new report handler
func NewReportHandler(statsService *appreport.StatsService) *ReportHandler {
	return &ReportHandler{statsService: statsService}
}

// UserStatus handles GET /admin/quotes/user-status
func (h *ReportHandler) UserStatus(c *gin.Context) {
	caller, ok := getCaller(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req appreport.UserStatusRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	items, total, err := h.statsService.UserStatus(c.Request.Context(), caller, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, items, total, req.Page, req.PageSize)
}

// DailyTotals handles GET /admin/quotes/daily
func (h *ReportHandler) DailyTotals(c *gin.Context) {
	caller, ok := getCaller(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req appreport.MonthOffsetRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.statsService.DailyTotals(c.Request.Context(), caller, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// UserAmounts handles GET /admin/quotes/user-amounts
func (h *ReportHandler) UserAmounts(c *gin.Context) {
	caller, ok := getCaller(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req appreport.MonthOffsetRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.statsService.UserAmounts(c.Request.Context(), caller, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}
