package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sellora/sellora/internal/api/dto"
	ierr "github.com/sellora/sellora/internal/errors"
	"github.com/sellora/sellora/internal/logger"
	"github.com/sellora/sellora/internal/service"
)

type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
	logger           *logger.Logger
}

func NewAnalyticsHandler(
	analyticsService service.AnalyticsService,
	logger *logger.Logger,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		logger:           logger,
	}
}

// GetDashboardSummary handles GET /v1/analytics/summary
func (h *AnalyticsHandler) GetDashboardSummary(c *gin.Context) {
	var req dto.GetDashboardSummaryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid analytics query parameters").
			Mark(ierr.ErrValidation))
		return
	}

	response, err := h.analyticsService.GetDashboardSummary(c.Request.Context(), req)
	if err != nil {
		h.logger.Errorw("failed to get dashboard summary", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// ExportDashboardSummary handles GET /v1/analytics/summary/export
func (h *AnalyticsHandler) ExportDashboardSummary(c *gin.Context) {
	var req dto.GetDashboardSummaryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid analytics query parameters").
			Mark(ierr.ErrValidation))
		return
	}

	data, err := h.analyticsService.ExportDashboardSummary(c.Request.Context(), req)
	if err != nil {
		h.logger.Errorw("failed to export dashboard summary", "error", err)
		c.Error(err)
		return
	}

	filename := fmt.Sprintf("analytics_summary_%s.csv", time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", data)
}
