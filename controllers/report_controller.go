package controllers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/modelward-dev/modelward/dtos"
	"github.com/modelward-dev/modelward/shared"
)

type ReportController struct {
	reportService     shared.ReportService
	complianceService shared.ComplianceService
}

func NewReportController(reportService shared.ReportService, complianceService shared.ComplianceService) *ReportController {
	return &ReportController{
		reportService:     reportService,
		complianceService: complianceService,
	}
}

func (h *ReportController) KPIReport(c shared.Context) error {
	report, err := h.reportService.KPIReport(time.Now())
	if err != nil {
		return echo.NewHTTPError(500, "could not build kpi report").WithInternal(err)
	}
	return c.JSON(http.StatusOK, report)
}

// Recalculate sweeps the whole inventory and journals every approval status
// change. Returns the number of models that changed.
func (h *ReportController) Recalculate(c shared.Context) error {
	changed, err := h.complianceService.RefreshAll(dtos.TriggerManualRefresh)
	if err != nil {
		return echo.NewHTTPError(500, "could not recalculate approval statuses").WithInternal(err)
	}

	h.reportService.InvalidateCache()
	return c.JSON(http.StatusOK, map[string]int{"changed": changed})
}
