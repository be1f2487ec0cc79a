package router

import (
	"github.com/labstack/echo/v4"
	"github.com/modelward-dev/modelward/controllers"
)

type ReportRouter struct {
	*echo.Group
}

func NewReportRouter(apiV1 APIV1Router, reportController *controllers.ReportController) ReportRouter {
	reportRouter := apiV1.Group.Group("/reports")

	reportRouter.GET("/kpi/", reportController.KPIReport)
	reportRouter.POST("/recalculate/", reportController.Recalculate)

	return ReportRouter{Group: reportRouter}
}
