package router

import (
	"github.com/labstack/echo/v4"
	"github.com/modelward-dev/modelward/controllers"
)

type ModelRouter struct {
	*echo.Group
}

func NewModelRouter(apiV1 APIV1Router, modelController *controllers.ModelController) ModelRouter {
	modelRouter := apiV1.Group.Group("/models")

	modelRouter.GET("/", modelController.List)
	modelRouter.POST("/", modelController.Create)
	modelRouter.GET("/:modelID/", modelController.Read)

	modelRouter.GET("/:modelID/compliance/", modelController.Compliance)
	modelRouter.GET("/:modelID/status-history/", modelController.StatusHistory)
	modelRouter.POST("/:modelID/refresh/", modelController.RefreshStatus)

	modelRouter.GET("/:modelID/risk/", modelController.EffectiveRisk)
	modelRouter.PUT("/:modelID/risk-assessment/", modelController.SaveAssessment)

	return ModelRouter{Group: modelRouter}
}
