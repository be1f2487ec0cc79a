package router

import (
	"github.com/labstack/echo/v4"
	"github.com/modelward-dev/modelward/controllers"
)

type ConfigRouter struct {
	*echo.Group
}

// NewConfigRouter wires the admin-facing configuration endpoints: validation
// policies, past due buckets, residual risk matrices and qualitative factors.
func NewConfigRouter(
	apiV1 APIV1Router,
	policyController *controllers.PolicyController,
	bucketController *controllers.BucketController,
	matrixController *controllers.MatrixController,
	factorController *controllers.FactorController,
) ConfigRouter {
	configRouter := apiV1.Group.Group("/config")

	policyRouter := configRouter.Group("/policies")
	policyRouter.GET("/", policyController.List)
	policyRouter.POST("/", policyController.Create)
	policyRouter.PUT("/:policyID/", policyController.Update)
	policyRouter.DELETE("/:policyID/", policyController.Delete)

	bucketRouter := configRouter.Group("/buckets")
	bucketRouter.GET("/", bucketController.List)
	bucketRouter.POST("/", bucketController.Save)
	bucketRouter.PUT("/:bucketID/", bucketController.Save)
	bucketRouter.DELETE("/:bucketID/", bucketController.Delete)

	matrixRouter := configRouter.Group("/matrices")
	matrixRouter.GET("/", matrixController.List)
	matrixRouter.GET("/active/", matrixController.Active)
	matrixRouter.POST("/", matrixController.Create)
	matrixRouter.POST("/:matrixID/activate/", matrixController.Activate)

	factorRouter := configRouter.Group("/factors")
	factorRouter.GET("/", factorController.List)
	factorRouter.POST("/", factorController.Save)
	factorRouter.PUT("/:factorID/", factorController.Save)
	factorRouter.DELETE("/:factorID/", factorController.Delete)

	return ConfigRouter{Group: configRouter}
}
