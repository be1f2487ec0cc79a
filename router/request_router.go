package router

import (
	"github.com/labstack/echo/v4"
	"github.com/modelward-dev/modelward/controllers"
)

type RequestRouter struct {
	*echo.Group
}

func NewRequestRouter(apiV1 APIV1Router, requestController *controllers.RequestController) RequestRouter {
	modelScoped := apiV1.Group.Group("/models/:modelID/requests")
	modelScoped.GET("/", requestController.List)
	modelScoped.POST("/", requestController.Create)

	requestRouter := apiV1.Group.Group("/requests")
	requestRouter.PUT("/:requestID/status/", requestController.UpdateStatus)
	requestRouter.POST("/:requestID/submission/", requestController.SubmissionReceived)
	requestRouter.POST("/:requestID/approve/", requestController.Approve)
	requestRouter.POST("/:requestID/approvals/", requestController.AddApproval)

	approvalRouter := apiV1.Group.Group("/approvals")
	approvalRouter.PUT("/:approvalID/", requestController.DecideApproval)

	return RequestRouter{Group: requestRouter}
}
