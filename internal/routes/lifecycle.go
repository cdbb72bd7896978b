package routes

import (
	"github.com/labstack/echo/v4"

	"inventory-system/internal/controllers"
	"inventory-system/pkg/middleware"
)

func runLifecycleRouter(secure *echo.Group, lifecycleCtrl *controllers.LifecycleController, authMW *middleware.AuthMiddleware) {
	secure.POST("/equipment/:id/send-to-repair", lifecycleCtrl.SendToRepair)
	secure.PATCH("/repairs/:id/complete", lifecycleCtrl.CompleteRepair)
	secure.PATCH("/repairs/:id/fail", lifecycleCtrl.FailRepair)
	secure.POST("/equipment/:id/dispose", lifecycleCtrl.Dispose)

	secure.GET("/equipment/:id/repairs", lifecycleCtrl.GetRepairs)
	secure.GET("/equipment/:id/disposals", lifecycleCtrl.GetDisposals)
	secure.GET("/equipment/:id/contracts", lifecycleCtrl.GetContracts)
	secure.POST("/contracts", lifecycleCtrl.CreateContract)
}
