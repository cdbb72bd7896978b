package routes

import (
	"github.com/labstack/echo/v4"

	"inventory-system/internal/controllers"
	"inventory-system/pkg/middleware"
)

func runFloorRouter(secure *echo.Group, floorCtrl *controllers.FloorController, authMW *middleware.AuthMiddleware) {
	secure.GET("/floors", floorCtrl.GetFloors)
	secure.GET("/floors/:id", floorCtrl.FindFloor)
	secure.POST("/floors", floorCtrl.CreateFloor)
	secure.PUT("/floors/:id", floorCtrl.UpdateFloor)
	secure.DELETE("/floors/:id", floorCtrl.DeleteFloor, authMW.RequireAdmin)
}
