package routes

import (
	"github.com/labstack/echo/v4"

	"inventory-system/internal/controllers"
	"inventory-system/pkg/middleware"
)

func runBuildingRouter(secure *echo.Group, buildingCtrl *controllers.BuildingController, authMW *middleware.AuthMiddleware) {
	secure.GET("/buildings", buildingCtrl.GetBuildings)
	secure.GET("/buildings/:id", buildingCtrl.FindBuilding)
	secure.POST("/buildings", buildingCtrl.CreateBuilding)
	secure.PUT("/buildings/:id", buildingCtrl.UpdateBuilding)
	secure.DELETE("/buildings/:id", buildingCtrl.DeleteBuilding, authMW.RequireAdmin)
}
