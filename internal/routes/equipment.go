package routes

import (
	"github.com/labstack/echo/v4"

	"inventory-system/internal/controllers"
	"inventory-system/pkg/middleware"
)

func runEquipmentRouter(secure *echo.Group, equipmentCtrl *controllers.EquipmentController, authMW *middleware.AuthMiddleware) {
	secure.GET("/equipment", equipmentCtrl.GetEquipments)
	secure.GET("/equipment/filter", equipmentCtrl.FilterEquipments)
	secure.GET("/equipment/grouped", equipmentCtrl.GetGroupedEquipments)
	secure.GET("/equipment/my", equipmentCtrl.GetMyEquipments)
	secure.GET("/equipment/types", equipmentCtrl.GetEquipmentTypes)
	secure.GET("/equipment/:id", equipmentCtrl.FindEquipment)
	secure.GET("/equipment/:id/movements", equipmentCtrl.GetMovements)
	secure.POST("/equipment", equipmentCtrl.CreateEquipment)
	secure.PUT("/equipment/:id", equipmentCtrl.UpdateEquipment)
	secure.PATCH("/equipment/:id/move", equipmentCtrl.MoveEquipment)
	secure.DELETE("/equipment/:id", equipmentCtrl.DeleteEquipment, authMW.RequireAdmin)
}
