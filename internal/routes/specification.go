package routes

import (
	"github.com/labstack/echo/v4"

	"inventory-system/internal/controllers"
	"inventory-system/pkg/constants"
	"inventory-system/pkg/middleware"
)

// Для каждого типа оборудования поднимается своя группа маршрутов
// вида /inventory/<code>-specification; код зашивается в обработчик
// при регистрации.
func runSpecificationRouter(secure *echo.Group, specCtrl *controllers.SpecificationController, authMW *middleware.AuthMiddleware) {
	for _, code := range constants.AllEquipmentTypes {
		group := secure.Group("/inventory/" + string(code) + "-specification")
		group.GET("/equipment/:equipmentId", specCtrl.FindByEquipment(code))
		group.POST("", specCtrl.CreateSpecification(code))
		group.PUT("/:id", specCtrl.UpdateSpecification(code))
		group.DELETE("/:id", specCtrl.DeleteSpecification(code))
	}
}
