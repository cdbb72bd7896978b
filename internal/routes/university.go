package routes

import (
	"github.com/labstack/echo/v4"

	"inventory-system/internal/controllers"
	"inventory-system/pkg/middleware"
)

func runUniversityRouter(secure *echo.Group, universityCtrl *controllers.UniversityController, authMW *middleware.AuthMiddleware) {
	secure.GET("/universities", universityCtrl.GetUniversities)
	secure.GET("/universities/:id", universityCtrl.FindUniversity)
	secure.POST("/universities", universityCtrl.CreateUniversity)
	secure.PUT("/universities/:id", universityCtrl.UpdateUniversity)
	secure.DELETE("/universities/:id", universityCtrl.DeleteUniversity, authMW.RequireAdmin)
}
