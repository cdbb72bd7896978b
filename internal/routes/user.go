package routes

import (
	"github.com/labstack/echo/v4"

	"inventory-system/internal/controllers"
	"inventory-system/pkg/middleware"
)

// Управление пользователями целиком за админом.
func runUserRouter(secure *echo.Group, userCtrl *controllers.UserController, authMW *middleware.AuthMiddleware) {
	users := secure.Group("/users", authMW.RequireAdmin)
	users.GET("", userCtrl.GetUsers)
	users.GET("/:id", userCtrl.FindUser)
	users.POST("", userCtrl.CreateUser)
	users.PUT("/:id", userCtrl.UpdateUser)
	users.DELETE("/:id", userCtrl.DeleteUser)
}
