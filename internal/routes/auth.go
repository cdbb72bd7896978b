package routes

import (
	"github.com/labstack/echo/v4"

	"inventory-system/internal/controllers"
	"inventory-system/pkg/middleware"
)

func runAuthRouter(public *echo.Group, secure *echo.Group, authCtrl *controllers.AuthController, authMW *middleware.AuthMiddleware) {
	public.POST("/auth/login", authCtrl.Login)
	public.POST("/auth/refresh", authCtrl.Refresh)

	secure.POST("/auth/logout", authCtrl.Logout)
	secure.GET("/auth/profile", authCtrl.GetProfile)
}
