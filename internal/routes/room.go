package routes

import (
	"github.com/labstack/echo/v4"

	"inventory-system/internal/controllers"
	"inventory-system/pkg/middleware"
)

func runRoomRouter(secure *echo.Group, roomCtrl *controllers.RoomController, authMW *middleware.AuthMiddleware) {
	secure.GET("/rooms", roomCtrl.GetRooms)
	secure.GET("/rooms/:id", roomCtrl.FindRoom)
	secure.POST("/rooms", roomCtrl.CreateRoom)
	secure.PUT("/rooms/:id", roomCtrl.UpdateRoom)
	secure.DELETE("/rooms/:id", roomCtrl.DeleteRoom, authMW.RequireAdmin)
}
