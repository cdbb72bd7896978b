package routes

import (
	"github.com/labstack/echo/v4"

	"inventory-system/internal/controllers"
	"inventory-system/pkg/middleware"
)

func runFacultyRouter(secure *echo.Group, facultyCtrl *controllers.FacultyController, authMW *middleware.AuthMiddleware) {
	secure.GET("/faculties", facultyCtrl.GetFaculties)
	secure.GET("/faculties/:id", facultyCtrl.FindFaculty)
	secure.POST("/faculties", facultyCtrl.CreateFaculty)
	secure.PUT("/faculties/:id", facultyCtrl.UpdateFaculty)
	secure.DELETE("/faculties/:id", facultyCtrl.DeleteFaculty, authMW.RequireAdmin)
}
