package routes

import (
	"github.com/labstack/echo/v4"

	"inventory-system/internal/controllers"
	"inventory-system/pkg/middleware"
)

func runReportRouter(secure *echo.Group, reportCtrl *controllers.ReportController, authMW *middleware.AuthMiddleware) {
	secure.GET("/reports/summary", reportCtrl.GetReport)
	secure.GET("/reports/export", reportCtrl.ExportReport)
}
