package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/services"
	"inventory-system/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

func (c *ReportController) GetReport(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	report, err := c.reportService.BuildReport(reqCtx)
	if err != nil {
		c.logger.Error("Ошибка при построении отчета", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, report, "Отчет успешно построен", http.StatusOK)
}

func (c *ReportController) ExportReport(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	report, err := c.reportService.BuildReport(reqCtx)
	if err != nil {
		c.logger.Error("Ошибка при построении отчета для экспорта", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	equipment, err := c.reportService.GetFlatReport(reqCtx)
	if err != nil {
		c.logger.Error("Ошибка при выборке оборудования для экспорта", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return c.respondWithXLSX(ctx, report, equipment)
}

var equipmentHeaders = []interface{}{
	"ID", "Наименование", "Инвентарный номер", "Тип", "Статус", "Комната", "Ответственный",
}

func equipmentRow(e entities.Equipment) []interface{} {
	typeName, roomName, authorFio := "", "", ""
	if e.Type != nil {
		typeName = e.Type.Name
	}
	if e.Room != nil {
		roomName = e.Room.Name
	}
	if e.Author != nil {
		authorFio = e.Author.Fio
	}
	return []interface{}{e.ID, e.Name, e.InventoryNumber, typeName, string(e.Status), roomName, authorFio}
}

func writeDistribution(f *excelize.File, sheet, title string, row int, items []dto.DistributionItemDTO) int {
	cell, _ := excelize.CoordinatesToCellName(1, row)
	f.SetCellValue(sheet, cell, title)
	row++
	for _, item := range items {
		keyCell, _ := excelize.CoordinatesToCellName(1, row)
		countCell, _ := excelize.CoordinatesToCellName(2, row)
		f.SetCellValue(sheet, keyCell, item.Key)
		f.SetCellValue(sheet, countCell, item.Count)
		row++
	}
	return row + 1
}

func (c *ReportController) respondWithXLSX(ctx echo.Context, report *dto.ReportDTO, equipment []entities.Equipment) error {
	f := excelize.NewFile()

	summary := "Сводка"
	f.SetSheetName("Sheet1", summary)
	f.SetCellValue(summary, "A1", "Всего единиц")
	f.SetCellValue(summary, "B1", report.Total)

	row := 3
	row = writeDistribution(f, summary, "По статусам", row, report.StatusDistribution)
	row = writeDistribution(f, summary, "По типам", row, report.TypeDistribution)
	row = writeDistribution(f, summary, "По комнатам", row, report.RoomDistribution)
	writeDistribution(f, summary, "По факультетам", row, report.FacultyDistribution)
	f.SetColWidth(summary, "A", "A", 30)

	flat := "Оборудование"
	f.NewSheet(flat)
	f.SetSheetRow(flat, "A1", &equipmentHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(flat, "A1", "G1", style)
	for i, e := range equipment {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		rowVals := equipmentRow(e)
		f.SetSheetRow(flat, cell, &rowVals)
	}
	f.SetColWidth(flat, "B", "C", 30)
	f.SetColWidth(flat, "D", "G", 20)

	fileName := fmt.Sprintf("inventory_report_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
