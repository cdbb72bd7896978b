package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/services"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/utils"
)

type FacultyController struct {
	facultyService services.FacultyServiceInterface
	logger         *zap.Logger
}

func NewFacultyController(facultyService services.FacultyServiceInterface, logger *zap.Logger) *FacultyController {
	return &FacultyController{facultyService: facultyService, logger: logger}
}

func (c *FacultyController) GetFaculties(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.QueryParams())

	faculties, total, err := c.facultyService.GetFaculties(reqCtx, filter)
	if err != nil {
		c.logger.Error("Ошибка при получении списка факультетов", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, faculties, "Список факультетов успешно получен", http.StatusOK, total)
}

func (c *FacultyController) FindFaculty(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Некорректный ID факультета"), c.logger)
	}

	res, err := c.facultyService.FindFaculty(reqCtx, id)
	if err != nil {
		c.logger.Error("Ошибка при поиске факультета", zap.Error(err), zap.Uint64("id", id))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Факультет успешно найден", http.StatusOK)
}

func (c *FacultyController) CreateFaculty(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	var payload dto.CreateFacultyDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверный формат данных"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.facultyService.CreateFaculty(reqCtx, payload)
	if err != nil {
		c.logger.Error("Ошибка при создании факультета", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Факультет успешно создан", http.StatusCreated)
}

func (c *FacultyController) UpdateFaculty(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Некорректный ID факультета"), c.logger)
	}

	var payload dto.UpdateFacultyDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверный формат данных"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.facultyService.UpdateFaculty(reqCtx, id, payload)
	if err != nil {
		c.logger.Error("Ошибка при обновлении факультета", zap.Error(err), zap.Uint64("id", id))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Факультет успешно обновлен", http.StatusOK)
}

func (c *FacultyController) DeleteFaculty(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Некорректный ID факультета"), c.logger)
	}

	if err := c.facultyService.DeleteFaculty(reqCtx, id); err != nil {
		c.logger.Error("Ошибка при удалении факультета", zap.Error(err), zap.Uint64("id", id))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return ctx.NoContent(http.StatusNoContent)
}
