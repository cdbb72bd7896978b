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

type FloorController struct {
	floorService services.FloorServiceInterface
	logger       *zap.Logger
}

func NewFloorController(floorService services.FloorServiceInterface, logger *zap.Logger) *FloorController {
	return &FloorController{floorService: floorService, logger: logger}
}

func (c *FloorController) GetFloors(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.QueryParams())

	floors, total, err := c.floorService.GetFloors(reqCtx, filter)
	if err != nil {
		c.logger.Error("Ошибка при получении списка этажей", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, floors, "Список этажей успешно получен", http.StatusOK, total)
}

func (c *FloorController) FindFloor(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Некорректный ID этажа"), c.logger)
	}

	res, err := c.floorService.FindFloor(reqCtx, id)
	if err != nil {
		c.logger.Error("Ошибка при поиске этажа", zap.Error(err), zap.Uint64("id", id))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Этаж успешно найден", http.StatusOK)
}

func (c *FloorController) CreateFloor(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	var payload dto.CreateFloorDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверный формат данных"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.floorService.CreateFloor(reqCtx, payload)
	if err != nil {
		c.logger.Error("Ошибка при создании этажа", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Этаж успешно создан", http.StatusCreated)
}

func (c *FloorController) UpdateFloor(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Некорректный ID этажа"), c.logger)
	}

	var payload dto.UpdateFloorDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверный формат данных"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.floorService.UpdateFloor(reqCtx, id, payload)
	if err != nil {
		c.logger.Error("Ошибка при обновлении этажа", zap.Error(err), zap.Uint64("id", id))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Этаж успешно обновлен", http.StatusOK)
}

func (c *FloorController) DeleteFloor(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Некорректный ID этажа"), c.logger)
	}

	if err := c.floorService.DeleteFloor(reqCtx, id); err != nil {
		c.logger.Error("Ошибка при удалении этажа", zap.Error(err), zap.Uint64("id", id))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return ctx.NoContent(http.StatusNoContent)
}
