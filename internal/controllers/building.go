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

type BuildingController struct {
	buildingService services.BuildingServiceInterface
	logger          *zap.Logger
}

func NewBuildingController(buildingService services.BuildingServiceInterface, logger *zap.Logger) *BuildingController {
	return &BuildingController{buildingService: buildingService, logger: logger}
}

func (c *BuildingController) GetBuildings(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.QueryParams())

	buildings, total, err := c.buildingService.GetBuildings(reqCtx, filter)
	if err != nil {
		c.logger.Error("Ошибка при получении списка зданий", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, buildings, "Список зданий успешно получен", http.StatusOK, total)
}

func (c *BuildingController) FindBuilding(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Некорректный ID здания"), c.logger)
	}

	res, err := c.buildingService.FindBuilding(reqCtx, id)
	if err != nil {
		c.logger.Error("Ошибка при поиске здания", zap.Error(err), zap.Uint64("id", id))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Здание успешно найдено", http.StatusOK)
}

func (c *BuildingController) CreateBuilding(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	var payload dto.CreateBuildingDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверный формат данных"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.buildingService.CreateBuilding(reqCtx, payload)
	if err != nil {
		c.logger.Error("Ошибка при создании здания", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Здание успешно создано", http.StatusCreated)
}

func (c *BuildingController) UpdateBuilding(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Некорректный ID здания"), c.logger)
	}

	var payload dto.UpdateBuildingDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверный формат данных"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.buildingService.UpdateBuilding(reqCtx, id, payload)
	if err != nil {
		c.logger.Error("Ошибка при обновлении здания", zap.Error(err), zap.Uint64("id", id))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Здание успешно обновлено", http.StatusOK)
}

func (c *BuildingController) DeleteBuilding(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Некорректный ID здания"), c.logger)
	}

	if err := c.buildingService.DeleteBuilding(reqCtx, id); err != nil {
		c.logger.Error("Ошибка при удалении здания", zap.Error(err), zap.Uint64("id", id))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return ctx.NoContent(http.StatusNoContent)
}
