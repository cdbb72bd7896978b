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

type UniversityController struct {
	universityService services.UniversityServiceInterface
	logger            *zap.Logger
}

func NewUniversityController(universityService services.UniversityServiceInterface, logger *zap.Logger) *UniversityController {
	return &UniversityController{universityService: universityService, logger: logger}
}

func (c *UniversityController) GetUniversities(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.QueryParams())

	universities, total, err := c.universityService.GetUniversities(reqCtx, filter)
	if err != nil {
		c.logger.Error("Ошибка при получении списка университетов", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, universities, "Список университетов успешно получен", http.StatusOK, total)
}

func (c *UniversityController) FindUniversity(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Некорректный ID университета"), c.logger)
	}

	res, err := c.universityService.FindUniversity(reqCtx, id)
	if err != nil {
		c.logger.Error("Ошибка при поиске университета", zap.Error(err), zap.Uint64("id", id))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Университет успешно найден", http.StatusOK)
}

func (c *UniversityController) CreateUniversity(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	var payload dto.CreateUniversityDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверный формат данных"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.universityService.CreateUniversity(reqCtx, payload)
	if err != nil {
		c.logger.Error("Ошибка при создании университета", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Университет успешно создан", http.StatusCreated)
}

func (c *UniversityController) UpdateUniversity(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Некорректный ID университета"), c.logger)
	}

	var payload dto.UpdateUniversityDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверный формат данных"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.universityService.UpdateUniversity(reqCtx, id, payload)
	if err != nil {
		c.logger.Error("Ошибка при обновлении университета", zap.Error(err), zap.Uint64("id", id))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Университет успешно обновлен", http.StatusOK)
}

func (c *UniversityController) DeleteUniversity(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Некорректный ID университета"), c.logger)
	}

	if err := c.universityService.DeleteUniversity(reqCtx, id); err != nil {
		c.logger.Error("Ошибка при удалении университета", zap.Error(err), zap.Uint64("id", id))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return ctx.NoContent(http.StatusNoContent)
}
