package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/services"
	"inventory-system/pkg/constants"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/utils"
)

// SpecificationController обслуживает маршруты вида
// /inventory/:code-specification; код типа зашит в маршрут при
// регистрации, без разбора строки пути в обработчике.
type SpecificationController struct {
	specService services.SpecificationServiceInterface
	logger      *zap.Logger
}

func NewSpecificationController(specService services.SpecificationServiceInterface, logger *zap.Logger) *SpecificationController {
	return &SpecificationController{specService: specService, logger: logger}
}

func (c *SpecificationController) FindByEquipment(code constants.EquipmentTypeCode) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		reqCtx := ctx.Request().Context()
		equipmentID, err := strconv.ParseUint(ctx.Param("equipmentId"), 10, 64)
		if err != nil {
			return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Некорректный ID оборудования"), c.logger)
		}

		res, err := c.specService.FindByEquipment(reqCtx, code, equipmentID)
		if err != nil {
			c.logger.Error("Ошибка при поиске спецификации",
				zap.Error(err), zap.String("type", string(code)), zap.Uint64("equipmentID", equipmentID))
			return utils.ErrorResponse(ctx, err, c.logger)
		}

		return utils.SuccessResponse(ctx, res, "Спецификация успешно найдена", http.StatusOK)
	}
}

func (c *SpecificationController) CreateSpecification(code constants.EquipmentTypeCode) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		reqCtx := ctx.Request().Context()
		var payload dto.CreateSpecificationDTO
		if err := ctx.Bind(&payload); err != nil {
			return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверный формат данных"), c.logger)
		}
		if err := ctx.Validate(&payload); err != nil {
			return utils.ErrorResponse(ctx, err, c.logger)
		}

		res, err := c.specService.CreateSpecification(reqCtx, code, payload)
		if err != nil {
			c.logger.Error("Ошибка при создании спецификации",
				zap.Error(err), zap.String("type", string(code)))
			return utils.ErrorResponse(ctx, err, c.logger)
		}

		return utils.SuccessResponse(ctx, res, "Спецификация успешно создана", http.StatusCreated)
	}
}

func (c *SpecificationController) UpdateSpecification(code constants.EquipmentTypeCode) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		reqCtx := ctx.Request().Context()
		id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
		if err != nil {
			return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Некорректный ID спецификации"), c.logger)
		}

		var payload dto.UpdateSpecificationDTO
		if err := ctx.Bind(&payload); err != nil {
			return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверный формат данных"), c.logger)
		}
		if err := ctx.Validate(&payload); err != nil {
			return utils.ErrorResponse(ctx, err, c.logger)
		}

		res, err := c.specService.UpdateSpecification(reqCtx, code, id, payload)
		if err != nil {
			c.logger.Error("Ошибка при обновлении спецификации",
				zap.Error(err), zap.String("type", string(code)), zap.Uint64("id", id))
			return utils.ErrorResponse(ctx, err, c.logger)
		}

		return utils.SuccessResponse(ctx, res, "Спецификация успешно обновлена", http.StatusOK)
	}
}

func (c *SpecificationController) DeleteSpecification(code constants.EquipmentTypeCode) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		reqCtx := ctx.Request().Context()
		id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
		if err != nil {
			return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Некорректный ID спецификации"), c.logger)
		}

		if err := c.specService.DeleteSpecification(reqCtx, code, id); err != nil {
			c.logger.Error("Ошибка при удалении спецификации",
				zap.Error(err), zap.String("type", string(code)), zap.Uint64("id", id))
			return utils.ErrorResponse(ctx, err, c.logger)
		}

		return ctx.NoContent(http.StatusNoContent)
	}
}
