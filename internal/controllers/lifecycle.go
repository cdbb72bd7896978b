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

type LifecycleController struct {
	lifecycleService services.LifecycleServiceInterface
	logger           *zap.Logger
}

func NewLifecycleController(lifecycleService services.LifecycleServiceInterface, logger *zap.Logger) *LifecycleController {
	return &LifecycleController{lifecycleService: lifecycleService, logger: logger}
}

func (c *LifecycleController) SendToRepair(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	userID, err := utils.GetUserIDFromCtx(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Некорректный ID оборудования"), c.logger)
	}

	var payload dto.SendToRepairDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверный формат данных"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.lifecycleService.SendToRepair(reqCtx, id, payload, userID)
	if err != nil {
		c.logger.Error("Ошибка при отправке в ремонт", zap.Error(err), zap.Uint64("equipmentID", id))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Оборудование отправлено в ремонт", http.StatusCreated)
}

func (c *LifecycleController) CompleteRepair(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Некорректный ID ремонта"), c.logger)
	}

	res, err := c.lifecycleService.CompleteRepair(reqCtx, id)
	if err != nil {
		c.logger.Error("Ошибка при завершении ремонта", zap.Error(err), zap.Uint64("repairID", id))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Ремонт успешно завершён", http.StatusOK)
}

func (c *LifecycleController) FailRepair(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	userID, err := utils.GetUserIDFromCtx(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Некорректный ID ремонта"), c.logger)
	}

	res, err := c.lifecycleService.FailRepair(reqCtx, id, userID)
	if err != nil {
		c.logger.Error("Ошибка при закрытии неудачного ремонта", zap.Error(err), zap.Uint64("repairID", id))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Ремонт закрыт, оборудование списано", http.StatusOK)
}

func (c *LifecycleController) Dispose(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	userID, err := utils.GetUserIDFromCtx(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Некорректный ID оборудования"), c.logger)
	}

	var payload dto.DisposeDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверный формат данных"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.lifecycleService.Dispose(reqCtx, id, payload, userID)
	if err != nil {
		c.logger.Error("Ошибка при списании оборудования", zap.Error(err), zap.Uint64("equipmentID", id))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Оборудование успешно списано", http.StatusCreated)
}

func (c *LifecycleController) CreateContract(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	var payload dto.CreateContractDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверный формат данных"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.lifecycleService.CreateContract(reqCtx, payload)
	if err != nil {
		c.logger.Error("Ошибка при создании контракта", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Контракт успешно создан", http.StatusCreated)
}

func (c *LifecycleController) GetRepairs(ctx echo.Context) error {
	return c.listForEquipment(ctx, "Список ремонтов успешно получен", func(equipmentID uint64) (interface{}, error) {
		return c.lifecycleService.GetRepairs(ctx.Request().Context(), equipmentID)
	})
}

func (c *LifecycleController) GetDisposals(ctx echo.Context) error {
	return c.listForEquipment(ctx, "Список списаний успешно получен", func(equipmentID uint64) (interface{}, error) {
		return c.lifecycleService.GetDisposals(ctx.Request().Context(), equipmentID)
	})
}

func (c *LifecycleController) GetContracts(ctx echo.Context) error {
	return c.listForEquipment(ctx, "Список контрактов успешно получен", func(equipmentID uint64) (interface{}, error) {
		return c.lifecycleService.GetContracts(ctx.Request().Context(), equipmentID)
	})
}

func (c *LifecycleController) listForEquipment(ctx echo.Context, message string, load func(equipmentID uint64) (interface{}, error)) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Некорректный ID оборудования"), c.logger)
	}

	res, err := load(id)
	if err != nil {
		c.logger.Error("Ошибка при получении журнала оборудования", zap.Error(err), zap.Uint64("equipmentID", id))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, message, http.StatusOK)
}
