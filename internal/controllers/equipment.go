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

type EquipmentController struct {
	equipmentService services.EquipmentServiceInterface
	logger           *zap.Logger
}

func NewEquipmentController(equipmentService services.EquipmentServiceInterface, logger *zap.Logger) *EquipmentController {
	return &EquipmentController{equipmentService: equipmentService, logger: logger}
}

func (c *EquipmentController) GetEquipments(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.QueryParams())

	equipments, total, err := c.equipmentService.GetEquipments(reqCtx, filter)
	if err != nil {
		c.logger.Error("Ошибка при получении списка оборудования", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, equipments, "Список оборудования успешно получен", http.StatusOK, total)
}

// FilterEquipments — выборка по явным условиям (здание, комната, тип,
// статус, автор), все условия конъюнктивны.
func (c *EquipmentController) FilterEquipments(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	var payload dto.EquipmentFilterDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Некорректные параметры фильтра"), c.logger)
	}
	if payload.Limit <= 0 {
		payload.Limit = utils.DefaultLimit
	}
	if payload.Page < 1 {
		payload.Page = 1
	}

	equipments, total, err := c.equipmentService.FilterEquipments(reqCtx, payload)
	if err != nil {
		c.logger.Error("Ошибка при фильтрации оборудования", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, map[string]interface{}{
		"list":  equipments,
		"total": total,
	}, "Оборудование успешно отфильтровано", http.StatusOK)
}

func (c *EquipmentController) GetGroupedEquipments(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	page, _ := strconv.Atoi(ctx.QueryParam("page"))
	limit, _ := strconv.Atoi(ctx.QueryParam("limit"))

	groups, err := c.equipmentService.GetGroupedEquipments(reqCtx, page, limit)
	if err != nil {
		c.logger.Error("Ошибка при группировке оборудования", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, groups, "Оборудование успешно сгруппировано по типам", http.StatusOK)
}

// GetMyEquipments — оборудование, заведённое текущим пользователем.
func (c *EquipmentController) GetMyEquipments(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	userID, err := utils.GetUserIDFromCtx(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.EquipmentFilterDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Некорректные параметры фильтра"), c.logger)
	}
	payload.AuthorID = &userID
	if payload.Limit <= 0 {
		payload.Limit = utils.DefaultLimit
	}
	if payload.Page < 1 {
		payload.Page = 1
	}

	equipments, total, err := c.equipmentService.FilterEquipments(reqCtx, payload)
	if err != nil {
		c.logger.Error("Ошибка при получении своего оборудования", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, equipments, "Список вашего оборудования успешно получен", http.StatusOK, total)
}

func (c *EquipmentController) FindEquipment(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Некорректный ID оборудования"), c.logger)
	}

	res, err := c.equipmentService.FindEquipment(reqCtx, id)
	if err != nil {
		c.logger.Error("Ошибка при поиске оборудования", zap.Error(err), zap.Uint64("id", id))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Оборудование успешно найдено", http.StatusOK)
}

func (c *EquipmentController) CreateEquipment(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	userID, err := utils.GetUserIDFromCtx(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.CreateEquipmentDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверный формат данных"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.equipmentService.CreateEquipment(reqCtx, payload, userID)
	if err != nil {
		c.logger.Error("Ошибка при создании оборудования", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Оборудование успешно создано", http.StatusCreated)
}

func (c *EquipmentController) UpdateEquipment(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Некорректный ID оборудования"), c.logger)
	}

	var payload dto.UpdateEquipmentDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверный формат данных"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.equipmentService.UpdateEquipment(reqCtx, id, payload)
	if err != nil {
		c.logger.Error("Ошибка при обновлении оборудования", zap.Error(err), zap.Uint64("id", id))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Оборудование успешно обновлено", http.StatusOK)
}

func (c *EquipmentController) MoveEquipment(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	userID, err := utils.GetUserIDFromCtx(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Некорректный ID оборудования"), c.logger)
	}

	var payload dto.MoveEquipmentDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверный формат данных"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.equipmentService.MoveEquipment(reqCtx, id, payload, userID)
	if err != nil {
		c.logger.Error("Ошибка при перемещении оборудования", zap.Error(err), zap.Uint64("id", id))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Оборудование успешно перемещено", http.StatusOK)
}

func (c *EquipmentController) DeleteEquipment(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Некорректный ID оборудования"), c.logger)
	}

	if err := c.equipmentService.DeleteEquipment(reqCtx, id); err != nil {
		c.logger.Error("Ошибка при удалении оборудования", zap.Error(err), zap.Uint64("id", id))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (c *EquipmentController) GetEquipmentTypes(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	equipmentTypes, err := c.equipmentService.GetEquipmentTypes(reqCtx)
	if err != nil {
		c.logger.Error("Ошибка при получении справочника типов", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, equipmentTypes, "Справочник типов успешно получен", http.StatusOK)
}

func (c *EquipmentController) GetMovements(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Некорректный ID оборудования"), c.logger)
	}

	movements, err := c.equipmentService.GetMovements(reqCtx, id)
	if err != nil {
		c.logger.Error("Ошибка при получении журнала перемещений", zap.Error(err), zap.Uint64("id", id))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, movements, "Журнал перемещений успешно получен", http.StatusOK)
}
