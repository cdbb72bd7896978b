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

type RoomController struct {
	roomService services.RoomServiceInterface
	logger      *zap.Logger
}

func NewRoomController(roomService services.RoomServiceInterface, logger *zap.Logger) *RoomController {
	return &RoomController{roomService: roomService, logger: logger}
}

func (c *RoomController) GetRooms(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.QueryParams())

	rooms, total, err := c.roomService.GetRooms(reqCtx, filter)
	if err != nil {
		c.logger.Error("Ошибка при получении списка комнат", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, rooms, "Список комнат успешно получен", http.StatusOK, total)
}

func (c *RoomController) FindRoom(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Некорректный ID комнаты"), c.logger)
	}

	res, err := c.roomService.FindRoom(reqCtx, id)
	if err != nil {
		c.logger.Error("Ошибка при поиске комнаты", zap.Error(err), zap.Uint64("id", id))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Комната успешно найдена", http.StatusOK)
}

func (c *RoomController) CreateRoom(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	var payload dto.CreateRoomDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверный формат данных"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.roomService.CreateRoom(reqCtx, payload)
	if err != nil {
		c.logger.Error("Ошибка при создании комнаты", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Комната успешно создана", http.StatusCreated)
}

func (c *RoomController) UpdateRoom(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Некорректный ID комнаты"), c.logger)
	}

	var payload dto.UpdateRoomDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверный формат данных"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.roomService.UpdateRoom(reqCtx, id, payload)
	if err != nil {
		c.logger.Error("Ошибка при обновлении комнаты", zap.Error(err), zap.Uint64("id", id))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Комната успешно обновлена", http.StatusOK)
}

func (c *RoomController) DeleteRoom(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Некорректный ID комнаты"), c.logger)
	}

	if err := c.roomService.DeleteRoom(reqCtx, id); err != nil {
		c.logger.Error("Ошибка при удалении комнаты", zap.Error(err), zap.Uint64("id", id))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return ctx.NoContent(http.StatusNoContent)
}
