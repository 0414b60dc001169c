package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"intranet-portal/internal/dto"
	"intranet-portal/internal/services"
	apperrors "intranet-portal/pkg/errors"
	"intranet-portal/pkg/utils"
)

type EventController struct {
	service services.EventServiceInterface
	logger  *zap.Logger
}

func NewEventController(service services.EventServiceInterface, logger *zap.Logger) *EventController {
	return &EventController{service: service, logger: logger}
}

func (c *EventController) GetAll(ctx echo.Context) error {
	events, err := c.service.GetEvents(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, events, "Календарь событий получен", http.StatusOK)
}

func (c *EventController) Create(ctx echo.Context) error {
	var payload dto.CreateEventDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверные данные"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	result, err := c.service.CreateEvent(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, "Событие создано", http.StatusCreated)
}

func (c *EventController) Update(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		c.logger.Error("Update: неверный формат ID", zap.String("id", ctx.Param("id")), zap.Error(err))
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверный формат ID"), c.logger)
	}

	var payload dto.UpdateEventDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверные данные"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.service.UpdateEvent(ctx.Request().Context(), id, payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, struct{}{}, "Событие обновлено", http.StatusOK)
}

func (c *EventController) Delete(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		c.logger.Error("Delete: неверный формат ID", zap.String("id", ctx.Param("id")), zap.Error(err))
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверный формат ID"), c.logger)
	}

	if err := c.service.DeleteEvent(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, struct{}{}, "Событие удалено", http.StatusOK)
}
