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

type LinkController struct {
	service services.LinkServiceInterface
	logger  *zap.Logger
}

func NewLinkController(service services.LinkServiceInterface, logger *zap.Logger) *LinkController {
	return &LinkController{service: service, logger: logger}
}

func (c *LinkController) GetAll(ctx echo.Context) error {
	links, err := c.service.GetLinks(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, links, "Список ссылок получен", http.StatusOK)
}

func (c *LinkController) GetByID(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверный формат ID"), c.logger)
	}

	link, err := c.service.FindLink(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, link, "Ссылка получена", http.StatusOK)
}

func (c *LinkController) Create(ctx echo.Context) error {
	var payload dto.CreateLinkDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверные данные"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	result, err := c.service.CreateLink(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, "Ссылка создана", http.StatusCreated)
}

func (c *LinkController) Update(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверный формат ID"), c.logger)
	}

	var payload dto.UpdateLinkDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверные данные"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.service.UpdateLink(ctx.Request().Context(), id, payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, struct{}{}, "Ссылка обновлена", http.StatusOK)
}

func (c *LinkController) Delete(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверный формат ID"), c.logger)
	}

	if err := c.service.DeleteLink(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, struct{}{}, "Ссылка удалена", http.StatusOK)
}
