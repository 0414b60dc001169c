package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"intranet-portal/internal/dto"
	"intranet-portal/internal/services"
	apperrors "intranet-portal/pkg/errors"
	"intranet-portal/pkg/utils"
)

type DocumentationController struct {
	service services.DocumentationServiceInterface
	logger  *zap.Logger
}

func NewDocumentationController(service services.DocumentationServiceInterface, logger *zap.Logger) *DocumentationController {
	return &DocumentationController{service: service, logger: logger}
}

func (c *DocumentationController) Get(ctx echo.Context) error {
	doc, err := c.service.GetDocumentation(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, doc, "Документация получена", http.StatusOK)
}

func (c *DocumentationController) Save(ctx echo.Context) error {
	var payload dto.CreateDocumentationDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверные данные"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	result, err := c.service.SaveDocumentation(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, "Документация сохранена", http.StatusCreated)
}
