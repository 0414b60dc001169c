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

type FeedbackController struct {
	service services.FeedbackServiceInterface
	logger  *zap.Logger
}

func NewFeedbackController(service services.FeedbackServiceInterface, logger *zap.Logger) *FeedbackController {
	return &FeedbackController{service: service, logger: logger}
}

// GetMy отдаёт обращения текущего пользователя.
func (c *FeedbackController) GetMy(ctx echo.Context) error {
	userID, err := utils.GetUserIDFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrUnauthorized, c.logger)
	}

	items, err := c.service.GetMyFeedback(ctx.Request().Context(), userID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, items, "Обращения получены", http.StatusOK)
}

func (c *FeedbackController) Create(ctx echo.Context) error {
	userID, err := utils.GetUserIDFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrUnauthorized, c.logger)
	}

	var payload dto.CreateFeedbackDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверные данные"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	result, err := c.service.CreateFeedback(ctx.Request().Context(), userID, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, "Обращение отправлено", http.StatusCreated)
}

func (c *FeedbackController) Answer(ctx echo.Context) error {
	feedbackID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверный формат ID"), c.logger)
	}
	adminID, err := utils.GetUserIDFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrUnauthorized, c.logger)
	}

	var payload dto.CreateFeedbackAnswerDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверные данные"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	result, err := c.service.AnswerFeedback(ctx.Request().Context(), feedbackID, adminID, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, "Ответ отправлен", http.StatusCreated)
}
