package controllers

import (
	"encoding/json"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"intranet-portal/internal/dto"
	"intranet-portal/internal/services"
	apperrors "intranet-portal/pkg/errors"
	"intranet-portal/pkg/utils"
)

type UserController struct {
	service services.UserServiceInterface
	logger  *zap.Logger
}

func NewUserController(service services.UserServiceInterface, logger *zap.Logger) *UserController {
	return &UserController{service: service, logger: logger}
}

func (c *UserController) GetAll(ctx echo.Context) error {
	users, err := c.service.GetUsers(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, users, "Список сотрудников получен", http.StatusOK)
}

func (c *UserController) GetByID(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		c.logger.Error("GetByID: неверный формат ID", zap.String("id", ctx.Param("id")), zap.Error(err))
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверный формат ID"), c.logger)
	}

	user, err := c.service.FindUser(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, user, "Сотрудник найден", http.StatusOK)
}

func (c *UserController) GetOrgChart(ctx echo.Context) error {
	chart, err := c.service.GetOrgChart(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, chart, "Организационная структура получена", http.StatusOK)
}

// photoFromForm достаёт файловое поле photo. Отсутствие файла не ошибка.
func photoFromForm(ctx echo.Context) *multipart.FileHeader {
	photo, err := ctx.FormFile("photo")
	if err != nil {
		return nil
	}
	return photo
}

// Create принимает multipart-форму: JSON сотрудника в поле userData,
// фото — отдельным файловым полем photo.
func (c *UserController) Create(ctx echo.Context) error {
	userData := ctx.FormValue("userData")
	if userData == "" {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Отсутствует поле userData"), c.logger)
	}

	var payload dto.CreateUserDTO
	if err := json.Unmarshal([]byte(userData), &payload); err != nil {
		c.logger.Error("Create: ошибка разбора userData", zap.Error(err))
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверный формат userData"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	result, err := c.service.CreateUser(ctx.Request().Context(), payload, photoFromForm(ctx))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, "Сотрудник создан", http.StatusCreated)
}

func (c *UserController) Update(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		c.logger.Error("Update: неверный формат ID", zap.String("id", ctx.Param("id")), zap.Error(err))
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверный формат ID"), c.logger)
	}

	userData := ctx.FormValue("userData")
	if userData == "" {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Отсутствует поле userData"), c.logger)
	}

	var payload dto.UpdateUserDTO
	if err := json.Unmarshal([]byte(userData), &payload); err != nil {
		c.logger.Error("Update: ошибка разбора userData", zap.Error(err))
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверный формат userData"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.service.UpdateUser(ctx.Request().Context(), id, payload, photoFromForm(ctx)); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, struct{}{}, "Сотрудник обновлён", http.StatusOK)
}

func (c *UserController) Delete(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		c.logger.Error("Delete: неверный формат ID", zap.String("id", ctx.Param("id")), zap.Error(err))
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверный формат ID"), c.logger)
	}

	if err := c.service.DeleteUser(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, struct{}{}, "Сотрудник удалён", http.StatusOK)
}
