package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"intranet-portal/internal/dto"
	"intranet-portal/internal/services"
	apperrors "intranet-portal/pkg/errors"
	"intranet-portal/pkg/utils"
)

type StatisticsController struct {
	service services.StatisticsServiceInterface
	logger  *zap.Logger
}

func NewStatisticsController(service services.StatisticsServiceInterface, logger *zap.Logger) *StatisticsController {
	return &StatisticsController{service: service, logger: logger}
}

func (c *StatisticsController) parseYear(ctx echo.Context) (int, error) {
	year, err := strconv.Atoi(ctx.Param("year"))
	if err != nil {
		return 0, apperrors.NewBadRequestError("Неверный формат года")
	}
	return year, nil
}

func (c *StatisticsController) GetAll(ctx echo.Context) error {
	items, err := c.service.GetStatistics(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, items, "Статистика получена", http.StatusOK)
}

func (c *StatisticsController) GetByYear(ctx echo.Context) error {
	year, err := c.parseYear(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	items, err := c.service.GetStatisticsByYear(ctx.Request().Context(), year)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, items, "Статистика за год получена", http.StatusOK)
}

func (c *StatisticsController) GetByYearAndMonth(ctx echo.Context) error {
	year, err := c.parseYear(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	item, err := c.service.GetStatisticsByYearAndMonth(ctx.Request().Context(), year, ctx.Param("month"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, item, "Статистика за месяц получена", http.StatusOK)
}

func (c *StatisticsController) Create(ctx echo.Context) error {
	var payload dto.CreateStatisticsDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверные данные"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	result, err := c.service.CreateStatistics(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, result, "Статистика создана", http.StatusCreated)
}

// BulkUpsert принимает массив месяцев и сохраняет его атомарно.
func (c *StatisticsController) BulkUpsert(ctx echo.Context) error {
	var payload dto.BulkStatisticsDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверные данные"), c.logger)
	}
	for i := range payload {
		if err := ctx.Validate(&payload[i]); err != nil {
			return utils.ErrorResponse(ctx, err, c.logger)
		}
	}

	count, err := c.service.BulkUpsertStatistics(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, map[string]int{"count": count}, "Статистика загружена", http.StatusOK)
}

func (c *StatisticsController) ExportByYear(ctx echo.Context) error {
	year, err := c.parseYear(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	f, err := c.service.ExportYearToExcel(ctx.Request().Context(), year)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	fileName := fmt.Sprintf("statistics_%d.xlsx", year)
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
