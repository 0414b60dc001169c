package services

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"intranet-portal/internal/dto"
	"intranet-portal/internal/entities"
	"intranet-portal/internal/repositories"
	apperrors "intranet-portal/pkg/errors"
)

type StatisticsServiceInterface interface {
	GetStatistics(ctx context.Context) ([]entities.MonthlyStatistics, error)
	GetStatisticsByYear(ctx context.Context, year int) ([]entities.MonthlyStatistics, error)
	GetStatisticsByYearAndMonth(ctx context.Context, year int, month string) (*entities.MonthlyStatistics, error)
	CreateStatistics(ctx context.Context, payload dto.CreateStatisticsDTO) (*entities.MonthlyStatistics, error)
	BulkUpsertStatistics(ctx context.Context, payload dto.BulkStatisticsDTO) (int, error)
	ExportYearToExcel(ctx context.Context, year int) (*excelize.File, error)
}

type StatisticsService struct {
	storage   *pgxpool.Pool
	statsRepo repositories.StatisticsRepositoryInterface
	logger    *zap.Logger
}

func NewStatisticsService(
	storage *pgxpool.Pool,
	statsRepo repositories.StatisticsRepositoryInterface,
	logger *zap.Logger,
) StatisticsServiceInterface {
	return &StatisticsService{
		storage:   storage,
		statsRepo: statsRepo,
		logger:    logger,
	}
}

func (s *StatisticsService) GetStatistics(ctx context.Context) ([]entities.MonthlyStatistics, error) {
	return s.statsRepo.GetAll(ctx)
}

func (s *StatisticsService) GetStatisticsByYear(ctx context.Context, year int) ([]entities.MonthlyStatistics, error) {
	return s.statsRepo.GetByYear(ctx, year)
}

func (s *StatisticsService) GetStatisticsByYearAndMonth(ctx context.Context, year int, month string) (*entities.MonthlyStatistics, error) {
	return s.statsRepo.GetByYearAndMonth(ctx, year, month)
}

func toEntity(payload dto.CreateStatisticsDTO) entities.MonthlyStatistics {
	return entities.MonthlyStatistics{
		Month:            payload.Month,
		Year:             payload.Year,
		NetIncome:        *payload.NetIncome,
		Commissions:      *payload.Commissions,
		NumberOfOrders:   *payload.NumberOfOrders,
		AvgOrdersPerUser: *payload.AvgOrdersPerUser,
		AvgTicketValue:   *payload.AvgTicketValue,
	}
}

// CreateStatistics добавляет один месяц. Дубликат пары (month, year)
// отклоняется конфликтом, для перезаписи используется массовая загрузка.
func (s *StatisticsService) CreateStatistics(ctx context.Context, payload dto.CreateStatisticsDTO) (*entities.MonthlyStatistics, error) {
	newID, err := s.statsRepo.Create(ctx, toEntity(payload))
	if err != nil {
		s.logger.Error("Ошибка при создании статистики", zap.String("month", payload.Month), zap.Int("year", payload.Year), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Статистика создана", zap.Uint64("id", newID))
	return s.statsRepo.GetByYearAndMonth(ctx, payload.Year, payload.Month)
}

// BulkUpsertStatistics сохраняет весь набор в одной транзакции: либо
// записываются все месяцы, либо ни одного. Повторная загрузка того же
// payload не меняет итоговое состояние.
func (s *StatisticsService) BulkUpsertStatistics(ctx context.Context, payload dto.BulkStatisticsDTO) (int, error) {
	if len(payload) == 0 {
		return 0, apperrors.NewBadRequestError("Пустой набор статистики")
	}

	err := repositories.WithTx(ctx, s.storage, func(tx pgx.Tx) error {
		for _, item := range payload {
			if err := s.statsRepo.Upsert(ctx, tx, toEntity(item)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Ошибка при массовой загрузке статистики", zap.Error(err))
		return 0, err
	}

	s.logger.Info("Статистика загружена", zap.Int("count", len(payload)))
	return len(payload), nil
}

var statisticsExportHeaders = []string{
	"Месяц", "Год", "Чистая прибыль", "Комиссии", "Количество заказов",
	"Заказов на пользователя", "Средний чек",
}

// ExportYearToExcel собирает XLSX-отчёт по году, по строке на месяц.
func (s *StatisticsService) ExportYearToExcel(ctx context.Context, year int) (*excelize.File, error) {
	items, err := s.statsRepo.GetByYear(ctx, year)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, header := range statisticsExportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for rowIdx, item := range items {
		row := rowIdx + 2
		values := []interface{}{
			item.Month, item.Year, item.NetIncome, item.Commissions,
			item.NumberOfOrders, item.AvgOrdersPerUser, item.AvgTicketValue,
		}
		for colIdx, value := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, row)
			f.SetCellValue(sheet, cell, value)
		}
	}

	f.SetSheetName(sheet, fmt.Sprintf("Статистика %d", year))
	return f, nil
}
