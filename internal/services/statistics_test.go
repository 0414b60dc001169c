package services

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"intranet-portal/internal/dto"
	"intranet-portal/internal/entities"
	apperrors "intranet-portal/pkg/errors"
)

type fakeStatisticsRepo struct {
	byYear map[int][]entities.MonthlyStatistics
}

func (r *fakeStatisticsRepo) GetAll(ctx context.Context) ([]entities.MonthlyStatistics, error) {
	out := make([]entities.MonthlyStatistics, 0)
	for _, items := range r.byYear {
		out = append(out, items...)
	}
	return out, nil
}

func (r *fakeStatisticsRepo) GetByYear(ctx context.Context, year int) ([]entities.MonthlyStatistics, error) {
	return r.byYear[year], nil
}

func (r *fakeStatisticsRepo) GetByYearAndMonth(ctx context.Context, year int, month string) (*entities.MonthlyStatistics, error) {
	for _, item := range r.byYear[year] {
		if item.Month == month {
			out := item
			return &out, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeStatisticsRepo) Create(ctx context.Context, s entities.MonthlyStatistics) (uint64, error) {
	if _, err := r.GetByYearAndMonth(ctx, s.Year, s.Month); err == nil {
		return 0, apperrors.ErrConflict
	}
	s.ID = uint64(len(r.byYear[s.Year]) + 1)
	r.byYear[s.Year] = append(r.byYear[s.Year], s)
	return s.ID, nil
}

func (r *fakeStatisticsRepo) Upsert(ctx context.Context, tx pgx.Tx, s entities.MonthlyStatistics) error {
	for i, item := range r.byYear[s.Year] {
		if item.Month == s.Month {
			s.ID = item.ID
			r.byYear[s.Year][i] = s
			return nil
		}
	}
	_, err := r.Create(ctx, s)
	return err
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func statsPayload(month string, year int, netIncome float64) dto.CreateStatisticsDTO {
	return dto.CreateStatisticsDTO{
		Month:            month,
		Year:             year,
		NetIncome:        floatPtr(netIncome),
		Commissions:      floatPtr(1200.50),
		NumberOfOrders:   intPtr(340),
		AvgOrdersPerUser: floatPtr(2.7),
		AvgTicketValue:   floatPtr(415.3),
	}
}

func TestToEntity_MapsAllFields(t *testing.T) {
	got := toEntity(statsPayload("Январь", 2026, 98000))

	assert.Equal(t, "Январь", got.Month)
	assert.Equal(t, 2026, got.Year)
	assert.Equal(t, 98000.0, got.NetIncome)
	assert.Equal(t, 1200.50, got.Commissions)
	assert.Equal(t, 340, got.NumberOfOrders)
	assert.Equal(t, 2.7, got.AvgOrdersPerUser)
	assert.Equal(t, 415.3, got.AvgTicketValue)
}

func TestToEntity_ZeroValuesSurvive(t *testing.T) {
	// Нулевая прибыль это валидное значение, а не пропуск поля.
	payload := statsPayload("Февраль", 2026, 0)
	payload.NumberOfOrders = intPtr(0)

	got := toEntity(payload)
	assert.Zero(t, got.NetIncome)
	assert.Zero(t, got.NumberOfOrders)
}

func TestBulkUpsertStatistics_EmptyPayload(t *testing.T) {
	// Пустой набор отклоняется до обращения к базе.
	svc := NewStatisticsService(nil, &fakeStatisticsRepo{byYear: map[int][]entities.MonthlyStatistics{}}, zap.NewNop())

	count, err := svc.BulkUpsertStatistics(context.Background(), dto.BulkStatisticsDTO{})
	assert.Zero(t, count)

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Code)
}

func TestCreateStatistics_DuplicateMonthConflicts(t *testing.T) {
	repo := &fakeStatisticsRepo{byYear: map[int][]entities.MonthlyStatistics{}}
	svc := NewStatisticsService(nil, repo, zap.NewNop())

	created, err := svc.CreateStatistics(context.Background(), statsPayload("Март", 2026, 50000))
	require.NoError(t, err)
	assert.Equal(t, "Март", created.Month)

	_, err = svc.CreateStatistics(context.Background(), statsPayload("Март", 2026, 60000))
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestExportYearToExcel(t *testing.T) {
	repo := &fakeStatisticsRepo{byYear: map[int][]entities.MonthlyStatistics{
		2025: {
			{Month: "Январь", Year: 2025, NetIncome: 75000, Commissions: 900, NumberOfOrders: 210, AvgOrdersPerUser: 1.9, AvgTicketValue: 357.1},
			{Month: "Февраль", Year: 2025, NetIncome: 81000, Commissions: 950, NumberOfOrders: 230, AvgOrdersPerUser: 2.1, AvgTicketValue: 352.2},
		},
	}}
	svc := NewStatisticsService(nil, repo, zap.NewNop())

	f, err := svc.ExportYearToExcel(context.Background(), 2025)
	require.NoError(t, err)

	sheet := f.GetSheetName(0)
	assert.Equal(t, "Статистика 2025", sheet)

	header, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Месяц", header)

	month, err := f.GetCellValue(sheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Январь", month)

	orders, err := f.GetCellValue(sheet, "E3")
	require.NoError(t, err)
	assert.Equal(t, "230", orders)
}
