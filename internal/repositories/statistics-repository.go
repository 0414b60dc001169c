package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"intranet-portal/internal/entities"
	apperrors "intranet-portal/pkg/errors"
)

const (
	statisticsTable  = "monthly_statistics"
	statisticsFields = `id, month, year, net_income, commissions, number_of_orders,
		avg_orders_per_user, avg_ticket_value, created_at, updated_at`
)

type StatisticsRepositoryInterface interface {
	GetAll(ctx context.Context) ([]entities.MonthlyStatistics, error)
	GetByYear(ctx context.Context, year int) ([]entities.MonthlyStatistics, error)
	GetByYearAndMonth(ctx context.Context, year int, month string) (*entities.MonthlyStatistics, error)
	Create(ctx context.Context, s entities.MonthlyStatistics) (uint64, error)
	Upsert(ctx context.Context, tx pgx.Tx, s entities.MonthlyStatistics) error
}

type statisticsRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewStatisticsRepository(storage *pgxpool.Pool, logger *zap.Logger) StatisticsRepositoryInterface {
	return &statisticsRepository{storage: storage, logger: logger}
}

func (r *statisticsRepository) scanRow(row pgx.Row) (*entities.MonthlyStatistics, error) {
	var s entities.MonthlyStatistics
	err := row.Scan(&s.ID, &s.Month, &s.Year, &s.NetIncome, &s.Commissions,
		&s.NumberOfOrders, &s.AvgOrdersPerUser, &s.AvgTicketValue, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка сканирования monthly_statistics: %w", err)
	}
	return &s, nil
}

func (r *statisticsRepository) selectMany(ctx context.Context, builder sq.SelectBuilder) ([]entities.MonthlyStatistics, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки SQL для monthly_statistics: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса monthly_statistics: %w", err)
	}
	defer rows.Close()

	items := make([]entities.MonthlyStatistics, 0)
	for rows.Next() {
		s, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *s)
	}
	return items, rows.Err()
}

func (r *statisticsRepository) GetAll(ctx context.Context) ([]entities.MonthlyStatistics, error) {
	return r.selectMany(ctx, psql.Select(statisticsFields).From(statisticsTable).OrderBy("year ASC", "id ASC"))
}

func (r *statisticsRepository) GetByYear(ctx context.Context, year int) ([]entities.MonthlyStatistics, error) {
	return r.selectMany(ctx, psql.Select(statisticsFields).From(statisticsTable).
		Where(sq.Eq{"year": year}).OrderBy("id ASC"))
}

func (r *statisticsRepository) GetByYearAndMonth(ctx context.Context, year int, month string) (*entities.MonthlyStatistics, error) {
	query, args, err := psql.Select(statisticsFields).From(statisticsTable).
		Where(sq.Eq{"year": year, "month": month}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки SQL для GetByYearAndMonth: %w", err)
	}
	return r.scanRow(r.storage.QueryRow(ctx, query, args...))
}

func (r *statisticsRepository) Create(ctx context.Context, s entities.MonthlyStatistics) (uint64, error) {
	query, args, err := psql.Insert(statisticsTable).
		Columns("month", "year", "net_income", "commissions", "number_of_orders",
			"avg_orders_per_user", "avg_ticket_value").
		Values(s.Month, s.Year, s.NetIncome, s.Commissions, s.NumberOfOrders,
			s.AvgOrdersPerUser, s.AvgTicketValue).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("ошибка сборки запроса Create: %w", err)
	}

	var newID uint64
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&newID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return 0, apperrors.ErrConflict
		}
		return 0, fmt.Errorf("ошибка создания monthly_statistics: %w", err)
	}
	return newID, nil
}

// Upsert вставляет запись или обновляет существующую по паре (month, year).
// Повторная загрузка того же набора данных не меняет итоговое состояние.
func (r *statisticsRepository) Upsert(ctx context.Context, tx pgx.Tx, s entities.MonthlyStatistics) error {
	query, args, err := psql.Insert(statisticsTable).
		Columns("month", "year", "net_income", "commissions", "number_of_orders",
			"avg_orders_per_user", "avg_ticket_value").
		Values(s.Month, s.Year, s.NetIncome, s.Commissions, s.NumberOfOrders,
			s.AvgOrdersPerUser, s.AvgTicketValue).
		Suffix(`ON CONFLICT (month, year) DO UPDATE SET
			net_income = EXCLUDED.net_income,
			commissions = EXCLUDED.commissions,
			number_of_orders = EXCLUDED.number_of_orders,
			avg_orders_per_user = EXCLUDED.avg_orders_per_user,
			avg_ticket_value = EXCLUDED.avg_ticket_value,
			updated_at = NOW()`).
		ToSql()
	if err != nil {
		return fmt.Errorf("ошибка сборки запроса Upsert: %w", err)
	}

	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("ошибка сохранения monthly_statistics: %w", err)
	}
	return nil
}
