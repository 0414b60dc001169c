package repositories

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"intranet-portal/internal/dto"
	"intranet-portal/internal/entities"
	apperrors "intranet-portal/pkg/errors"
)

const (
	regulationTable  = "regulations"
	regulationFields = `r.id, r.title, r.content, r.keywords, r.group_id, g.id, g.name, r.created_at, r.updated_at`
)

type RegulationRepositoryInterface interface {
	GetAll(ctx context.Context, filter dto.RegulationFilterDTO) ([]*entities.Regulation, error)
	FindByID(ctx context.Context, id uint64) (*entities.Regulation, error)
	Create(ctx context.Context, reg entities.Regulation) (*entities.Regulation, error)
	Update(ctx context.Context, id uint64, reg entities.Regulation) error
	Delete(ctx context.Context, id uint64) error
}

type regulationRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewRegulationRepository(storage *pgxpool.Pool, logger *zap.Logger) RegulationRepositoryInterface {
	return &regulationRepository{storage: storage, logger: logger}
}

func (r *regulationRepository) scanRow(row pgx.Row) (*entities.Regulation, error) {
	var reg entities.Regulation
	var group entities.RegulationGroupShort
	err := row.Scan(
		&reg.ID, &reg.Title, &reg.Content, &reg.Keywords, &reg.GroupID,
		&group.ID, &group.Name, &reg.CreatedAt, &reg.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка сканирования regulations: %w", err)
	}
	reg.Group = &group
	return &reg, nil
}

func (r *regulationRepository) baseSelect() sq.SelectBuilder {
	return psql.Select(regulationFields).
		From(regulationTable + " r").
		Join("regulation_groups g ON g.id = r.group_id")
}

func (r *regulationRepository) FindByID(ctx context.Context, id uint64) (*entities.Regulation, error) {
	query, args, err := r.baseSelect().Where(sq.Eq{"r.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки SQL для FindByID: %w", err)
	}
	return r.scanRow(r.storage.QueryRow(ctx, query, args...))
}

// GetAll ищет регламенты: search матчит заголовок без учёта регистра
// либо точное вхождение в массив ключевых слов. Ненайденное — пустой список.
func (r *regulationRepository) GetAll(ctx context.Context, filter dto.RegulationFilterDTO) ([]*entities.Regulation, error) {
	builder := r.baseSelect().OrderBy("r.title ASC")

	if filter.Search != "" {
		builder = builder.Where(sq.Or{
			sq.ILike{"r.title": "%" + filter.Search + "%"},
			sq.Expr("? = ANY(r.keywords)", filter.Search),
		})
	}
	if filter.GroupID != 0 {
		builder = builder.Where(sq.Eq{"r.group_id": filter.GroupID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки SQL для поиска регламентов: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса regulations: %w", err)
	}
	defer rows.Close()

	regulations := make([]*entities.Regulation, 0)
	ids := make([]uint64, 0)
	for rows.Next() {
		reg, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		regulations = append(regulations, reg)
		ids = append(ids, reg.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка итерации rows: %w", err)
	}

	if err := r.loadPositions(ctx, regulations, ids); err != nil {
		return nil, err
	}
	return regulations, nil
}

func (r *regulationRepository) loadPositions(ctx context.Context, regulations []*entities.Regulation, ids []uint64) error {
	if len(ids) == 0 {
		return nil
	}
	byID := make(map[uint64]*entities.Regulation, len(regulations))
	for _, reg := range regulations {
		byID[reg.ID] = reg
	}

	query, args, err := psql.
		Select("pr.regulation_id", "p.id", "p.title").
		From("position_regulations pr").
		Join("positions p ON p.id = pr.position_id").
		Where(sq.Eq{"pr.regulation_id": ids}).
		OrderBy("p.title ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("ошибка сборки SQL для position_regulations: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ошибка выполнения запроса position_regulations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var regulationID uint64
		var p entities.PositionShort
		if err := rows.Scan(&regulationID, &p.ID, &p.Title); err != nil {
			return fmt.Errorf("ошибка сканирования position_regulations: %w", err)
		}
		byID[regulationID].Positions = append(byID[regulationID].Positions, p)
	}
	return rows.Err()
}

func (r *regulationRepository) Create(ctx context.Context, reg entities.Regulation) (*entities.Regulation, error) {
	query, args, err := psql.Insert(regulationTable).
		Columns("title", "content", "keywords", "group_id", "created_at", "updated_at").
		Values(reg.Title, reg.Content, reg.Keywords, reg.GroupID, sq.Expr("NOW()"), sq.Expr("NOW()")).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса Create: %w", err)
	}

	var newID uint64
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&newID); err != nil {
		return nil, fmt.Errorf("ошибка создания regulations: %w", err)
	}
	return r.FindByID(ctx, newID)
}

func (r *regulationRepository) Update(ctx context.Context, id uint64, reg entities.Regulation) error {
	query, args, err := psql.Update(regulationTable).
		Set("title", reg.Title).
		Set("content", reg.Content).
		Set("keywords", reg.Keywords).
		Set("group_id", reg.GroupID).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("ошибка сборки запроса Update: %w", err)
	}

	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ошибка обновления regulations: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *regulationRepository) Delete(ctx context.Context, id uint64) error {
	query, args, err := psql.Delete(regulationTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("ошибка сборки запроса Delete: %w", err)
	}

	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return apperrors.NewHttpError(http.StatusBadRequest, "Регламент не может быть удалён", err, nil)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
