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

	"intranet-portal/internal/entities"
	apperrors "intranet-portal/pkg/errors"
)

const (
	regulationGroupTable  = "regulation_groups"
	regulationGroupFields = `id, name, description, parent_id`
)

// TreeDepth — фиксированная глубина выборки дерева: корни плюс два уровня
// потомков. Группы, вложенные глубже, в ответ не попадают.
const TreeDepth = 3

type RegulationGroupRepositoryInterface interface {
	GetTree(ctx context.Context) ([]*entities.RegulationGroup, error)
	FindByID(ctx context.Context, id uint64) (*entities.RegulationGroup, error)
	Create(ctx context.Context, g entities.RegulationGroup) (uint64, error)
	Update(ctx context.Context, id uint64, g entities.RegulationGroup) error
	Delete(ctx context.Context, id uint64) error
}

type regulationGroupRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewRegulationGroupRepository(storage *pgxpool.Pool, logger *zap.Logger) RegulationGroupRepositoryInterface {
	return &regulationGroupRepository{storage: storage, logger: logger}
}

func (r *regulationGroupRepository) scanRow(row pgx.Row) (*entities.RegulationGroup, error) {
	var g entities.RegulationGroup
	if err := row.Scan(&g.ID, &g.Name, &g.Description, &g.ParentID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка сканирования regulation_groups: %w", err)
	}
	g.Children = make([]*entities.RegulationGroup, 0)
	return &g, nil
}

func (r *regulationGroupRepository) FindByID(ctx context.Context, id uint64) (*entities.RegulationGroup, error) {
	query, args, err := psql.Select(regulationGroupFields).From(regulationGroupTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки SQL для FindByID: %w", err)
	}
	return r.scanRow(r.storage.QueryRow(ctx, query, args...))
}

func (r *regulationGroupRepository) selectLevel(ctx context.Context, where interface{}, args ...interface{}) ([]*entities.RegulationGroup, error) {
	builder := psql.Select(regulationGroupFields).From(regulationGroupTable).OrderBy("name ASC")
	switch w := where.(type) {
	case sq.Eq:
		builder = builder.Where(w)
	case string:
		builder = builder.Where(w, args...)
	}

	query, qargs, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки SQL для уровня дерева: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, qargs...)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса regulation_groups: %w", err)
	}
	defer rows.Close()

	groups := make([]*entities.RegulationGroup, 0)
	for rows.Next() {
		g, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

// GetTree возвращает корневые группы с потомками, загруженными на TreeDepth
// уровней. Каждый уровень — один запрос; рекурсия по всей глубине не делается
// сознательно: контракт выборки фиксированный, как и у страницы-потребителя.
func (r *regulationGroupRepository) GetTree(ctx context.Context) ([]*entities.RegulationGroup, error) {
	roots, err := r.selectLevel(ctx, "parent_id IS NULL")
	if err != nil {
		return nil, err
	}

	level := roots
	for depth := 1; depth < TreeDepth && len(level) > 0; depth++ {
		parentIDs := make([]uint64, 0, len(level))
		byID := make(map[uint64]*entities.RegulationGroup, len(level))
		for _, g := range level {
			parentIDs = append(parentIDs, g.ID)
			byID[g.ID] = g
		}

		children, err := r.selectLevel(ctx, sq.Eq{"parent_id": parentIDs})
		if err != nil {
			return nil, err
		}
		for _, child := range children {
			parent := byID[*child.ParentID]
			parent.Children = append(parent.Children, child)
		}
		level = children
	}

	return roots, nil
}

func (r *regulationGroupRepository) Create(ctx context.Context, g entities.RegulationGroup) (uint64, error) {
	query, args, err := psql.Insert(regulationGroupTable).
		Columns("name", "description", "parent_id").
		Values(g.Name, g.Description, g.ParentID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("ошибка сборки запроса Create: %w", err)
	}

	var newID uint64
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&newID); err != nil {
		return 0, fmt.Errorf("ошибка создания regulation_groups: %w", err)
	}
	return newID, nil
}

func (r *regulationGroupRepository) Update(ctx context.Context, id uint64, g entities.RegulationGroup) error {
	query, args, err := psql.Update(regulationGroupTable).
		Set("name", g.Name).
		Set("description", g.Description).
		Set("parent_id", g.ParentID).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("ошибка сборки запроса Update: %w", err)
	}

	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ошибка обновления regulation_groups: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *regulationGroupRepository) Delete(ctx context.Context, id uint64) error {
	query, args, err := psql.Delete(regulationGroupTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("ошибка сборки запроса Delete: %w", err)
	}

	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return apperrors.NewHttpError(http.StatusBadRequest, "Группа не может быть удалена, пока в ней есть регламенты", err, nil)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
