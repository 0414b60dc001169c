package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"intranet-portal/internal/entities"
	apperrors "intranet-portal/pkg/errors"
)

const (
	positionTable  = "positions"
	positionFields = `id, title, description, created_at, updated_at`
)

type PositionRepositoryInterface interface {
	GetAll(ctx context.Context) ([]*entities.Position, error)
	FindByID(ctx context.Context, id uint64) (*entities.Position, error)
	Create(ctx context.Context, tx pgx.Tx, p entities.Position, regulationIDs []uint64) (uint64, error)
	Update(ctx context.Context, tx pgx.Tx, id uint64, p entities.Position, regulationIDs []uint64) error
	Delete(ctx context.Context, id uint64) error
}

type positionRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewPositionRepository(storage *pgxpool.Pool, logger *zap.Logger) PositionRepositoryInterface {
	return &positionRepository{storage: storage, logger: logger}
}

func (r *positionRepository) scanRow(row pgx.Row) (*entities.Position, error) {
	var p entities.Position
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка сканирования positions: %w", err)
	}
	return &p, nil
}

func (r *positionRepository) FindByID(ctx context.Context, id uint64) (*entities.Position, error) {
	query, args, err := psql.Select(positionFields).From(positionTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки SQL для FindByID: %w", err)
	}
	p, err := r.scanRow(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, err
	}
	if err := r.loadRelations(ctx, []*entities.Position{p}); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *positionRepository) GetAll(ctx context.Context) ([]*entities.Position, error) {
	query, args, err := psql.Select(positionFields).From(positionTable).OrderBy("title ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки SQL для списка должностей: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса positions: %w", err)
	}
	defer rows.Close()

	positions := make([]*entities.Position, 0)
	for rows.Next() {
		p, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		positions = append(positions, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка итерации rows: %w", err)
	}

	if err := r.loadRelations(ctx, positions); err != nil {
		return nil, err
	}
	return positions, nil
}

// loadRelations подгружает регламенты (с именем группы) и сотрудников должностей.
func (r *positionRepository) loadRelations(ctx context.Context, positions []*entities.Position) error {
	if len(positions) == 0 {
		return nil
	}
	ids := make([]uint64, 0, len(positions))
	byID := make(map[uint64]*entities.Position, len(positions))
	for _, p := range positions {
		ids = append(ids, p.ID)
		byID[p.ID] = p
	}

	regQuery, regArgs, err := psql.
		Select("pr.position_id", "r.id", "r.title", "g.id", "g.name").
		From("position_regulations pr").
		Join("regulations r ON r.id = pr.regulation_id").
		Join("regulation_groups g ON g.id = r.group_id").
		Where(sq.Eq{"pr.position_id": ids}).
		OrderBy("r.title ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("ошибка сборки SQL для position_regulations: %w", err)
	}

	regRows, err := r.storage.Query(ctx, regQuery, regArgs...)
	if err != nil {
		return fmt.Errorf("ошибка выполнения запроса position_regulations: %w", err)
	}
	defer regRows.Close()

	for regRows.Next() {
		var positionID uint64
		var reg entities.Regulation
		var group entities.RegulationGroupShort
		if err := regRows.Scan(&positionID, &reg.ID, &reg.Title, &group.ID, &group.Name); err != nil {
			return fmt.Errorf("ошибка сканирования position_regulations: %w", err)
		}
		reg.Group = &group
		byID[positionID].Regulations = append(byID[positionID].Regulations, reg)
	}
	if err := regRows.Err(); err != nil {
		return err
	}

	userQuery, userArgs, err := psql.
		Select("up.position_id", "u.id", "u.name", "u.role", "u.photo").
		From("user_positions up").
		Join("users u ON u.id = up.user_id").
		Where(sq.Eq{"up.position_id": ids}).
		OrderBy("u.name ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("ошибка сборки SQL для user_positions: %w", err)
	}

	userRows, err := r.storage.Query(ctx, userQuery, userArgs...)
	if err != nil {
		return fmt.Errorf("ошибка выполнения запроса user_positions: %w", err)
	}
	defer userRows.Close()

	for userRows.Next() {
		var positionID uint64
		var u entities.UserShort
		if err := userRows.Scan(&positionID, &u.ID, &u.Name, &u.Role, &u.Photo); err != nil {
			return fmt.Errorf("ошибка сканирования user_positions: %w", err)
		}
		byID[positionID].Users = append(byID[positionID].Users, u)
	}
	return userRows.Err()
}

func (r *positionRepository) Create(ctx context.Context, tx pgx.Tx, p entities.Position, regulationIDs []uint64) (uint64, error) {
	query, args, err := psql.Insert(positionTable).
		Columns("title", "description", "created_at", "updated_at").
		Values(p.Title, p.Description, sq.Expr("NOW()"), sq.Expr("NOW()")).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("ошибка сборки запроса Create: %w", err)
	}

	var newID uint64
	if err := tx.QueryRow(ctx, query, args...).Scan(&newID); err != nil {
		return 0, fmt.Errorf("ошибка создания positions: %w", err)
	}

	if err := r.replaceRegulations(ctx, tx, newID, regulationIDs, false); err != nil {
		return 0, err
	}
	return newID, nil
}

func (r *positionRepository) Update(ctx context.Context, tx pgx.Tx, id uint64, p entities.Position, regulationIDs []uint64) error {
	query, args, err := psql.Update(positionTable).
		Set("title", p.Title).
		Set("description", p.Description).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("ошибка сборки запроса Update: %w", err)
	}

	result, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ошибка обновления positions: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if regulationIDs != nil {
		if err := r.replaceRegulations(ctx, tx, id, regulationIDs, true); err != nil {
			return err
		}
	}
	return nil
}

func (r *positionRepository) replaceRegulations(ctx context.Context, tx pgx.Tx, positionID uint64, regulationIDs []uint64, clearFirst bool) error {
	if clearFirst {
		delQuery, delArgs, err := psql.Delete("position_regulations").Where(sq.Eq{"position_id": positionID}).ToSql()
		if err != nil {
			return fmt.Errorf("ошибка сборки запроса очистки position_regulations: %w", err)
		}
		if _, err := tx.Exec(ctx, delQuery, delArgs...); err != nil {
			return fmt.Errorf("ошибка очистки position_regulations: %w", err)
		}
	}
	if len(regulationIDs) == 0 {
		return nil
	}

	builder := psql.Insert("position_regulations").Columns("position_id", "regulation_id")
	for _, rid := range regulationIDs {
		builder = builder.Values(positionID, rid)
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("ошибка сборки запроса position_regulations: %w", err)
	}
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("ошибка привязки регламентов: %w", err)
	}
	return nil
}

// Delete удаляет должность. Строки связей уходят по ON DELETE CASCADE,
// сами пользователи и регламенты не затрагиваются.
func (r *positionRepository) Delete(ctx context.Context, id uint64) error {
	query, args, err := psql.Delete(positionTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("ошибка сборки запроса Delete: %w", err)
	}

	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ошибка удаления positions: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
