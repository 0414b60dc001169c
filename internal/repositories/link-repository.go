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
	linkTable  = "links"
	linkFields = `id, title, url`
)

type LinkRepositoryInterface interface {
	GetAll(ctx context.Context) ([]entities.Link, error)
	FindByID(ctx context.Context, id uint64) (*entities.Link, error)
	Create(ctx context.Context, l entities.Link) (uint64, error)
	Update(ctx context.Context, id uint64, l entities.Link) error
	Delete(ctx context.Context, id uint64) error
}

type linkRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewLinkRepository(storage *pgxpool.Pool, logger *zap.Logger) LinkRepositoryInterface {
	return &linkRepository{storage: storage, logger: logger}
}

func (r *linkRepository) scanRow(row pgx.Row) (*entities.Link, error) {
	var l entities.Link
	if err := row.Scan(&l.ID, &l.Title, &l.URL); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка сканирования links: %w", err)
	}
	return &l, nil
}

func (r *linkRepository) GetAll(ctx context.Context) ([]entities.Link, error) {
	query, args, err := psql.Select(linkFields).From(linkTable).OrderBy("title ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки SQL для GetAll: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса links: %w", err)
	}
	defer rows.Close()

	links := make([]entities.Link, 0)
	for rows.Next() {
		l, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		links = append(links, *l)
	}
	return links, rows.Err()
}

func (r *linkRepository) FindByID(ctx context.Context, id uint64) (*entities.Link, error) {
	query, args, err := psql.Select(linkFields).From(linkTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки SQL для FindByID: %w", err)
	}
	return r.scanRow(r.storage.QueryRow(ctx, query, args...))
}

func (r *linkRepository) Create(ctx context.Context, l entities.Link) (uint64, error) {
	query, args, err := psql.Insert(linkTable).
		Columns("title", "url").
		Values(l.Title, l.URL).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("ошибка сборки запроса Create: %w", err)
	}

	var newID uint64
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&newID); err != nil {
		return 0, fmt.Errorf("ошибка создания links: %w", err)
	}
	return newID, nil
}

func (r *linkRepository) Update(ctx context.Context, id uint64, l entities.Link) error {
	query, args, err := psql.Update(linkTable).
		Set("title", l.Title).
		Set("url", l.URL).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("ошибка сборки запроса Update: %w", err)
	}

	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ошибка обновления links: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *linkRepository) Delete(ctx context.Context, id uint64) error {
	query, args, err := psql.Delete(linkTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("ошибка сборки запроса Delete: %w", err)
	}

	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ошибка удаления links: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
