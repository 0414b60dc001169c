package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"intranet-portal/internal/entities"
)

const documentationTable = "documentation"

type DocumentationRepositoryInterface interface {
	GetLatest(ctx context.Context) (*entities.Documentation, error)
	Create(ctx context.Context, d entities.Documentation) (uint64, error)
}

type documentationRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewDocumentationRepository(storage *pgxpool.Pool, logger *zap.Logger) DocumentationRepositoryInterface {
	return &documentationRepository{storage: storage, logger: logger}
}

// GetLatest возвращает самую свежую запись документации.
// Если записей нет, возвращается nil без ошибки.
func (r *documentationRepository) GetLatest(ctx context.Context) (*entities.Documentation, error) {
	query, args, err := psql.Select("id, content, updated_at").
		From(documentationTable).
		OrderBy("updated_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки SQL для GetLatest: %w", err)
	}

	var d entities.Documentation
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&d.ID, &d.Content, &d.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка сканирования documentation: %w", err)
	}
	return &d, nil
}

func (r *documentationRepository) Create(ctx context.Context, d entities.Documentation) (uint64, error) {
	query, args, err := psql.Insert(documentationTable).
		Columns("content").
		Values(d.Content).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("ошибка сборки запроса Create: %w", err)
	}

	var newID uint64
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&newID); err != nil {
		return 0, fmt.Errorf("ошибка создания documentation: %w", err)
	}
	return newID, nil
}
